package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersionedConfig_LegacyConfig(t *testing.T) {
	// Legacy config without version field
	legacyJSON := `{
		"label": "Pick a fruit",
		"overlayOffset": 2
	}`

	cfg, err := ParseVersionedConfig([]byte(legacyJSON))
	require.NoError(t, err)

	assert.Equal(t, "Pick a fruit", cfg.Label)
	assert.Equal(t, 2, cfg.Overlay.Offset, "legacy offset migrates through every version")
}

func TestParseVersionedConfig_Version1(t *testing.T) {
	v1JSON := `{
		"version": 1,
		"exitOnSelect": true,
		"overlayOffset": 1
	}`

	cfg, err := ParseVersionedConfig([]byte(v1JSON))
	require.NoError(t, err)

	assert.True(t, cfg.ExitOnSelect)
	assert.Equal(t, 1, cfg.Overlay.Offset)
}

func TestParseVersionedConfig_CurrentVersion(t *testing.T) {
	v2JSON := `{
		"version": 2,
		"optionsFile": "fruits.yaml",
		"overlay": {"offset": 3},
		"keys": {"down": ["j"], "up": ["k"]},
		"log": {"file": "/tmp/selectmenu.log", "level": "debug"}
	}`

	cfg, err := ParseVersionedConfig([]byte(v2JSON))
	require.NoError(t, err)

	assert.Equal(t, "fruits.yaml", cfg.OptionsFile)
	assert.Equal(t, 3, cfg.Overlay.Offset)
	assert.Equal(t, []string{"j"}, cfg.Keys.Down)
	assert.Equal(t, []string{"k"}, cfg.Keys.Up)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseVersionedConfig_NestedConfig(t *testing.T) {
	nestedJSON := `{
		"version": 2,
		"config": {"label": "Nested"}
	}`

	cfg, err := ParseVersionedConfig([]byte(nestedJSON))
	require.NoError(t, err)

	assert.Equal(t, "Nested", cfg.Label)
}

func TestParseVersionedConfig_FutureVersion(t *testing.T) {
	futureJSON := `{
		"version": 999,
		"label": "from the future"
	}`

	_, err := ParseVersionedConfig([]byte(futureJSON))

	assert.ErrorContains(t, err, "newer than supported")
}

func TestParseVersionedConfig_InvalidJSON(t *testing.T) {
	_, err := ParseVersionedConfig([]byte(`{not json`))

	assert.ErrorContains(t, err, "failed to parse config JSON")
}

func TestApplyMigrations_V0ToCurrent(t *testing.T) {
	data := map[string]interface{}{
		"label":         "Pick",
		"overlayOffset": float64(4),
	}

	migrated, err := ApplyMigrations(data, 0)
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, migrated["version"])
	assert.NotContains(t, migrated, "overlayOffset")
	assert.Equal(t, map[string]interface{}{"offset": float64(4)}, migrated["overlay"])
	assert.Equal(t, "Pick", migrated["label"])
}

func TestApplyMigrations_NestedOffsetWins(t *testing.T) {
	data := map[string]interface{}{
		"version":       float64(1),
		"overlayOffset": float64(4),
		"overlay":       map[string]interface{}{"offset": float64(1)},
	}

	migrated, err := ApplyMigrations(data, 1)
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"offset": float64(1)}, migrated["overlay"])
}

func TestApplyMigrations_NoPath(t *testing.T) {
	_, err := ApplyMigrations(map[string]interface{}{}, -5)

	assert.ErrorContains(t, err, "no migration path")
}

func TestMarshalVersionedConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Label = "Pick"
	cfg.Overlay.Offset = 1

	data, err := MarshalVersionedConfig(cfg)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(CurrentVersion), raw["version"])
	assert.Equal(t, "Pick", raw["label"])

	roundTrip, err := ParseVersionedConfig(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, roundTrip)
}
