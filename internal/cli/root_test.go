package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/selectmenu/internal/app"
	"github.com/riordanpawley/selectmenu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drive replaces the program runner with one that feeds msgs through the
// model. Commands are only run for key messages, which never schedule timers.
func drive(t *testing.T, msgs ...tea.Msg) *app.Model {
	t.Helper()
	var final app.Model

	orig := runTUI
	t.Cleanup(func() { runTUI = orig })

	runTUI = func(m app.Model, _ io.Reader, _ io.Writer) (app.Model, error) {
		var model tea.Model = m
		queue := append([]tea.Msg{tea.WindowSizeMsg{Width: 80, Height: 24}}, msgs...)

		for len(queue) > 0 {
			msg := queue[0]
			queue = queue[1:]

			next, cmd := model.Update(msg)
			model = next
			if _, isKey := msg.(tea.KeyMsg); !isKey || cmd == nil {
				continue
			}

			out := cmd()
			if _, quit := out.(tea.QuitMsg); quit {
				break
			}
			queue = append([]tea.Msg{out}, queue...)
		}

		final = model.(app.Model)
		return final, nil
	}
	return &final
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func key(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRoot_PrintsSelectedValue(t *testing.T) {
	drive(t, key(tea.KeyEnter), key(tea.KeyDown), key(tea.KeyEnter))

	out, err := execute(t, "--exit-on-select", "Apple=apple", "Banana=banana", "Cherry=cherry")

	require.NoError(t, err)
	assert.Equal(t, "banana\n", out)
}

func TestRoot_LastSelectionWinsWithoutExitOnSelect(t *testing.T) {
	drive(t,
		key(tea.KeyEnter), key(tea.KeyEnter),
		key(tea.KeyEnter), key(tea.KeyUp), key(tea.KeyEnter),
		runeKey('q'),
	)

	out, err := execute(t, "Apple=apple", "Banana=banana", "Cherry=cherry")

	require.NoError(t, err)
	assert.Equal(t, "cherry\n", out)
}

func TestRoot_Cancelled(t *testing.T) {
	drive(t, runeKey('q'))

	out, err := execute(t, "Apple=apple")

	assert.True(t, IsCancelled(err))
	assert.Empty(t, out)
}

func TestRoot_NoOptions(t *testing.T) {
	drive(t)

	_, err := execute(t)

	assert.ErrorIs(t, err, domain.ErrNoOptions)
}

func TestRoot_DuplicateValues(t *testing.T) {
	drive(t)

	_, err := execute(t, "A=same", "B=same")

	assert.ErrorIs(t, err, domain.ErrDuplicateValue)
}

func TestRoot_OptionsFile(t *testing.T) {
	path := writeFile(t, "fruits.yaml", "- label: Apple\n  value: apple\n- label: Banana\n  value: banana\n")
	drive(t, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyEnter))

	out, err := execute(t, "-x", "--options", path)

	require.NoError(t, err)
	assert.Equal(t, "banana\n", out)
}

func TestRoot_ArgsWinOverOptionsFile(t *testing.T) {
	path := writeFile(t, "fruits.json", `[{"label": "Apple", "value": "apple"}]`)
	drive(t, key(tea.KeyEnter), key(tea.KeyEnter))

	out, err := execute(t, "-x", "--options", path, "Kiwi=kiwi")

	require.NoError(t, err)
	assert.Equal(t, "kiwi\n", out)
}

func TestRoot_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "custom.json", `{
		"version": 2,
		"label": "Pick a fruit",
		"exitOnSelect": true,
		"overlay": {"offset": 1},
		"keys": {"down": ["j"]}
	}`)
	final := drive(t, key(tea.KeyEnter), runeKey('j'), runeKey('j'), key(tea.KeyEnter))

	out, err := execute(t, "--config", cfg, "Apple=apple", "Banana=banana", "Cherry=cherry")

	require.NoError(t, err)
	assert.Equal(t, "cherry\n", out)
	assert.Equal(t, 4, final.Menu().OverlayTop())
	assert.Equal(t, "Cherry", final.Menu().TriggerProps().Label)
}

func TestRoot_ConfigLabel(t *testing.T) {
	cfg := writeFile(t, "custom.json", `{"version": 2, "label": "Pick a fruit"}`)
	final := drive(t, runeKey('q'))

	_, err := execute(t, "--config", cfg, "Apple=apple")

	assert.True(t, IsCancelled(err))
	assert.Equal(t, "Pick a fruit", final.Menu().TriggerProps().Label)
}

func TestRoot_FlagsOverrideConfig(t *testing.T) {
	cfg := writeFile(t, "custom.json", `{"version": 2, "label": "From config", "overlay": {"offset": 2}}`)
	final := drive(t, runeKey('q'))

	_, err := execute(t, "--config", cfg, "--label", "From flag", "--offset", "0", "Apple=apple")

	assert.True(t, IsCancelled(err))
	assert.Equal(t, "From flag", final.Menu().TriggerProps().Label)
	assert.Equal(t, 3, final.Menu().OverlayTop())
}

func TestRoot_BadConfig(t *testing.T) {
	drive(t)

	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.json"), "A=a")

	assert.ErrorContains(t, err, "failed to read config")
}

func TestRoot_NegativeOffsetFlag(t *testing.T) {
	drive(t)

	_, err := execute(t, "--offset=-2", "A=a")

	assert.ErrorContains(t, err, "overlay.offset")
}

func TestRoot_BadLogLevel(t *testing.T) {
	drive(t)

	_, err := execute(t, "--log-level", "chatty", "A=a")

	assert.ErrorContains(t, err, "unknown log level")
}

func TestRoot_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")
	drive(t, key(tea.KeyEnter), key(tea.KeyEnter))

	_, err := execute(t, "-x", "--log-file", logPath, "--log-level", "debug", "Apple=apple")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "selection committed")
	assert.Contains(t, string(data), `"value":"apple"`)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list", "Apple=apple", "Banana=banana")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "INDEX")
	assert.Contains(t, lines[0], "LABEL")
	assert.Regexp(t, `^0\s+apple\s+Apple$`, lines[2])
	assert.Regexp(t, `^1\s+banana\s+Banana$`, lines[3])
}

func TestList_TruncatesWideLabels(t *testing.T) {
	long := strings.Repeat("é", 70)

	out, err := execute(t, "list", long+"=accent", "Plain=plain")

	require.NoError(t, err)
	assert.True(t, utf8.ValidString(out), "truncation keeps whole runes")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[2], strings.Repeat("é", 57)+"..."))
	assert.NotContains(t, lines[2], strings.Repeat("é", 58))
	assert.Regexp(t, `^1\s+plain\s+Plain$`, lines[3])
}

func TestList_OptionsFile(t *testing.T) {
	path := writeFile(t, "fruits.toml", "[[options]]\nlabel = \"Apple\"\nvalue = \"apple\"\n")

	out, err := execute(t, "list", "-o", path)

	require.NoError(t, err)
	assert.Contains(t, out, "apple")
}

func TestList_NoOptions(t *testing.T) {
	_, err := execute(t, "list")

	assert.ErrorIs(t, err, domain.ErrNoOptions)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "selectmenu "+Version+"\n", out)
}
