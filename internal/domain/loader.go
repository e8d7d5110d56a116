package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// optionsDocument is the keyed form of an options file:
//
//	options:
//	  - label: Apple
//	    value: apple
type optionsDocument struct {
	Options []Option `json:"options" yaml:"options" toml:"options"`
}

// LoadOptions reads an option list from a JSON, YAML or TOML file. The format
// is chosen by extension. JSON and YAML accept either a top-level list or an
// "options" key; TOML requires an [[options]] array of tables.
func LoadOptions(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &OptionsError{Op: "load", Path: path, Err: err}
	}

	options, err := DecodeOptions(data, filepath.Ext(path))
	if err != nil {
		return nil, &OptionsError{Op: "load", Path: path, Err: err}
	}

	if len(options) == 0 {
		return nil, &OptionsError{Op: "load", Path: path, Err: ErrNoOptions}
	}

	if err := ValidateOptions(options); err != nil {
		var optErr *OptionsError
		if errors.As(err, &optErr) {
			optErr.Path = path
		}
		return nil, err
	}

	return options, nil
}

// DecodeOptions decodes an option list in the format named by ext
// (".json", ".yaml", ".yml" or ".toml")
func DecodeOptions(data []byte, ext string) ([]Option, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return decodeJSON(data)
	case ".yaml", ".yml":
		return decodeYAML(data)
	case ".toml":
		return decodeTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func decodeJSON(data []byte) ([]Option, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var options []Option
		if err := json.Unmarshal(trimmed, &options); err != nil {
			return nil, fmt.Errorf("failed to parse JSON options: %w", err)
		}
		return options, nil
	}

	var doc optionsDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON options: %w", err)
	}
	return doc.Options, nil
}

func decodeYAML(data []byte) ([]Option, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse YAML options: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var options []Option
		if err := root.Decode(&options); err != nil {
			return nil, fmt.Errorf("failed to decode YAML options: %w", err)
		}
		return options, nil
	}

	var doc optionsDocument
	if err := root.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode YAML options: %w", err)
	}
	return doc.Options, nil
}

func decodeTOML(data []byte) ([]Option, error) {
	var doc optionsDocument
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML options: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown TOML keys: %v", undecoded)
	}
	return doc.Options, nil
}
