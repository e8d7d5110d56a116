// Package domain contains the core types shared by the select menu widget,
// its loaders and the CLI.
package domain

import (
	"fmt"
	"strings"
)

// Option is a single labeled choice. Value identifies the option and must be
// unique within a list.
type Option struct {
	Label string `json:"label" yaml:"label" toml:"label"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

// String returns the label, falling back to the value when no label is set
func (o Option) String() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

// ParseOption parses a "label=value" pair. A bare word is used as both label
// and value.
func ParseOption(s string) (Option, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Option{}, fmt.Errorf("empty option")
	}

	label, value, found := strings.Cut(s, "=")
	if !found {
		return Option{Label: s, Value: s}, nil
	}

	label = strings.TrimSpace(label)
	value = strings.TrimSpace(value)
	if value == "" {
		return Option{}, fmt.Errorf("option %q has an empty value", s)
	}
	if label == "" {
		label = value
	}
	return Option{Label: label, Value: value}, nil
}

// ParseOptions parses a list of "label=value" arguments and validates the result
func ParseOptions(args []string) ([]Option, error) {
	options := make([]Option, 0, len(args))
	for _, arg := range args {
		opt, err := ParseOption(arg)
		if err != nil {
			return nil, &OptionsError{Op: "parse", Err: err}
		}
		options = append(options, opt)
	}

	if err := ValidateOptions(options); err != nil {
		return nil, err
	}
	return options, nil
}

// ValidateOptions checks that every option has a value and that values are unique
func ValidateOptions(options []Option) error {
	seen := make(map[string]int, len(options))
	for i, opt := range options {
		if opt.Value == "" {
			return &OptionsError{
				Op:  "validate",
				Err: fmt.Errorf("option %d (%q) has an empty value", i, opt.Label),
			}
		}
		if first, ok := seen[opt.Value]; ok {
			return &OptionsError{
				Op:  "validate",
				Err: fmt.Errorf("%w: %q at %d and %d", ErrDuplicateValue, opt.Value, first, i),
			}
		}
		seen[opt.Value] = i
	}
	return nil
}

// IndexOf returns the index of the option with the given value, or -1
func IndexOf(options []Option, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}
