package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNoOptions          = errors.New("no options")
	ErrDuplicateValue     = errors.New("duplicate option value")
	ErrUnsupportedFormat  = errors.New("unsupported options format")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// OptionsError represents a failure to load, parse or validate an option list
type OptionsError struct {
	Op   string // Operation: "load", "parse", "validate"
	Path string // Optional: source file
	Err  error  // Underlying error
}

func (e *OptionsError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("options %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("options %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("options %s failed", e.Op)
}

func (e *OptionsError) Unwrap() error {
	return e.Err
}
