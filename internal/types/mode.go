// Package types contains shared types used across the application.
package types

// Mode is the interaction mode of the select menu, mirrored in the status bar
type Mode int

const (
	ModeClosed Mode = iota
	ModeOpen
	ModeHelp
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeClosed:
		return "CLOSED"
	case ModeOpen:
		return "OPEN"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}
