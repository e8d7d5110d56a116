package dropdown

import "github.com/riordanpawley/selectmenu/internal/domain"

// NoIndex marks the absence of a selected or highlighted option
const NoIndex = -1

// NextIndex returns the option after current, wrapping from the last option
// back to the first. Starting from NoIndex it returns 0.
func NextIndex(current int, options []domain.Option) int {
	if len(options) == 0 {
		return NoIndex
	}
	if current < 0 || current >= len(options)-1 {
		return 0
	}
	return current + 1
}

// PrevIndex returns the option before current, wrapping from the first option
// to the last. Starting from NoIndex it returns 0.
func PrevIndex(current int, options []domain.Option) int {
	if len(options) == 0 {
		return NoIndex
	}
	if current < 0 {
		return 0
	}
	if current == 0 || current > len(options)-1 {
		return len(options) - 1
	}
	return current - 1
}

// inRange reports whether i addresses an option in options
func inRange(i int, options []domain.Option) bool {
	return i >= 0 && i < len(options)
}
