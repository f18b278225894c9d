package paramname

import (
	"fmt"
	"strings"
)

// EmptyNameError indicates an empty or all-whitespace parameter name.
// Reported separately from InvalidCharactersError so callers can tell
// "nothing was given" apart from "something illegal was given".
type EmptyNameError struct{}

// Error implements the error interface.
func (EmptyNameError) Error() string {
	return "parameter name cannot be empty"
}

// InvalidCharactersError reports every illegal character in a name.
//
// Markers has the same length as Input, with '^' under each offending
// character, so the rendered message lines the two up:
//
//	illegal characters:
//	bad key!
//	   ^   ^
//	allowed characters: - _ .
type InvalidCharactersError struct {
	// Input is the original string that failed validation.
	Input string

	// Markers marks the offending positions, one rune per input rune.
	Markers string

	// Allowed lists the permitted non-alphanumeric characters.
	Allowed string
}

// Error implements the error interface.
func (e InvalidCharactersError) Error() string {
	allowed := strings.Join(strings.Split(e.Allowed, ""), " ")
	return fmt.Sprintf("illegal characters:\n%s\n%s\nallowed characters: %s", e.Input, e.Markers, allowed)
}

// Positions returns the rune indexes of the offending characters.
func (e InvalidCharactersError) Positions() []int {
	var positions []int
	for i, r := range []rune(e.Markers) {
		if r == '^' {
			positions = append(positions, i)
		}
	}
	return positions
}
