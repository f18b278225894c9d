// Package paramname validates and normalizes hierarchical parameter names.
//
// AWS Systems Manager Parameter Store keys are pathlike strings whose
// segments may only contain alphanumerics plus '-', '_' and '.'. This
// package checks raw names against that character set, renders
// position-marked diagnostics for violations, and rewrites ("cleans")
// names into a compliant pathlike form.
package paramname

import (
	"path"
	"strings"
)

// allowedSymbols are the non-alphanumeric characters permitted in a
// single name segment. ValidatePath additionally permits the path
// separator.
const allowedSymbols = "-_."

func isAllowedRune(r rune, allowSeparator bool) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case strings.ContainsRune(allowedSymbols, r):
		return true
	case allowSeparator && r == '/':
		return true
	}
	return false
}

func scan(input string, allowSeparator bool) error {
	if strings.TrimSpace(input) == "" {
		return EmptyNameError{}
	}

	markers := make([]rune, 0, len(input))
	invalid := false
	for _, r := range input {
		if isAllowedRune(r, allowSeparator) {
			markers = append(markers, ' ')
		} else {
			markers = append(markers, '^')
			invalid = true
		}
	}

	if !invalid {
		return nil
	}

	allowed := allowedSymbols
	if allowSeparator {
		allowed = "/" + allowedSymbols
	}
	return InvalidCharactersError{
		Input:   input,
		Markers: string(markers),
		Allowed: allowed,
	}
}

// Validate checks a single leaf name against the allowed character set
// (a-z, A-Z, 0-9, '-', '_', '.'). Empty or all-whitespace input returns
// EmptyNameError; any other violation returns InvalidCharactersError
// with a marker under every offending character.
func Validate(name string) error {
	return scan(name, false)
}

// ValidatePath is Validate with the path separator also allowed, for
// checking full pathlike names and group strings. The returned error
// aggregates every illegal character across the whole input.
func ValidatePath(name string) error {
	return scan(name, true)
}

// Clean rewrites a name into a pathlike form the parameter store
// accepts: a single segment is returned unchanged, a multi-segment name
// is made absolute and path-cleaned. Clean is deterministic and
// idempotent. It does not validate the character set; run the result
// through ValidatePath.
func Clean(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", EmptyNameError{}
	}

	cleaned := path.Clean(name)
	if !strings.Contains(cleaned, "/") {
		return cleaned, nil
	}
	if !strings.HasPrefix(cleaned, "/") {
		cleaned = "/" + cleaned
	}
	return path.Clean(cleaned), nil
}
