package paramname

import (
	"path"
	"strings"
)

// Group is a normalized hierarchical prefix scoping a set of
// parameters, e.g. "/myapp/staging". The zero value is the empty group
// (no prefix). A non-empty Group always starts with a single '/' and
// every segment passes Validate.
type Group struct {
	prefix string
}

// ParseGroup normalizes and validates a raw group string. The empty
// string yields the empty group without validation. Any other input is
// made absolute and checked as a whole, so one error reports every
// illegal character across the original string.
func ParseGroup(raw string) (Group, error) {
	if raw == "" {
		return Group{}, nil
	}
	if err := ValidatePath(raw); err != nil {
		return Group{}, err
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return Group{prefix: path.Clean(raw)}, nil
}

// String returns the normalized prefix, or "" for the empty group.
func (g Group) String() string {
	return g.prefix
}

// IsEmpty reports whether the group carries no prefix.
func (g Group) IsEmpty() bool {
	return g.prefix == ""
}

// Join builds the full key for a leaf name, with exactly one separator
// at the seam. The empty group returns the name unchanged.
func (g Group) Join(name string) string {
	if g.prefix == "" {
		return name
	}
	return path.Join(g.prefix, name)
}

// Strip removes the group prefix and one following separator from a
// full key, recovering the leaf name. Identity for the empty group.
func (g Group) Strip(fullKey string) string {
	if g.prefix == "" {
		return fullKey
	}
	rest := strings.TrimPrefix(fullKey, g.prefix)
	return strings.TrimPrefix(rest, "/")
}
