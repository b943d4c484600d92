package editorconfig

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Version identifies the EditorConfig behaviour level of the resolver.
type Version struct {
	Major    int
	Minor    int
	Subminor int
}

//nolint:gochecknoglobals // Read-only release metadata.
var currentVersion = Version{Major: 0, Minor: 12, Subminor: 0}

// CurrentVersion returns the version this package implements.
func CurrentVersion() Version {
	return currentVersion
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Subminor)
}

// IsZero reports whether v is the unset version.
func (v Version) IsZero() bool {
	return v == Version{}
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to
// or after other.
func (v Version) Compare(other Version) int {
	if c := cmp.Compare(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, other.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Subminor, other.Subminor)
}

// ParseVersion parses "MAJOR", "MAJOR.MINOR" or "MAJOR.MINOR.SUBMINOR".
// Omitted components are zero.
func ParseVersion(text string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(text), ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, text)
	}

	var nums [3]int
	for idx, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, text)
		}
		nums[idx] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Subminor: nums[2]}, nil
}
