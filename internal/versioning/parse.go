// Package versioning parses the version strings used by the documentation build.
package versioning

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	ferrors "git.home.luguber.info/inful/frrdocs/internal/foundation/errors"
)

// Triple is a major.minor.patch version.
type Triple [3]int

func (t Triple) Major() int { return t[0] }
func (t Triple) Minor() int { return t[1] }
func (t Triple) Patch() int { return t[2] }

func (t Triple) String() string {
	return fmt.Sprintf("%d.%d.%d", t[0], t[1], t[2])
}

// Compare returns -1, 0 or +1.
func (t Triple) Compare(other Triple) int {
	for i := range t {
		if c := cmp.Compare(t[i], other[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether t sorts before other.
func (t Triple) Less(other Triple) bool { return t.Compare(other) < 0 }

// Parse splits a dotted version into three integer components. Missing
// components are zero, components past the third are dropped, and a
// pre-release or build suffix after '-' or '+' is ignored.
func Parse(s string) (Triple, error) {
	var t Triple
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return t, nil
	}
	for i, part := range strings.SplitN(s, ".", len(t)+1) {
		if i == len(t) {
			break
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Triple{}, ferrors.ValidationError("invalid version component").
				WithContext("version", s).
				WithContext("component", part).
				Build()
		}
		t[i] = n
	}
	return t, nil
}

// MustParse is Parse for constants; it panics on malformed input.
func MustParse(s string) Triple {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ShortVersion trims a release string at the first '-', so "8.4-dev" becomes "8.4".
func ShortVersion(release string) string {
	short, _, _ := strings.Cut(release, "-")
	return short
}
