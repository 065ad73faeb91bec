package updater

import (
	"fmt"
	"strconv"
	"strings"
)

// Semver is a parsed semantic version. Pre is the pre-release tag ("rc.1"
// in "1.4.0-rc.1"), empty for final releases.
type Semver struct {
	Major int
	Minor int
	Patch int
	Pre   string
}

// ParseSemver parses "1.2.3", "v1.2.3" or "1.2.3-rc.1".
func ParseSemver(s string) (Semver, error) {
	s = strings.TrimPrefix(s, "v")

	var pre string
	if i := strings.IndexByte(s, '-'); i >= 0 {
		s, pre = s[:i], s[i+1:]
	}

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Semver{}, fmt.Errorf("invalid semver: %q", s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Semver{}, fmt.Errorf("invalid semver component %q in %q", p, s)
		}
		nums[i] = n
	}

	return Semver{Major: nums[0], Minor: nums[1], Patch: nums[2], Pre: pre}, nil
}

// String returns the canonical form.
func (v Semver) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	return s
}

// LessThan reports v < other. A pre-release sorts before the final release
// with the same numbers; two pre-releases compare lexically.
func (v Semver) LessThan(other Semver) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	if v.Patch != other.Patch {
		return v.Patch < other.Patch
	}
	if v.Pre == other.Pre {
		return false
	}
	if v.Pre == "" {
		return false
	}
	if other.Pre == "" {
		return true
	}
	return v.Pre < other.Pre
}
