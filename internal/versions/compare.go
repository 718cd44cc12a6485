package versions

import "github.com/Masterminds/semver/v3"

// IsNewer reports whether candidate is a strictly greater semantic version than current.
// Strings that do not parse as semantic versions, such as "dev", never compare as newer.
func IsNewer(candidate, current string) bool {
	c, err := semver.NewVersion(candidate)
	if err != nil {
		return false
	}
	cur, err := semver.NewVersion(current)
	if err != nil {
		return false
	}
	return c.GreaterThan(cur)
}
