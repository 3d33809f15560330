// Package toolversion parses version strings printed by external tools such
// as "git version 2.43.0" or "v10.2.0".
package toolversion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var versionPattern = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z.-]+)?`)

// Parse extracts the first version number from a tool's --version output.
func Parse(output string) (*semver.Version, error) {
	match := versionPattern.FindString(strings.TrimSpace(output))
	if match == "" {
		return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(output))
	}
	return semver.NewVersion(match)
}

// AtLeast reports whether the version printed in output is >= minimum.
// Prereleases compare by semver precedence, so 4.0.0-rc.1 is at least 2.0.0.
// Unparseable output reports false.
func AtLeast(output, minimum string) bool {
	v, err := Parse(output)
	if err != nil {
		return false
	}
	floor, err := semver.NewVersion(minimum)
	if err != nil {
		return false
	}
	return !v.LessThan(floor)
}

// Major returns the major version printed in output, or -1 when none is found.
func Major(output string) int {
	v, err := Parse(output)
	if err != nil {
		return -1
	}
	return int(v.Major())
}
