package domain

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// VersionResult is the outcome of comparing two package versions.
type VersionResult int

const (
	// VersionLess means the left version sorts before the right one.
	VersionLess VersionResult = -1
	// VersionEqual means both versions sort the same.
	VersionEqual VersionResult = 0
	// VersionGreater means the left version sorts after the right one.
	VersionGreater VersionResult = 1
)

// preReleaseTags mark segments that sort before the release they are attached to.
var preReleaseTags = []string{"alpha", "beta", "pre", "rc"}

// CompareVersions orders two package versions of the form "<base>[-r<revision>]".
// The base is compared as a semantic version when both sides parse as one,
// otherwise segment by segment. Revisions break ties numerically.
func CompareVersions(a, b string) VersionResult {
	baseA, revA := splitRevision(a)
	baseB, revB := splitRevision(b)

	if c := compareBase(baseA, baseB); c != VersionEqual {
		return c
	}
	return compareInts(revA, revB)
}

func splitRevision(v string) (string, int) {
	i := strings.LastIndex(v, "-r")
	if i < 0 {
		return v, 0
	}
	rev, err := strconv.Atoi(v[i+2:])
	if err != nil {
		return v, 0
	}
	return v[:i], rev
}

func compareBase(a, b string) VersionResult {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA == nil && errB == nil {
		return VersionResult(va.Compare(vb))
	}
	return compareSegments(a, b)
}

func compareSegments(a, b string) VersionResult {
	split := func(r rune) bool { return r == '.' || r == '_' || r == '-' }
	segsA := strings.FieldsFunc(a, split)
	segsB := strings.FieldsFunc(b, split)

	for i := 0; i < len(segsA) && i < len(segsB); i++ {
		if c := compareSegment(segsA[i], segsB[i]); c != VersionEqual {
			return c
		}
	}

	switch {
	case len(segsA) > len(segsB):
		if isPreRelease(segsA[len(segsB)]) {
			return VersionLess
		}
		return VersionGreater
	case len(segsA) < len(segsB):
		if isPreRelease(segsB[len(segsA)]) {
			return VersionGreater
		}
		return VersionLess
	default:
		return VersionEqual
	}
}

func compareSegment(a, b string) VersionResult {
	na, errA := strconv.ParseUint(a, 10, 64)
	nb, errB := strconv.ParseUint(b, 10, 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return VersionLess
		case na > nb:
			return VersionGreater
		default:
			return VersionEqual
		}
	}
	return VersionResult(strings.Compare(a, b))
}

func compareInts(a, b int) VersionResult {
	switch {
	case a < b:
		return VersionLess
	case a > b:
		return VersionGreater
	default:
		return VersionEqual
	}
}

func isPreRelease(segment string) bool {
	for _, tag := range preReleaseTags {
		if strings.HasPrefix(segment, tag) {
			return true
		}
	}
	return false
}
