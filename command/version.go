package command

import (
	"fmt"
	"strconv"
	"strings"
)

// GameVersion identifies one supported game release, e.g. 1.19.80.
type GameVersion [3]int

func V(major, minor, patch int) GameVersion {
	return GameVersion{major, minor, patch}
}

// ParseGameVersion parses a dotted version string like "1.19.80".
func ParseGameVersion(s string) (GameVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return GameVersion{}, fmt.Errorf("invalid game version %q: want major.minor.patch", s)
	}
	var v GameVersion
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return GameVersion{}, fmt.Errorf("invalid game version %q: %w", s, err)
		}
		v[i] = n
	}
	return v, nil
}

func (v GameVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}

func (v GameVersion) Compare(o GameVersion) int {
	for i := 0; i < 3; i++ {
		if v[i] != o[i] {
			if v[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (v GameVersion) AtLeast(o GameVersion) bool {
	return v.Compare(o) >= 0
}

// VersionPredicate gates a branch on the game version a graph is built
// for. Predicates run once, when the graph is frozen, never per parse.
type VersionPredicate func(GameVersion) bool

// Since keeps a branch for versions >= v.
func Since(v GameVersion) VersionPredicate {
	return func(o GameVersion) bool { return o.Compare(v) >= 0 }
}

// Until keeps a branch for versions <= v.
func Until(v GameVersion) VersionPredicate {
	return func(o GameVersion) bool { return o.Compare(v) <= 0 }
}

// Before keeps a branch for versions < v.
func Before(v GameVersion) VersionPredicate {
	return func(o GameVersion) bool { return o.Compare(v) < 0 }
}
