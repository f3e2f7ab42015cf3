package primitives

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	rc "github.com/comalice/rivercrossing"
)

// ErrUnknownCharacter is returned when a name matches no character.
var ErrUnknownCharacter = errors.New("unknown character")

// aliases maps every accepted spelling to its character. Keys are lower
// case.
var aliases = map[string]rc.Character{
	"farmer":  rc.Farmer,
	"农夫":      rc.Farmer,
	"👨‍🌾":     rc.Farmer,
	"wolf":    rc.Wolf,
	"狼":       rc.Wolf,
	"🐺":       rc.Wolf,
	"sheep":   rc.Sheep,
	"goat":    rc.Sheep,
	"羊":       rc.Sheep,
	"🐑":       rc.Sheep,
	"cabbage": rc.Cabbage,
	"白菜":      rc.Cabbage,
	"🥬":       rc.Cabbage,
}

// fuzzy lists the aliases eligible for typo matching, in a fixed order so
// ties resolve deterministically. "goat" is exact-match only: it sits one
// edit away from "boat" and "goal".
var fuzzy = []string{"farmer", "wolf", "sheep", "cabbage"}

// ParseCharacter resolves a character name. Exact aliases win; otherwise
// the closest English name within the edit-distance limit is used.
func ParseCharacter(name string) (rc.Character, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := aliases[key]; ok {
		return c, nil
	}
	if len(key) >= 3 {
		best, bestDist := "", -1
		for _, cand := range fuzzy {
			dist := levenshtein.ComputeDistance(key, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			if bestDist < 0 || dist < bestDist {
				best, bestDist = cand, dist
			}
		}
		if best != "" {
			return aliases[best], nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCharacter, name)
}

// ParseCharacters resolves every name in names.
func ParseCharacters(names []string) ([]rc.Character, error) {
	out := make([]rc.Character, 0, len(names))
	for _, n := range names {
		c, err := ParseCharacter(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Names returns the canonical names of the members of s.
func Names(s rc.Set) []string {
	out := make([]string, 0, s.Len())
	for _, c := range s.Members() {
		out = append(out, c.String())
	}
	return out
}

// ParseSide resolves "left" or "right".
func ParseSide(s string) (rc.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return rc.Left, nil
	case "right", "r":
		return rc.Right, nil
	}
	return 0, fmt.Errorf("unknown side %q", s)
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
