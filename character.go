package rivercrossing

import (
	"math/bits"
	"strings"
)

// Character is one of the four puzzle tokens. Each character occupies its
// own bit so that a Set is a plain bitmask.
type Character uint8

const (
	Farmer Character = 1 << iota
	Wolf
	Sheep
	Cabbage
)

// Characters lists every character in the fixed enumeration order used for
// move generation, canonical keys and rendering.
var Characters = [...]Character{Farmer, Wolf, Sheep, Cabbage}

func (c Character) String() string {
	switch c {
	case Farmer:
		return "Farmer"
	case Wolf:
		return "Wolf"
	case Sheep:
		return "Sheep"
	case Cabbage:
		return "Cabbage"
	}
	return "Unknown"
}

// Valid reports whether c is exactly one of the four characters.
func (c Character) Valid() bool {
	return c != 0 && Set(c)&Everyone == Set(c) && bits.OnesCount8(uint8(c)) == 1
}

// Set is an unordered set of characters.
type Set uint8

// Everyone is the set holding all four characters.
const Everyone = Set(Farmer | Wolf | Sheep | Cabbage)

// NewSet builds a set from the given characters. Duplicates collapse.
func NewSet(cs ...Character) Set {
	var s Set
	for _, c := range cs {
		s |= Set(c)
	}
	return s
}

func (s Set) Has(c Character) bool { return s&Set(c) != 0 }
func (s Set) With(c Character) Set { return s | Set(c) }
func (s Set) Without(c Character) Set { return s &^ Set(c) }
func (s Set) Len() int { return bits.OnesCount8(uint8(s & Everyone)) }
func (s Set) Empty() bool { return s&Everyone == 0 }
func (s Set) Union(o Set) Set { return s | o }
func (s Set) Intersects(o Set) bool { return s&o != 0 }
func (s Set) Contains(o Set) bool { return s&o == o }

// Members returns the characters of s in enumeration order.
func (s Set) Members() []Character {
	out := make([]Character, 0, s.Len())
	for _, c := range Characters {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String joins member names in enumeration order, e.g. "Farmer+Sheep".
// The empty set renders as "-".
func (s Set) String() string {
	if s.Empty() {
		return "-"
	}
	names := make([]string, 0, 4)
	for _, c := range s.Members() {
		names = append(names, c.String())
	}
	return strings.Join(names, "+")
}

// safe reports whether the characters on one bank can be left together.
// Without the Farmer, the Sheep may share a bank with neither the Wolf nor
// the Cabbage. Wolf and Cabbage alone are fine.
func (s Set) safe() bool {
	if s.Has(Farmer) {
		return true
	}
	return !s.Contains(NewSet(Wolf, Sheep)) && !s.Contains(NewSet(Sheep, Cabbage))
}
