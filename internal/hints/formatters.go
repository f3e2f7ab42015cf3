package hints

import (
	"fmt"
	"strings"

	rc "github.com/comalice/rivercrossing"
)

// PlainFormatter writes English text.
type PlainFormatter struct{}

func (PlainFormatter) Header(steps int) string {
	if steps == 1 {
		return "1 step in total"
	}
	return fmt.Sprintf("%d steps in total", steps)
}

func (PlainFormatter) Action(m rc.Move) string {
	switch m.Kind {
	case rc.Board:
		return fmt.Sprintf("%s boards the boat", m.Character)
	case rc.Disembark:
		return fmt.Sprintf("%s lands on the %s bank", m.Character, m.Side)
	case rc.Cross:
		return fmt.Sprintf("row to the %s bank", m.Side.Opposite())
	}
	return m.String()
}

func (PlainFormatter) Place(side rc.Side, s rc.Set) string {
	return fmt.Sprintf("%s: %s", side, plainSet(s))
}

func (PlainFormatter) Boat(s rc.Set) string {
	return "boat: " + plainSet(s)
}

func (PlainFormatter) NoSolution() string {
	return "no solution found"
}

func plainSet(s rc.Set) string {
	if s.Empty() {
		return "empty"
	}
	names := make([]string, 0, s.Len())
	for _, c := range s.Members() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

// Icons used by IconFormatter.
const (
	IconBoat      = "🚣"
	IconArrow     = "➜"
	IconLeft      = "⬅️"
	IconRight     = "➡️"
	IconLeftBank  = "🏖️"
	IconRightBank = "🏝️"
	IconNone      = "∅"
)

var characterIcons = map[rc.Character]string{
	rc.Farmer:  "👨‍🌾",
	rc.Wolf:    "🐺",
	rc.Sheep:   "🐑",
	rc.Cabbage: "🥬",
}

// CharacterIcon returns the emoji for c.
func CharacterIcon(c rc.Character) string {
	if icon, ok := characterIcons[c]; ok {
		return icon
	}
	return "?"
}

// IconFormatter writes compact emoji hints.
type IconFormatter struct{}

func (IconFormatter) Header(steps int) string {
	return fmt.Sprintf("%s %d", IconBoat, steps)
}

func (IconFormatter) Action(m rc.Move) string {
	switch m.Kind {
	case rc.Board:
		return fmt.Sprintf("%s %s %s", CharacterIcon(m.Character), IconArrow, IconBoat)
	case rc.Disembark:
		return fmt.Sprintf("%s %s %s", CharacterIcon(m.Character), IconArrow, bankIcon(m.Side))
	case rc.Cross:
		dir := IconRight
		if m.Side.Opposite() == rc.Left {
			dir = IconLeft
		}
		return fmt.Sprintf("%s %s", IconBoat, dir)
	}
	return m.String()
}

func (IconFormatter) Place(side rc.Side, s rc.Set) string {
	return bankIcon(side) + " " + iconSet(s)
}

func (IconFormatter) Boat(s rc.Set) string {
	return IconBoat + " " + iconSet(s)
}

func (IconFormatter) NoSolution() string {
	return "❌ no solution found"
}

func bankIcon(side rc.Side) string {
	if side == rc.Left {
		return IconLeftBank
	}
	return IconRightBank
}

func iconSet(s rc.Set) string {
	if s.Empty() {
		return IconNone
	}
	var b strings.Builder
	for _, c := range s.Members() {
		b.WriteString(CharacterIcon(c))
	}
	return b.String()
}
