// Package charset defines character groups and derives password alphabets.
package charset

import "github.com/verte-zerg/tuipass/internal/model"

// Group is a named, fixed set of characters.
type Group struct {
	ID      model.GroupID
	Members string
}

// Similar holds visually ambiguous characters dropped by ExcludeSimilar.
const Similar = "0O1lI|vVuU"

var groups = []Group{
	{ID: model.UpperLetters, Members: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
	{ID: model.LowerLetters, Members: "abcdefghijklmnopqrstuvwxyz"},
	{ID: model.Numbers, Members: "0123456789"},
	{ID: model.Logograms, Members: "#%&^`~$@"},
	{ID: model.ExtendedASCII, Members: extendedASCII()},
	{ID: model.Punctuation, Members: ".,;:"},
	{ID: model.Quotes, Members: `"'`},
	{ID: model.Slashes, Members: `/\`},
	{ID: model.MathSymbols, Members: "+-*=<>!?"},
	{ID: model.Parentheses, Members: "()[]{}"},
}

// extendedASCII covers U+00A1..U+00FF without the invisible soft hyphen.
func extendedASCII() string {
	runes := make([]rune, 0, 0xFF-0xA1)
	for r := rune(0xA1); r <= 0xFF; r++ {
		if r == 0xAD {
			continue
		}
		runes = append(runes, r)
	}
	return string(runes)
}

// Groups returns all groups in their fixed order.
func Groups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups)
	return out
}

// Lookup returns the group with the given id.
func Lookup(id model.GroupID) (Group, bool) {
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// IsGroup reports whether id names a known group.
func IsGroup(id model.GroupID) bool {
	_, ok := Lookup(id)
	return ok
}

// selected returns the known groups picked by cfg, in fixed order, each once.
func selected(cfg model.Config) []Group {
	out := make([]Group, 0, len(cfg.Groups))
	for _, g := range groups {
		if cfg.HasGroup(g.ID) {
			out = append(out, g)
		}
	}
	return out
}
