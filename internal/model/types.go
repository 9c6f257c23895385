// Package model defines shared data structures.
package model

// GroupID identifies a fixed character group.
type GroupID string

// Group identifiers offered for selection.
const (
	UpperLetters  GroupID = "upper_letters"
	LowerLetters  GroupID = "lower_letters"
	Numbers       GroupID = "numbers"
	Logograms     GroupID = "logograms"
	ExtendedASCII GroupID = "extended_ascii"
	Punctuation   GroupID = "punctuation"
	Quotes        GroupID = "quotes"
	Slashes       GroupID = "slashes"
	MathSymbols   GroupID = "math_symbols"
	Parentheses   GroupID = "parentheses"
)

// Config describes a single generation request.
type Config struct {
	Groups         []GroupID
	Extra          string
	Exclude        string
	ExcludeSimilar bool
	RequireAll     bool
	Length         int
}

// HasGroup reports whether id is selected.
func (c Config) HasGroup(id GroupID) bool {
	for _, g := range c.Groups {
		if g == id {
			return true
		}
	}
	return false
}

// WithGroup returns a copy of c with id selected or deselected.
func (c Config) WithGroup(id GroupID, selected bool) Config {
	groups := make([]GroupID, 0, len(c.Groups)+1)
	for _, g := range c.Groups {
		if g != id {
			groups = append(groups, g)
		}
	}
	if selected {
		groups = append(groups, id)
	}
	c.Groups = groups
	return c
}

// Tier is a discrete password quality bucket.
type Tier string

// Quality tiers, weakest first.
const (
	VeryWeak   Tier = "very_weak"
	Weak       Tier = "weak"
	Fair       Tier = "fair"
	Strong     Tier = "strong"
	VeryStrong Tier = "very_strong"
)

// Score is the strength estimate of a password.
type Score struct {
	Entropy float64
	Tier    Tier
}

// Result is everything derived from a Config on one evaluation.
type Result struct {
	Alphabet    []rune
	Password    string
	Score       Score
	CanGenerate bool
}
