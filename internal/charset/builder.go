package charset

import (
	"strings"

	"github.com/verte-zerg/tuipass/internal/model"
)

// Build derives the alphabet for cfg: extra characters followed by every
// selected group, deduplicated with the first occurrence kept, minus excluded
// characters and, when requested, minus similar characters. The result may be
// empty.
func Build(cfg model.Config) []rune {
	var b strings.Builder
	b.WriteString(cfg.Extra)
	for _, g := range selected(cfg) {
		b.WriteString(g.Members)
	}
	return filter(b.String(), cfg)
}

// Sources returns the characters each required source may contribute when
// cfg.RequireAll is set: one entry per selected group in fixed order, then
// one for extra characters when non-empty. Entries are filtered like the
// alphabet, so any of them may be empty.
func Sources(cfg model.Config) [][]rune {
	sel := selected(cfg)
	out := make([][]rune, 0, len(sel)+1)
	for _, g := range sel {
		out = append(out, filter(g.Members, cfg))
	}
	if cfg.Extra != "" {
		out = append(out, filter(cfg.Extra, cfg))
	}
	return out
}

func filter(chars string, cfg model.Config) []rune {
	excluded := runeSet(cfg.Exclude)
	if cfg.ExcludeSimilar {
		for _, r := range Similar {
			excluded[r] = struct{}{}
		}
	}
	seen := make(map[rune]struct{}, len(chars))
	out := make([]rune, 0, len(chars))
	for _, r := range chars {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		if _, ok := excluded[r]; ok {
			continue
		}
		out = append(out, r)
	}
	return out
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}
