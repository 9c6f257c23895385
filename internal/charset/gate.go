package charset

import "github.com/verte-zerg/tuipass/internal/model"

// SelectedCount is the number of sources that need a representative: distinct
// selected group ids plus one for non-empty extra characters.
func SelectedCount(cfg model.Config) int {
	seen := make(map[model.GroupID]struct{}, len(cfg.Groups))
	for _, id := range cfg.Groups {
		seen[id] = struct{}{}
	}
	count := len(seen)
	if cfg.Extra != "" {
		count++
	}
	return count
}

// CanGenerate reports whether cfg may be handed to the composer. A selected
// group left empty by the exclusions blocks generation even when other
// groups remain usable.
func CanGenerate(cfg model.Config) bool {
	if cfg.Length < 1 {
		return false
	}
	count := SelectedCount(cfg)
	if count < 1 || count > cfg.Length {
		return false
	}
	return len(FullyExcluded(cfg)) == 0
}

// FullyExcluded lists selected groups with no character left after
// cfg.Exclude. Unknown ids are reported too.
func FullyExcluded(cfg model.Config) []model.GroupID {
	excluded := runeSet(cfg.Exclude)
	var out []model.GroupID
	for _, id := range cfg.Groups {
		g, ok := Lookup(id)
		if !ok || !hasRemaining(g.Members, excluded) {
			out = append(out, id)
		}
	}
	return out
}

func hasRemaining(chars string, excluded map[rune]struct{}) bool {
	for _, r := range chars {
		if _, ok := excluded[r]; !ok {
			return true
		}
	}
	return false
}
