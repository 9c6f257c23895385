// Package generator composes random passwords from an alphabet.
package generator

import (
	"errors"

	"github.com/verte-zerg/tuipass/internal/charset"
	"github.com/verte-zerg/tuipass/internal/model"
)

var (
	// ErrEmptyAlphabet is returned when there is nothing to draw from.
	ErrEmptyAlphabet = errors.New("alphabet is empty")
	// ErrInvalidLength is returned for a target length below 1.
	ErrInvalidLength = errors.New("password length must be at least 1")
)

// Generator produces randomized passwords.
type Generator struct {
	rnd Source
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{rnd: CryptoSource{}}
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(src Source) *Generator {
	return &Generator{rnd: src}
}

// Compose builds a password of cfg.Length runes from alphabet. With
// cfg.RequireAll it first picks one character from each non-empty required
// source. Required picks are never truncated, so a config with more sources
// than cfg.Length yields a longer password; charset.CanGenerate rejects such
// configs up front.
func (g *Generator) Compose(alphabet []rune, cfg model.Config) (string, error) {
	if cfg.Length < 1 {
		return "", ErrInvalidLength
	}
	if len(alphabet) == 0 {
		return "", ErrEmptyAlphabet
	}

	buf := make([]rune, 0, cfg.Length)
	if cfg.RequireAll {
		for _, src := range charset.Sources(cfg) {
			if len(src) == 0 {
				continue
			}
			buf = append(buf, src[g.rnd.Intn(len(src))])
		}
	}
	for len(buf) < cfg.Length {
		buf = append(buf, alphabet[g.rnd.Intn(len(alphabet))])
	}
	g.shuffle(buf)
	return string(buf), nil
}

// shuffle is a Fisher-Yates shuffle.
func (g *Generator) shuffle(runes []rune) {
	for i := len(runes) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		runes[i], runes[j] = runes[j], runes[i]
	}
}
