// Package session derives everything the UI shows from a configuration.
package session

import (
	"github.com/verte-zerg/tuipass/internal/charset"
	"github.com/verte-zerg/tuipass/internal/generator"
	"github.com/verte-zerg/tuipass/internal/model"
	"github.com/verte-zerg/tuipass/internal/strength"
)

// Evaluate runs the gate, builds the alphabet, composes a password and scores
// it. When the config cannot generate, the result carries no password and a
// zero score. A config that passes the gate but filters down to an empty
// alphabet, e.g. extra characters that are all similar, also cannot generate.
func Evaluate(cfg model.Config, gen *generator.Generator) (model.Result, error) {
	res := model.Result{Score: strength.Estimate("")}
	if !charset.CanGenerate(cfg) {
		return res, nil
	}
	res.Alphabet = charset.Build(cfg)
	if len(res.Alphabet) == 0 {
		return res, nil
	}
	password, err := gen.Compose(res.Alphabet, cfg)
	if err != nil {
		return res, err
	}
	res.Password = password
	res.Score = strength.Estimate(password)
	res.CanGenerate = true
	return res, nil
}

// Ready reports whether Evaluate would produce a password for cfg.
func Ready(cfg model.Config) bool {
	return charset.CanGenerate(cfg) && len(charset.Build(cfg)) > 0
}
