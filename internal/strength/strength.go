// Package strength estimates password strength from empirical entropy.
package strength

import (
	"math"
	"sort"

	"github.com/verte-zerg/tuipass/internal/model"
)

// Tier boundaries in bits; each tier covers [bound, next bound).
const (
	weakBits       = 40
	fairBits       = 60
	strongBits     = 80
	veryStrongBits = 100
)

// Estimate scores password by the Shannon entropy of its own symbol
// distribution multiplied by its length.
func Estimate(password string) model.Score {
	bits := Entropy(password)
	return model.Score{Entropy: bits, Tier: TierFor(bits)}
}

// Entropy returns the total empirical information content of password in
// bits. Frequencies are summed in sorted order so any permutation of the same
// runes produces the identical float.
func Entropy(password string) float64 {
	freq := map[rune]int{}
	n := 0
	for _, r := range password {
		freq[r]++
		n++
	}
	if n == 0 {
		return 0
	}
	counts := make([]int, 0, len(freq))
	for _, f := range freq {
		counts = append(counts, f)
	}
	sort.Ints(counts)

	h := 0.0
	for _, f := range counts {
		p := float64(f) / float64(n)
		h -= p * math.Log2(p)
	}
	return h * float64(n)
}

// TierFor maps entropy bits to a quality tier.
func TierFor(bits float64) model.Tier {
	switch {
	case bits < weakBits:
		return model.VeryWeak
	case bits < fairBits:
		return model.Weak
	case bits < strongBits:
		return model.Fair
	case bits < veryStrongBits:
		return model.Strong
	default:
		return model.VeryStrong
	}
}
