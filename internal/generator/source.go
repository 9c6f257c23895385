package generator

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
)

// Source yields uniform integers in [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

// Intn returns a uniform integer in [0, n). It panics if n <= 0.
func (CryptoSource) Intn(n int) int {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand.Reader does not fail on supported platforms.
		panic("generator: reading crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}

// NewSeeded returns a deterministic Generator for reproducible output.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

var (
	_ Source = CryptoSource{}
	_ Source = (*rand.Rand)(nil)
)
