package crypto

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
	"sync"
)

// Source supplies uniform random integers to the generator.
// Intn returns a value in [0, n) and is only called with n > 0.
type Source interface {
	Intn(n int) int
}

// CryptoSource draws from crypto/rand. It is the default source.
type CryptoSource struct{}

// Intn returns a uniform value in [0, n) read from crypto/rand.Reader.
func (CryptoSource) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand.Reader does not return errors on supported platforms.
		panic("crypto: reading random source: " + err.Error())
	}
	return int(v.Int64())
}

// MathSource is a seeded, non-cryptographic source. Two sources with the
// same seed produce the same sequence. It is safe for concurrent use.
type MathSource struct {
	mu sync.Mutex
	r  *mathrand.Rand
}

// NewMathSource returns a PCG-backed source seeded with seed.
func NewMathSource(seed uint64) *MathSource {
	return &MathSource{r: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a uniform value in [0, n).
func (s *MathSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// pick draws one character uniformly from alphabet.
func pick(src Source, alphabet string) byte {
	return alphabet[src.Intn(len(alphabet))]
}

// shuffle permutes data in place with Fisher-Yates.
func shuffle(src Source, data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
