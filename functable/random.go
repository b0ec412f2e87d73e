package functable

import (
	"math/rand"
	"time"
)

// RandomSource is the generator behind 'rand' and 'randInt'. *rand.Rand satisfies it
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// NewRandomSource returns a deterministic source for the seed
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

func defaultRandomSource() RandomSource {
	return NewRandomSource(time.Now().UnixNano())
}
