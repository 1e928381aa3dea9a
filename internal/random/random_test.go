package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameStream(t *testing.T) {
	a := New(&Config{Seed: 99})
	b := New(&Config{Seed: 99})

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}

	xs := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	ys := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	a.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	b.Shuffle(len(ys), func(i, j int) { ys[i], ys[j] = ys[j], ys[i] })
	assert.Equal(t, xs, ys)
}

func TestFloat64InRange(t *testing.T) {
	g := New(nil)
	for i := 0; i < 1000; i++ {
		f := g.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}
