package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHorizontalMax(t *testing.T) {
	samples := []float32{1, 5, 3, -2, 9, 0, 4, 2, 8, 7, 6, -10, 11, 3, 2, 1, 0, -1, 2, 3}
	got := HorizontalMax(samples)
	assert.Equal(t, float32(11), got)
}

func TestHorizontalMaxSingleSample(t *testing.T) {
	assert.Equal(t, float32(42), HorizontalMax([]float32{42}))
}

func TestHorizontalSum(t *testing.T) {
	n := 41
	samples := make([]float32, n)
	var want float32
	for i := range samples {
		samples[i] = float32(i)
		want += float32(i)
	}
	got := HorizontalSum(samples)
	assert.InDelta(t, want, got, 1e-2)
}

func TestHorizontalSumExactWidths(t *testing.T) {
	samples := make([]float32, 32)
	for i := range samples {
		samples[i] = 1
	}
	assert.Equal(t, float32(32), HorizontalSum(samples))
}
