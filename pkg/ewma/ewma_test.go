package ewma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdate_SeedsFromFirstSample(t *testing.T) {
	assert.Equal(t, 0.05, Update(0, 0.05))
}

func TestUpdate_Fold(t *testing.T) {
	// ewma_0 = r_1; ewma_i = 0.3*r_i + 0.7*ewma_{i-1}
	samples := []float64{1.0, 2.0, 0.5, 0.5}
	want := 1.0
	got := 0.0
	for i, s := range samples {
		got = Update(got, s)
		if i > 0 {
			want = 0.3*s + 0.7*want
		}
		assert.InDelta(t, want, got, 1e-12, "after sample %d", i)
	}
}
