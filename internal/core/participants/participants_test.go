package participants

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange_Validate(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		wantErr bool
	}{
		{name: "single value", r: Range{Min: 1, Max: 2}},
		{name: "wide", r: Range{Min: 0, Max: 100}},
		{name: "negative min", r: Range{Min: -3, Max: 1}},
		{name: "equal bounds", r: Range{Min: 4, Max: 4}, wantErr: true},
		{name: "inverted", r: Range{Min: 5, Max: 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRange_PickStaysInBounds(t *testing.T) {
	ranges := []Range{
		{Min: 1, Max: 2},
		{Min: 2, Max: 3},
		{Min: 1, Max: 5},
		{Min: -2, Max: 3},
		{Min: 10, Max: 1000},
	}

	rng := rand.New(rand.NewPCG(1, 2))

	for _, r := range ranges {
		t.Run(r.String(), func(t *testing.T) {
			require.NoError(t, r.Validate())
			for range 2000 {
				v := r.Pick(rng)
				assert.GreaterOrEqual(t, v, r.Min)
				assert.Less(t, v, r.Max)
			}
		})
	}
}

func TestRange_PickSingleValue(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	r := Range{Min: 2, Max: 3}

	for range 100 {
		assert.Equal(t, 2, r.Pick(rng))
	}
}

func TestRange_PickCoversRangeButNeverMax(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 99))
	r := Range{Min: 1, Max: 5}

	seen := map[int]int{}
	for range 5000 {
		seen[r.Pick(rng)]++
	}

	assert.Len(t, seen, 4)
	for v := r.Min; v < r.Max; v++ {
		assert.Positive(t, seen[v], "value %d never picked", v)
	}
	assert.Zero(t, seen[r.Max])
}

func TestRange_PickPanicsOnEmptyRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	assert.Panics(t, func() { Range{Min: 3, Max: 3}.Pick(rng) })
}
