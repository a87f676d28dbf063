package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSweep(t *testing.T) {
	const bound = 20.0
	tests := []struct {
		name    string
		x       float64
		current Polarity
		want    Polarity
		ok      bool
	}{
		{"inside keeps along", 10, SweepAlong, SweepAlong, true},
		{"inside keeps against", 10, SweepAgainst, SweepAgainst, true},
		{"right edge turns along", 20, SweepAlong, SweepAgainst, true},
		{"past right edge turns along", 25, SweepAlong, SweepAgainst, true},
		{"right edge keeps against", 20, SweepAgainst, SweepAgainst, true},
		{"left edge turns against", 0, SweepAgainst, SweepAlong, true},
		{"past left edge turns against", -3, SweepAgainst, SweepAlong, true},
		{"left edge keeps along", 0, SweepAlong, SweepAlong, true},
		{"nan is unresolved", math.NaN(), SweepAgainst, SweepAgainst, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveSweep(tt.x, bound, tt.current)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestPolarityString(t *testing.T) {
	assert.Equal(t, "along", SweepAlong.String())
	assert.Equal(t, "against", SweepAgainst.String())
	assert.Equal(t, "unknown", Polarity(9).String())
	assert.Equal(t, 1.0, SweepAlong.Sign())
	assert.Equal(t, -1.0, SweepAgainst.Sign())
}
