package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentVectorAndLength(t *testing.T) {
	s := NewSegment(New(1, 1), New(4, 5))
	assert.Equal(t, New(3, 4), s.Vector())
	assert.Equal(t, 5.0, s.Length())

	rev := NewSegment(s.End, s.Start)
	assert.Equal(t, New(-3, -4), rev.Vector())
	assert.Equal(t, s.Length(), rev.Length())
}

func TestSegmentContains(t *testing.T) {
	s := NewSegment(New(0, 0), New(10, 0))

	tests := []struct {
		name  string
		point Vector
		want  bool
	}{
		{"middle", New(5, 0), true},
		{"start", New(0, 0), true},
		{"end", New(10, 0), true},
		{"above", New(5, 1), false},
		{"beyond end", New(11, 0), false},
		{"before start", New(-1, 0), false},
		{"within tolerance", New(5, 1e-9), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Contains(tt.point))
		})
	}
}

func TestSegmentContainsDiagonal(t *testing.T) {
	s := NewSegment(New(1, 1), New(4, 5))
	assert.True(t, s.Contains(New(2.5, 3)))
	assert.False(t, s.Contains(New(2.5, 3.1)))
}

func TestSegmentContainsDegenerate(t *testing.T) {
	s := NewSegment(New(2, 2), New(2, 2))
	assert.True(t, s.Contains(New(2, 2)))
	assert.False(t, s.Contains(New(2, 3)))
}

func TestSegmentCopiesEndpoints(t *testing.T) {
	body := []Vector{New(0, 0), New(2, 0)}
	s := NewSegment(body[0], body[1])
	body[0] = New(100, 100)
	body[1] = New(-100, -100)
	assert.Equal(t, 2.0, s.Length())
}

func TestSegmentPointAt(t *testing.T) {
	s := NewSegment(New(1, 1), New(4, 5))
	assert.True(t, s.PointAt(2.5).ApproxEqual(New(2.5, 3)))
	assert.True(t, s.PointAt(0).ApproxEqual(s.Start))
	assert.True(t, s.PointAt(s.Length()).ApproxEqual(s.End))

	zero := NewSegment(New(3, 3), New(3, 3))
	assert.Equal(t, New(3, 3), zero.PointAt(7))
}
