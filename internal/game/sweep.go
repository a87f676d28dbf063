package game

// Polarity is the horizontal sweep the snake is currently following.
//
// SweepAlong moves points by +direction, SweepAgainst by -direction.
// The tail step picks the polarity from the x of the vertex ahead of the
// tail; the head step of the same tick then moves with that polarity, so
// touching a boundary at the tail is what turns the head around.
type Polarity uint8

const (
	SweepAlong   Polarity = iota // initial; the "revert" flag set
	SweepAgainst                 // the "revert" flag cleared
)

func (p Polarity) String() string {
	switch p {
	case SweepAlong:
		return "along"
	case SweepAgainst:
		return "against"
	}
	return "unknown"
}

// Sign is the factor applied to a displacement moved under p.
func (p Polarity) Sign() float64 {
	if p == SweepAgainst {
		return -1
	}
	return 1
}

// resolveSweep applies the boundary rule to the forward vertex x.
//
//	x >= bound, or SweepAgainst and x > 0  -> SweepAgainst
//	x <= 0, or SweepAlong and x < bound    -> SweepAlong
//
// ok is false only when neither holds (x is NaN).
func resolveSweep(x, bound float64, current Polarity) (next Polarity, ok bool) {
	if bound <= x || (current == SweepAgainst && x > 0) {
		return SweepAgainst, true
	}
	if x <= 0 || (current == SweepAlong && x < bound) {
		return SweepAlong, true
	}
	return current, false
}
