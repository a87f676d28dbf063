package geom

// Segment is a directed line from Start to End. It holds copies of both
// endpoints, so it stays valid independently of where they came from.
type Segment struct {
	Start, End Vector
}

func NewSegment(start, end Vector) Segment {
	return Segment{Start: start, End: end}
}

// Vector returns End - Start.
func (s Segment) Vector() Vector {
	return s.End.Subtract(s.Start)
}

func (s Segment) Length() float64 {
	return s.Vector().Length()
}

// Contains reports whether p lies on the segment, using the metric test
// |start,end| == |start,p| + |p,end| within Epsilon.
func (s Segment) Contains(p Vector) bool {
	first := NewSegment(s.Start, p)
	second := NewSegment(p, s.End)
	return approxEqual(s.Length(), first.Length()+second.Length())
}

// PointAt returns the point d units from Start towards End.
// A zero-length segment yields Start.
func (s Segment) PointAt(d float64) Vector {
	return s.Start.Add(s.Vector().Normalize().ScaleBy(d))
}
