package game

import (
	"math"

	"sweepsnake/internal/geom"
)

// Vertex and sprite layouts shared with the GL renderer.
const (
	LineStride   = 6 // x, y, r, g, b, a
	SpriteStride = 8 // x, y, size, r, g, b, a, rotation
)

// Sprite sizes in cells.
const (
	HeadSize = 0.9
	FoodSize = 0.7
)

// BodyLineData appends one line-strip vertex per body point, shaded from
// Palette.Tail at the tail-tip to Palette.Body at the head.
func BodyLineData(body []geom.Vector, buf []float32) []float32 {
	buf = buf[:0]
	n := len(body)
	for i, p := range body {
		t := 1.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r, g, b := Palette.Tail.Lerp(Palette.Body, t).Floats()
		buf = append(buf, float32(p.X), float32(p.Y), r, g, b, 1)
	}
	return buf
}

// BorderLineData returns a closed line strip around a w x h board.
func BorderLineData(w, h float64, buf []float32) []float32 {
	buf = buf[:0]
	r, g, b := Palette.Border.Floats()
	for _, p := range [...][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}, {0, 0}} {
		buf = append(buf, float32(p[0]), float32(p[1]), r, g, b, 1)
	}
	return buf
}

// SpriteData appends the food and head sprites for st.
func SpriteData(st State, buf []float32) []float32 {
	buf = buf[:0]
	fr, fg, fb := Palette.Food.Floats()
	buf = append(buf, float32(st.Food.X), float32(st.Food.Y), FoodSize, fr, fg, fb, 1, 0)
	if len(st.Snake) == 0 {
		return buf
	}
	head := st.Snake[len(st.Snake)-1]
	heading := float32(math.Atan2(st.Direction.Y, st.Direction.X))
	if st.Polarity == SweepAgainst {
		heading += math.Pi
	}
	hr, hg, hb := Palette.Head.Floats()
	buf = append(buf, float32(head.X), float32(head.Y), HeadSize, hr, hg, hb, 1, heading)
	return buf
}

// Cell is an integer board cell.
type Cell struct {
	X, Y int
}

// CellOf returns the cell containing p.
func CellOf(p geom.Vector) Cell {
	return Cell{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// BodyCells rasterises the body by sampling every segment at half-cell
// steps. Cells are returned tail to head without duplicates; points
// outside the w x h board are skipped.
func BodyCells(body []geom.Vector, w, h int) []Cell {
	seen := make(map[Cell]bool)
	var cells []Cell
	add := func(p geom.Vector) {
		if !p.IsFinite() {
			return
		}
		c := CellOf(p)
		if c.X < 0 || c.Y < 0 || c.X >= w || c.Y >= h || seen[c] {
			return
		}
		seen[c] = true
		cells = append(cells, c)
	}

	if len(body) == 1 {
		add(body[0])
		return cells
	}
	for i := 1; i < len(body); i++ {
		seg := geom.NewSegment(body[i-1], body[i])
		length := seg.Length()
		if math.IsInf(length, 0) || math.IsNaN(length) {
			continue
		}
		for d := 0.0; d < length; d += 0.5 {
			add(seg.PointAt(d))
		}
		add(seg.End)
	}
	return cells
}
