package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweepsnake/internal/geom"
)

func TestBodyLineData(t *testing.T) {
	body := []geom.Vector{geom.New(1, 2), geom.New(3, 2), geom.New(3, 5)}
	buf := BodyLineData(body, nil)
	require.Len(t, buf, 3*LineStride)

	assert.Equal(t, []float32{1, 2}, buf[0:2])
	tr, tg, tb := Palette.Tail.Floats()
	assert.Equal(t, []float32{tr, tg, tb, 1}, buf[2:6])

	last := buf[2*LineStride:]
	br, bg, bb := Palette.Body.Floats()
	assert.Equal(t, []float32{3, 5, br, bg, bb, 1}, last)

	// The buffer is reused, not grown, for a shorter body.
	again := BodyLineData(body[:1], buf)
	assert.Len(t, again, LineStride)
}

func TestBorderLineData(t *testing.T) {
	buf := BorderLineData(20, 10, nil)
	require.Len(t, buf, 5*LineStride)
	assert.Equal(t, []float32{0, 0}, buf[0:2])
	assert.Equal(t, []float32{20, 10}, buf[2*LineStride:2*LineStride+2])
	assert.Equal(t, buf[0:2], buf[4*LineStride:4*LineStride+2])
}

func TestSpriteData(t *testing.T) {
	g, err := New(DefaultConfig())
	require.NoError(t, err)

	buf := SpriteData(g.Snapshot(), nil)
	require.Len(t, buf, 2*SpriteStride)
	assert.Equal(t, []float32{0.5, 0.5, FoodSize}, buf[0:3])

	head := buf[SpriteStride:]
	assert.Equal(t, []float32{9.5, 9.5, HeadSize}, head[0:3])
	assert.Equal(t, float32(0), head[7])

	st := g.Snapshot()
	st.Polarity = SweepAgainst
	head = SpriteData(st, buf)[SpriteStride:]
	assert.InDelta(t, math.Pi, float64(head[7]), 1e-6)

	st.Snake = nil
	assert.Len(t, SpriteData(st, buf), SpriteStride)
}

func TestBodyCells(t *testing.T) {
	cells := BodyCells([]geom.Vector{geom.New(4.5, 9.5), geom.New(9.5, 9.5)}, 20, 20)
	want := []Cell{{4, 9}, {5, 9}, {6, 9}, {7, 9}, {8, 9}, {9, 9}}
	assert.Equal(t, want, cells)
}

func TestBodyCellsClipsToBoard(t *testing.T) {
	cells := BodyCells([]geom.Vector{geom.New(-3, 0.5), geom.New(2, 0.5)}, 10, 10)
	assert.Equal(t, []Cell{{0, 0}, {1, 0}, {2, 0}}, cells)
}

func TestBodyCellsSkipsNonFinite(t *testing.T) {
	cells := BodyCells([]geom.Vector{geom.New(1.5, 1.5), geom.New(math.Inf(1), 1.5)}, 10, 10)
	assert.Empty(t, cells)

	single := BodyCells([]geom.Vector{geom.New(2.2, 3.7)}, 10, 10)
	assert.Equal(t, []Cell{{2, 3}}, single)
}

func TestCameraFit(t *testing.T) {
	var cam Camera
	cam.Fit(20, 20, 800, 600)
	assert.Equal(t, 10.0, cam.X)
	assert.Equal(t, 10.0, cam.Y)
	assert.InDelta(t, 600.0/22.0, cam.Zoom, 1e-12)

	cam.Fit(20, 20, 0, 0)
	assert.Equal(t, 1.0, cam.Zoom)
}

func TestCameraShakeDecays(t *testing.T) {
	var cam Camera
	cam.AddShake(0.5, 0.2)
	cam.UpdateShake(0.05, 42)
	x, y := cam.EffectivePos()
	assert.LessOrEqual(t, math.Abs(x), 0.5)
	assert.LessOrEqual(t, math.Abs(y), 0.5)

	for i := 0; i < 10; i++ {
		cam.UpdateShake(0.05, 42)
	}
	cam.UpdateShake(0.05, 42)
	x, y = cam.EffectivePos()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Zero(t, cam.ShakeIntensity)
}
