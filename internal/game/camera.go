package game

import "math"

// BoardMargin is the border, in cells, kept around the board when fitting.
const BoardMargin = 1.0

type Camera struct {
	X, Y float64 // board space, camera centre
	Zoom float64 // screen pixels per cell

	// Screen shake.
	ShakeX, ShakeY float64 // current offset in cells
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

// Fit centres the camera on a boardW x boardH board and zooms so the
// whole board plus BoardMargin is visible in an fbW x fbH framebuffer.
func (c *Camera) Fit(boardW, boardH float64, fbW, fbH int) {
	c.X = boardW * 0.5
	c.Y = boardH * 0.5
	if fbW <= 0 || fbH <= 0 {
		c.Zoom = 1
		return
	}
	zx := float64(fbW) / (boardW + 2*BoardMargin)
	zy := float64(fbH) / (boardH + 2*BoardMargin)
	c.Zoom = math.Max(math.Min(zx, zy), 1e-3)
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	rr := NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// EffectivePos returns camera position with shake applied.
func (c *Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Y + c.ShakeY
}
