package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Lerp(to RGB, t float64) RGB {
	return RGB{R: lerpU8(c.R, to.R, t), G: lerpU8(c.G, to.G, t), B: lerpU8(c.B, to.B, t)}
}

// Floats returns the colour as 0..1 components for GL buffers.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

var Palette = struct {
	Background RGB
	Border     RGB
	Tail       RGB
	Body       RGB
	Head       RGB
	Food       RGB
	Text       RGB
}{
	Background: RGB{R: 24, G: 26, B: 31},
	Border:     RGB{R: 214, G: 190, B: 153},
	Tail:       RGB{R: 70, G: 95, B: 50},
	Body:       RGB{R: 120, G: 150, B: 85},
	Head:       RGB{R: 255, G: 210, B: 110},
	Food:       RGB{R: 190, G: 70, B: 45},
	Text:       RGB{R: 216, G: 210, B: 191},
}
