package audio

import "math"

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < ChannelCount; c++ {
		o := i*8 + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// tone renders dur seconds of an FM voice sweeping from f0 to f1.
func tone(dur, f0, f1, modRatio, modIdx, gain float64) []byte {
	n := int(dur * SampleRate)
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := f0 + (f1-f0)*p
		putStereoF32(buf, i, softSat(fm(t, freq, modRatio, modIdx*env)*env*gain))
	}
	return buf
}

// Generate renders the samples for kind as interleaved float32 stereo.
func Generate(kind SoundKind) []byte {
	switch kind {
	case SoundBounce:
		// Short woody knock, pitched down like a wall hit.
		return tone(0.06, 900, 420, 1.5, 2.2, 0.45)
	case SoundStart:
		return tone(0.18, 480, 1200, 2.0, 3.5, 0.5)
	case SoundPause:
		return tone(0.065, 1400, 700, 1.0, 0.6, 0.38)
	case SoundRestart:
		return tone(0.12, 600, 900, 2.0, 1.8, 0.45)
	}
	return nil
}
