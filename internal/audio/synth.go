// Package audio turns simulation cues into short synthesized sounds played
// through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Patch describes one cue sound: a single oscillator with a frequency
// movement and a gain curve.
type Patch struct {
	Wave     WaveType
	From, To float64       // Hz
	RampTime time.Duration // Time to reach To
	Step     bool          // Switch to To at RampTime instead of gliding exponentially
	Gain     float64       // Starting gain
	GainEnd  float64       // Final gain for exponential fades; linear fades end at 0
	ExpGain  bool
	Duration time.Duration
}

// freqAt returns the oscillator frequency t seconds into the patch.
func (p Patch) freqAt(t float64) float64 {
	ramp := p.RampTime.Seconds()
	switch {
	case ramp <= 0 || t >= ramp:
		return p.To
	case p.Step || p.From <= 0 || p.To <= 0:
		return p.From
	}
	return p.From * math.Pow(p.To/p.From, t/ramp)
}

// gainAt returns the amplitude t seconds into the patch.
func (p Patch) gainAt(t float64) float64 {
	d := p.Duration.Seconds()
	if d <= 0 {
		return 0
	}
	frac := math.Min(t/d, 1)
	if p.ExpGain && p.Gain > 0 && p.GainEnd > 0 {
		return p.Gain * math.Pow(p.GainEnd/p.Gain, frac)
	}
	return p.Gain * (1 - frac)
}

// voice renders a Patch sample by sample.
type voice struct {
	patch    Patch
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

// NewVoice creates a streamer for a patch at the given sample rate.
func NewVoice(p Patch, rate beep.SampleRate) beep.Streamer {
	return &voice{
		patch: p,
		rate:  rate,
		total: rate.N(p.Duration),
	}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.position >= v.total {
			return i, i > 0
		}
		t := float64(v.position) / float64(v.rate)

		val := wave(v.patch.Wave, v.phase) * v.patch.gainAt(t)
		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		v.phase += v.patch.freqAt(t) / float64(v.rate)
		v.phase -= math.Floor(v.phase) // Keep in [0, 1)
		v.position++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// wave evaluates a unit-amplitude waveform at phase in [0, 1).
func wave(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveTriangle:
		return 1.0 - 4.0*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope applies a short attack and release to avoid clicks
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Render builds the full streamer for a patch: oscillator, click guard and volume.
func Render(p Patch, rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewVoice(p, rate)
	shaped := NewEnvelope(osc, p.Duration, 2*time.Millisecond, 5*time.Millisecond, rate)
	return newVolume(shaped, volume)
}
