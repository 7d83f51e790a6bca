package audio

import "time"

// Patches maps cue names to their sounds.
var Patches = map[string]Patch{
	"jump": {
		Wave: WaveSquare, From: 150, To: 300, RampTime: 100 * time.Millisecond,
		Gain: 0.1, GainEnd: 0.01, ExpGain: true, Duration: 100 * time.Millisecond,
	},
	"eat": {
		Wave: WaveSaw, From: 600, To: 800, RampTime: 100 * time.Millisecond,
		Gain: 0.1, Duration: 150 * time.Millisecond,
	},
	"round_start": {
		Wave: WaveTriangle, From: 440, To: 880, RampTime: 200 * time.Millisecond, Step: true,
		Gain: 0.1, Duration: 500 * time.Millisecond,
	},
	"round_end": {
		Wave: WaveSine, From: 440, To: 880, RampTime: 400 * time.Millisecond, Step: true,
		Gain: 0.2, Duration: time.Second,
	},
	"purchase": {
		Wave: WaveSquare, From: 800, To: 1200, RampTime: 100 * time.Millisecond,
		Gain: 0.1, Duration: 200 * time.Millisecond,
	},
	"shoot": {
		Wave: WaveSquare, From: 200, To: 100, RampTime: 100 * time.Millisecond,
		Gain: 0.1, GainEnd: 0.01, ExpGain: true, Duration: 100 * time.Millisecond,
	},
	"hit": {
		Wave: WaveSaw, From: 100, To: 50, RampTime: 100 * time.Millisecond,
		Gain: 0.2, GainEnd: 0.01, ExpGain: true, Duration: 200 * time.Millisecond,
	},
	"powerup": {
		Wave: WaveTriangle, From: 600, To: 1200, RampTime: 300 * time.Millisecond,
		Gain: 0.1, Duration: 300 * time.Millisecond,
	},
}
