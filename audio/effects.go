package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/vi-merge/config"
	"github.com/lixenwraith/vi-merge/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release tail inside duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	return NewEnvelope(osc, duration, attack, release, rate)
}

// MergeFrequency rises by MergeSoundSemitonesPer semitones per level above 2
func MergeFrequency(level int) float64 {
	steps := float64(max(level-2, 0) * parameter.MergeSoundSemitonesPer)
	return parameter.MergeSoundBaseFreq * math.Pow(2, steps/12)
}

// CreateDropSound generates a short blip for a player drop
func CreateDropSound(cfg *config.Audio) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(parameter.DropSoundFreq, WaveTriangle,
		parameter.DropSoundDuration, parameter.DropSoundAttack, parameter.DropSoundRelease, rate)
	return newVolume(s, 0.6*cfg.MasterVolume)
}

// CreateMergeSound generates a chime whose pitch tracks the product level
func CreateMergeSound(cfg *config.Audio, level int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq := MergeFrequency(level)

	fund := tone(freq, WaveSine,
		parameter.MergeSoundDuration, parameter.MergeSoundAttack, parameter.MergeSoundRelease, rate)
	over := tone(freq*2, WaveSine,
		parameter.MergeSoundDuration, parameter.MergeSoundAttack, parameter.MergeSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, cfg.MasterVolume)
}

// CreateWinSound generates a rising C major arpeggio
func CreateWinSound(cfg *config.Audio) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5
	seq := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		seq[i] = tone(f, WaveSquare,
			parameter.WinNoteDuration, parameter.WinNoteAttack, parameter.WinNoteRelease, rate)
	}
	return newVolume(beep.Seq(seq...), 0.5*cfg.MasterVolume)
}

// CreateLoseSound generates a long low buzz
func CreateLoseSound(cfg *config.Audio) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(parameter.LoseSoundFreq, WaveSaw,
		parameter.LoseSoundDuration, parameter.LoseSoundAttack, parameter.LoseSoundRelease, rate)
	return newVolume(s, 0.5*cfg.MasterVolume)
}
