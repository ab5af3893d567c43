package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/vi-merge/config"
	"github.com/lixenwraith/vi-merge/event"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func testAudioConfig() *config.Audio {
	cfg := config.Default().Audio
	return &cfg
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drain(osc)
		if n != 4410 {
			t.Errorf("Wave %d: expected 4410 samples, got %d", wave, n)
		}
		if peak > 1.0 {
			t.Errorf("Wave %d: sample out of range, peak %f", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("Wave %d: expected no error, got %v", wave, osc.Err())
		}
	}
}

func TestOscillatorExhausted(t *testing.T) {
	osc := NewOscillator(440, time.Millisecond, WaveSine, beep.SampleRate(1000))
	buf := make([][2]float64, 4)

	if n, ok := osc.Stream(buf); n != 1 || !ok {
		t.Errorf("Expected (1, true), got (%d, %v)", n, ok)
	}
	if n, ok := osc.Stream(buf); n != 0 || ok {
		t.Errorf("Expected drained (0, false), got (%d, %v)", n, ok)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant +1
	env := NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}

	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[5][0] != 0.5 {
		t.Errorf("Expected half volume mid-attack, got %f", buf[5][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("Expected full volume in sustain, got %f", buf[50][0])
	}
	if buf[90][0] != 0.5 {
		t.Errorf("Expected half volume mid-release, got %f", buf[90][0])
	}
}

func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, rate), 0)

	_, peak := drain(s)
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}

func TestMergeFrequencyRises(t *testing.T) {
	if f := MergeFrequency(2); f != 392 {
		t.Errorf("Expected base 392Hz at level 2, got %f", f)
	}
	// Six levels up at two semitones each is one octave
	if f := MergeFrequency(8); math.Abs(f-784) > 1e-9 {
		t.Errorf("Expected 784Hz at level 8, got %f", f)
	}
	for level := 3; level <= 10; level++ {
		if MergeFrequency(level) <= MergeFrequency(level-1) {
			t.Errorf("Expected pitch rising at level %d", level)
		}
	}
}

func TestSoundLengths(t *testing.T) {
	cfg := testAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		name  string
		s     beep.Streamer
		want  int
		slack int // Mixers may pad the final buffer with silence
	}{
		{"drop", CreateDropSound(cfg), rate.N(60 * time.Millisecond), 0},
		{"merge", CreateMergeSound(cfg, 4), rate.N(140 * time.Millisecond), 512},
		{"win", CreateWinSound(cfg), 3 * rate.N(120*time.Millisecond), 0},
		{"lose", CreateLoseSound(cfg), rate.N(400 * time.Millisecond), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, peak := drain(tt.s)
			if n < tt.want || n > tt.want+tt.slack {
				t.Errorf("Expected %d samples (+%d), got %d", tt.want, tt.slack, n)
			}
			if peak == 0 {
				t.Error("Expected audible output")
			}
		})
	}
}

func TestPlayerRoutesEvents(t *testing.T) {
	p := NewPlayer(testAudioConfig())

	audible := []event.EventType{event.EventSpawn, event.EventMerge, event.EventWin, event.EventGameOver}
	for _, typ := range audible {
		if p.streamerFor(event.GameEvent{Type: typ, Level: 3}) == nil {
			t.Errorf("Expected sound for %s", typ)
		}
	}

	silent := []event.EventType{event.EventSpawnDropped, event.EventReset}
	for _, typ := range silent {
		if p.streamerFor(event.GameEvent{Type: typ}) != nil {
			t.Errorf("Expected no sound for %s", typ)
		}
	}
}

// TestPlayerGracefulDegradation verifies operations without speaker init never panic
func TestPlayerGracefulDegradation(t *testing.T) {
	p := NewPlayer(testAudioConfig())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Player panicked without initialization: %v", r)
		}
	}()

	p.HandleAll([]event.GameEvent{{Type: event.EventSpawn}, {Type: event.EventMerge, Level: 5}})
	if p.Pending() != 0 {
		t.Errorf("Expected nothing queued without speaker, got %d", p.Pending())
	}
	p.Close()
}

func TestPlayerToggle(t *testing.T) {
	cfg := testAudioConfig()
	cfg.Enabled = true
	p := NewPlayer(cfg)

	if p.Toggle() {
		t.Error("Expected disabled after toggle")
	}
	if !p.Toggle() || !p.Enabled() {
		t.Error("Expected enabled after second toggle")
	}
}
