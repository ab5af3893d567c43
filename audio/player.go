package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-merge/config"
	"github.com/lixenwraith/vi-merge/event"
	"github.com/lixenwraith/vi-merge/parameter"
)

// Player turns game events into sound effects on a shared mixer
// Every method is safe to call when the speaker never initialized
type Player struct {
	mu          sync.Mutex
	cfg         config.Audio
	mixer       *beep.Mixer
	enabled     bool
	initialized bool
}

// NewPlayer creates a player; nothing is audible until Init succeeds
// cfg.Enabled only sets the initial toggle, the device opens regardless
func NewPlayer(cfg *config.Audio) *Player {
	return &Player{
		cfg:     *cfg,
		mixer:   &beep.Mixer{},
		enabled: cfg.Enabled,
	}
}

// Init opens the speaker and starts the mixer. A failure leaves the player silent
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferTime)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close clears pending sounds; beep has no speaker close, silence is enough
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Toggle flips enabled state and returns it
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !p.enabled
	return p.enabled
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Handle plays the sound bound to an event type, if any
func (p *Player) Handle(e event.GameEvent) {
	if s := p.streamerFor(e); s != nil {
		p.play(s)
	}
}

// streamerFor maps an event to a fresh streamer, nil when the event is silent
func (p *Player) streamerFor(e event.GameEvent) beep.Streamer {
	switch e.Type {
	case event.EventSpawn:
		return CreateDropSound(&p.cfg)
	case event.EventMerge:
		return CreateMergeSound(&p.cfg, e.Level)
	case event.EventWin:
		return CreateWinSound(&p.cfg)
	case event.EventGameOver:
		return CreateLoseSound(&p.cfg)
	default:
		return nil
	}
}

// HandleAll plays every event in order
func (p *Player) HandleAll(events []event.GameEvent) {
	for _, e := range events {
		p.Handle(e)
	}
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Pending reports streamers still held by the mixer
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}
