package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-merge/audio"
	"github.com/lixenwraith/vi-merge/config"
	"github.com/lixenwraith/vi-merge/engine"
	"github.com/lixenwraith/vi-merge/event"
	"github.com/lixenwraith/vi-merge/parameter"
	"github.com/lixenwraith/vi-merge/render"
	"github.com/lixenwraith/vi-merge/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/")
	fixedFlag  = flag.Bool("fixed", false, "Advance the simulation in fixed steps")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	muteFlag   = flag.Bool("mute", false, "Start with audio disabled")
	dumpFlag   = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
)

// screen is held for crash cleanup
var screen tcell.Screen

func crash(what string, r any) {
	if screen != nil {
		screen.Fini()
	}
	// \r\n in case the terminal is still raw
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", what, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			crash("VI-MERGE", r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	if *dumpFlag {
		if err := config.Encode(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config) {
	if *fixedFlag {
		cfg.Engine.FixedStep = true
	}
	if *seedFlag != 0 {
		cfg.Engine.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
}

func run(cfg *config.Config) error {
	seed := cfg.Engine.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("vi-merge: seed=%#x fixed=%v max_balls=%d", seed, cfg.Engine.FixedStep, cfg.World.MaxBalls)

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	screen = s
	defer s.Fini()
	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()

	world := engine.NewWorld(cfg, render.NewLevelPalette(), vmath.NewFastRand(seed))
	renderer := render.NewRenderer(s, world.Bounds())
	stepper := engine.NewStepper(world, nil, &cfg.Engine)

	// Audio is optional: keep playing silent
	player := audio.NewPlayer(&cfg.Audio)
	if err := player.Init(); err != nil {
		log.Printf("vi-merge: audio init failed: %v (continuing without audio)", err)
	}
	defer player.Close()

	ctl := newController(s, world, renderer, stepper, player)

	events := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER", r)
			}
		}()
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	var snap engine.Snapshot
	for {
		select {
		case ev := <-events:
			if !ctl.HandleEvent(ev) {
				log.Printf("vi-merge: exit score=%d", world.Score())
				return nil
			}
		case <-frameTicker.C:
			stepper.Frame()
			for _, e := range world.Events() {
				player.Handle(e)
				if e.Type != event.EventSpawn {
					log.Printf("event: %s tick=%d level=%d score=%d %s", e.Type, e.Tick, e.Level, e.Score, e.Reason)
				}
			}
			world.Snapshot(&snap)
			renderer.SetStatus(ctl.status())
			renderer.Draw(&snap)
		}
	}
}
