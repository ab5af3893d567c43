package main

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-merge/audio"
	"github.com/lixenwraith/vi-merge/engine"
	"github.com/lixenwraith/vi-merge/parameter"
	"github.com/lixenwraith/vi-merge/render"
)

// controller translates terminal events into world commands
type controller struct {
	screen   tcell.Screen
	world    *engine.World
	renderer *render.Renderer
	stepper  *engine.Stepper
	player   *audio.Player

	aimCol  int
	pressed bool // Button1 held, clicks fire on the press edge only
}

func newController(screen tcell.Screen, world *engine.World, renderer *render.Renderer, stepper *engine.Stepper, player *audio.Player) *controller {
	c := &controller{
		screen:   screen,
		world:    world,
		renderer: renderer,
		stepper:  stepper,
		player:   player,
	}
	c.centerAim()
	return c
}

func (c *controller) centerAim() {
	vp := c.renderer.Viewport()
	c.aimCol = vp.OriginCol + vp.UsedCols/2
}

// HandleEvent applies one event and returns false when the game should exit
func (c *controller) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		c.screen.Sync()
		c.renderer.Resize()
		c.centerAim()
	case *tcell.EventKey:
		return c.handleKey(ev)
	case *tcell.EventMouse:
		c.handleMouse(ev)
	}
	return true
}

func (c *controller) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		c.moveAim(-parameter.AimStepCols)
	case tcell.KeyRight:
		c.moveAim(parameter.AimStepCols)
	case tcell.KeyEnter:
		c.dropAtAim()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			c.world.Reset()
		case 'p':
			log.Printf("input: paused=%v", c.stepper.TogglePause())
		case 'm':
			log.Printf("input: audio=%v", c.player.Toggle())
		case ' ':
			c.dropAtAim()
		case 'h':
			c.moveAim(-parameter.AimStepCols)
		case 'l':
			c.moveAim(parameter.AimStepCols)
		}
	}
	return true
}

func (c *controller) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	c.aimCol = col

	down := ev.Buttons()&tcell.Button1 != 0
	click := down && !c.pressed
	c.pressed = down
	if !click {
		return
	}

	if c.renderer.HitAgain(col, row) {
		c.world.Reset()
		return
	}
	if c.stepper.Paused() {
		return
	}
	p := c.renderer.Viewport().CellCenter(col, row)
	c.world.DropNext(p.X, p.Y)
}

func (c *controller) moveAim(d int) {
	vp := c.renderer.Viewport()
	c.aimCol = min(max(c.aimCol+d, vp.OriginCol), vp.OriginCol+vp.UsedCols-1)
}

func (c *controller) dropAtAim() {
	if c.stepper.Paused() {
		return
	}
	if c.world.GameOver() {
		c.world.Reset()
		return
	}
	c.world.DropNext(c.renderer.Viewport().WorldX(c.aimCol), parameter.KeyboardDropY)
}

// status is the right-aligned HUD text
func (c *controller) status() string {
	switch {
	case c.stepper.Paused():
		return "PAUSED"
	case !c.player.Enabled():
		return "muted"
	default:
		return ""
	}
}
