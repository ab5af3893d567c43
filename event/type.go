package event

import "github.com/lixenwraith/vi-merge/vmath"

// EventType represents the type of game event
type EventType int

const (
	// EventSpawn reports a player drop that produced a ball
	// Trigger: World.RequestSpawn | Payload: Level, Pos
	EventSpawn EventType = iota

	// EventSpawnDropped reports a request discarded at the population cap
	// Trigger: RequestSpawn, merge materialization | Payload: Level
	EventSpawnDropped

	// EventMerge reports two balls retired into one of Level
	// Trigger: merge scan | Payload: Level, Pos, Score (bonus for this merge)
	EventMerge

	// EventWin reports creation of a win-level ball
	// Trigger: merge materialization | Payload: Level, Pos
	EventWin

	// EventGameOver reports the lifeline verdict
	// Trigger: lifeline monitor | Payload: Level, Pos of the offending ball, Reason
	EventGameOver

	// EventReset reports the world returned to its initial state
	// Trigger: World.Reset | Payload: none
	EventReset
)

func (t EventType) String() string {
	switch t {
	case EventSpawn:
		return "spawn"
	case EventSpawnDropped:
		return "spawn_dropped"
	case EventMerge:
		return "merge"
	case EventWin:
		return "win"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// GameEvent is a flat record; unused fields stay zero
type GameEvent struct {
	Type   EventType
	Tick   uint64
	Level  int
	Pos    vmath.Vec2
	Score  int
	Reason string
}
