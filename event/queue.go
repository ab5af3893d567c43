package event

import (
	"github.com/lixenwraith/vi-merge/parameter"
)

// EventQueue is a fixed ring buffer of game events
// Single producer and single consumer on the simulation goroutine; not safe for concurrent use
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, advancing head past the oldest entry on overflow. O(1)
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = event
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.Len()
	if n == 0 {
		return nil
	}

	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&parameter.EventBufferMask])
	}
	eq.head = eq.tail
	return result
}

// Len returns pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Clear drops pending events
func (eq *EventQueue) Clear() {
	eq.head = eq.tail
}
