// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package event provides the prioritized event emitter used by editor commands.
package event

import (
	"fmt"
	"sort"
	"strings"
)

// =============================================================================
// PRIORITY
// =============================================================================

// Priority orders listeners of the same event. Higher runs first.
type Priority int

const (
	PriorityLowest  Priority = -100000
	PriorityLow     Priority = -1000
	PriorityNormal  Priority = 0
	PriorityHigh    Priority = 1000
	PriorityHighest Priority = 100000
)

// ParsePriority converts a priority name ("high", "low", ...) to a Priority.
func ParsePriority(name string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lowest":
		return PriorityLowest, nil
	case "low":
		return PriorityLow, nil
	case "", "normal":
		return PriorityNormal, nil
	case "high":
		return PriorityHigh, nil
	case "highest":
		return PriorityHighest, nil
	}
	return PriorityNormal, fmt.Errorf("unknown priority %q", name)
}

// String returns the priority name, or the number for custom priorities.
func (p Priority) String() string {
	switch p {
	case PriorityLowest:
		return "lowest"
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityHighest:
		return "highest"
	}
	return fmt.Sprintf("%d", int(p))
}

// =============================================================================
// EVENT INFO
// =============================================================================

// Info is passed to every listener of a single Fire call.
type Info struct {
	// Name of the fired event
	Name string

	// Source is the object that owns the emitter (may be nil)
	Source any

	// Return lets listeners hand a result back to the caller of Fire
	Return any

	stopped bool
}

// Stop prevents the remaining listeners from being called.
func (i *Info) Stop() {
	i.stopped = true
}

// Stopped reports whether a listener called Stop.
func (i *Info) Stopped() bool {
	return i.stopped
}

// Listener handles a fired event.
type Listener func(info *Info, data any)

// =============================================================================
// EMITTER
// =============================================================================

type registration struct {
	id       uint64
	priority Priority
	listener Listener
}

// Emitter holds listeners keyed by event name. The zero value is ready to use.
// Emitter is not safe for concurrent use; the editor drives it from a single
// goroutine.
type Emitter struct {
	// Source is reported in Info.Source for every fired event
	Source any

	listeners map[string][]registration
	nextID    uint64
}

// On registers a listener and returns a function that removes it.
func (e *Emitter) On(name string, l Listener, p Priority) (off func()) {
	if e.listeners == nil {
		e.listeners = make(map[string][]registration)
	}
	e.nextID++
	reg := registration{id: e.nextID, priority: p, listener: l}

	regs := append(e.listeners[name], reg)
	// Stable sort keeps registration order within a priority.
	sort.SliceStable(regs, func(i, j int) bool {
		return regs[i].priority > regs[j].priority
	})
	e.listeners[name] = regs

	id := reg.id
	return func() { e.off(name, id) }
}

func (e *Emitter) off(name string, id uint64) {
	regs := e.listeners[name]
	for i, reg := range regs {
		if reg.id == id {
			e.listeners[name] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Fire calls the listeners of name in priority order and returns the Info
// they shared.
func (e *Emitter) Fire(name string, data any) *Info {
	info := &Info{Name: name, Source: e.Source}

	// Snapshot so listeners may add or remove listeners while firing.
	regs := make([]registration, len(e.listeners[name]))
	copy(regs, e.listeners[name])

	for _, reg := range regs {
		reg.listener(info, data)
		if info.stopped {
			break
		}
	}
	return info
}

// Has reports whether any listener is registered for name.
func (e *Emitter) Has(name string) bool {
	return len(e.listeners[name]) > 0
}
