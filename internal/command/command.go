// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"errors"
	"fmt"

	"github.com/jeranaias/slashdoc/internal/event"
)

// EventExecute is fired by Execute with the command argument as data.
const EventExecute = "execute"

var (
	// ErrUnknownCommand is returned when executing a name nobody registered.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrDuplicateCommand is returned when a name is registered twice.
	ErrDuplicateCommand = errors.New("command already registered")
)

// =============================================================================
// COMMAND INTERFACE
// =============================================================================

// Command is an executable editor action.
type Command interface {
	// Name is the unique command name (e.g. "bold")
	Name() string

	// Label is the human-readable title; empty for internal commands
	Label() string

	// Icon is a short glyph shown next to the label (may be empty)
	Icon() string

	// IsEnabled reports whether Execute would run the command body
	IsEnabled() bool

	// Value is the command state (e.g. true when the selection is bold)
	Value() any

	// Execute fires the execute event with arg
	Execute(arg any) error

	// On registers a listener for a command event
	On(name string, l event.Listener, p event.Priority) (off func())
}

// =============================================================================
// BASE
// =============================================================================

// Spec describes a command built on Base.
type Spec struct {
	Name  string
	Label string
	Icon  string

	// Body runs when the execute event reaches the default listener
	Body func(arg any) error

	// Enabled reports whether the command can run; nil means always
	Enabled func() bool

	// State returns the command value; nil means no value
	State func() any
}

// Base implements Command with a decorated execute.
type Base struct {
	spec          Spec
	emitter       event.Emitter
	forceDisabled map[string]struct{}
}

// NewBase creates a command from spec.
func NewBase(spec Spec) *Base {
	b := &Base{spec: spec}
	b.emitter.Source = b

	// Disabled commands never reach their body or lower priority listeners.
	b.emitter.On(EventExecute, func(info *event.Info, data any) {
		if !b.IsEnabled() {
			info.Stop()
		}
	}, event.PriorityHigh)

	b.emitter.On(EventExecute, func(info *event.Info, data any) {
		if b.spec.Body == nil {
			return
		}
		if err := b.spec.Body(data); err != nil {
			info.Return = err
		}
	}, event.PriorityNormal)

	return b
}

func (b *Base) Name() string  { return b.spec.Name }
func (b *Base) Label() string { return b.spec.Label }
func (b *Base) Icon() string  { return b.spec.Icon }

// IsEnabled reports whether the command is enabled.
func (b *Base) IsEnabled() bool {
	if len(b.forceDisabled) > 0 {
		return false
	}
	if b.spec.Enabled != nil {
		return b.spec.Enabled()
	}
	return true
}

// Value returns the command state.
func (b *Base) Value() any {
	if b.spec.State == nil {
		return nil
	}
	return b.spec.State()
}

// Execute fires the execute event. A disabled command is a no-op.
func (b *Base) Execute(arg any) error {
	info := b.emitter.Fire(EventExecute, arg)
	if err, ok := info.Return.(error); ok {
		return fmt.Errorf("%s: %w", b.spec.Name, err)
	}
	return nil
}

// On registers a listener for a command event.
func (b *Base) On(name string, l event.Listener, p event.Priority) (off func()) {
	return b.emitter.On(name, l, p)
}

// ForceDisabled disables the command until every id that disabled it calls
// ClearForceDisabled.
func (b *Base) ForceDisabled(id string) {
	if b.forceDisabled == nil {
		b.forceDisabled = make(map[string]struct{})
	}
	b.forceDisabled[id] = struct{}{}
}

// ClearForceDisabled removes a lock added by ForceDisabled.
func (b *Base) ClearForceDisabled(id string) {
	delete(b.forceDisabled, id)
}
