// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package slashcmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/jeranaias/slashdoc/internal/command"
	"github.com/jeranaias/slashdoc/internal/event"
	"github.com/jeranaias/slashdoc/internal/mention"
	"github.com/jeranaias/slashdoc/internal/model"
)

// State is the dispatch state of an Arbitrator.
type State int

const (
	// Armed waits for accepted suggestions
	Armed State = iota

	// Dispatching runs a claimed command inside its model change
	Dispatching
)

func (s State) String() string {
	switch s {
	case Armed:
		return "armed"
	case Dispatching:
		return "dispatching"
	default:
		return "unknown"
	}
}

// Arbitrator decides which accepted suggestions are slash commands and
// dispatches them.
type Arbitrator struct {
	marker   string
	model    *model.Model
	commands *command.Collection
	logger   *log.Logger

	// entry id -> command id, frozen at construction
	entries map[string]string
	state   State
}

// NewArbitrator creates an arbitrator owning the entries produced for infos.
func NewArbitrator(marker string, m *model.Model, commands *command.Collection, logger *log.Logger, infos []CommandInfo) *Arbitrator {
	entries := make(map[string]string, len(infos))
	for _, item := range Entries(marker, infos) {
		entries[item.ID] = strings.TrimPrefix(item.ID, marker)
	}
	return &Arbitrator{
		marker:   marker,
		model:    m,
		commands: commands,
		logger:   logger,
		entries:  entries,
	}
}

// Marker returns the marker the arbitrator claims.
func (a *Arbitrator) Marker() string {
	return a.marker
}

// State returns the current dispatch state.
func (a *Arbitrator) State() State {
	return a.state
}

// Len returns the number of entries the arbitrator owns.
func (a *Arbitrator) Len() int {
	return len(a.entries)
}

// CommandID inverts an entry id. It only succeeds for entries this
// arbitrator produced under marker.
func (a *Arbitrator) CommandID(marker, entryID string) (string, bool) {
	if marker != a.marker {
		return "", false
	}
	id, ok := a.entries[entryID]
	return id, ok
}

// Claims reports whether data is an accept of one of the arbitrator's
// entries and returns the command to run.
func (a *Arbitrator) Claims(data mention.ExecuteData) (string, bool) {
	return a.CommandID(data.Marker, data.Mention.ID)
}

// Attach listens on cmd's execute event at high priority.
func (a *Arbitrator) Attach(cmd command.Command) (off func()) {
	return cmd.On(command.EventExecute, a.handle, event.PriorityHigh)
}

func (a *Arbitrator) handle(info *event.Info, data any) {
	accepted, ok := mention.AsExecuteData(data)
	if !ok {
		return
	}
	id, ok := a.Claims(accepted)
	if !ok {
		return
	}
	info.Stop()
	if err := a.dispatch(id, accepted.Range); err != nil {
		info.Return = err
	}
}

// dispatch removes the trigger text and runs the command in one change.
// Without a range the first selection range is removed. Only a failed
// removal is returned; command failures are logged and the text stays
// removed.
func (a *Arbitrator) dispatch(id string, r *model.Range) error {
	a.state = Dispatching
	defer func() { a.state = Armed }()

	var removed model.Range
	var removeErr error
	err := a.model.Change(func(w *model.Writer) error {
		if r != nil {
			removed = *r
		} else if first, ok := a.model.Selection().FirstRange(); ok {
			removed = first
		}
		if removeErr = w.Remove(removed); removeErr != nil {
			return removeErr
		}
		return a.commands.Execute(id, nil)
	})
	if err != nil {
		a.logger.Printf("SLASH_COMMAND_FAILED | command=%s range=%s error=%v", id, removed, err)
		if removeErr != nil {
			return fmt.Errorf("remove trigger text %s: %w", removed, removeErr)
		}
		return nil
	}
	a.logger.Printf("SLASH_DISPATCH | command=%s range=%s", id, removed)
	return nil
}
