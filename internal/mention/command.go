// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package mention

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/slashdoc/internal/command"
	"github.com/jeranaias/slashdoc/internal/feed"
	"github.com/jeranaias/slashdoc/internal/model"
)

// CommandName is the name the mention command is registered under.
const CommandName = "mention"

// AttributeKey is the text attribute carrying the mention id.
const AttributeKey = "mention"

// ErrMentionID is returned when the item id does not start with the marker.
var ErrMentionID = errors.New("mention id must start with the marker")

// ExecuteData is the argument of the mention command.
type ExecuteData struct {
	// Marker is the feed marker the session was started with
	Marker string

	// Mention is the accepted item
	Mention feed.Item

	// Range is the trigger text to replace; the first selection range when nil
	Range *model.Range

	// Text overrides the inserted text
	Text string
}

// InsertText returns the text inserted for the mention.
func (d ExecuteData) InsertText() string {
	switch {
	case d.Text != "":
		return d.Text
	case d.Mention.Text != "":
		return d.Mention.Text
	default:
		return d.Mention.ID
	}
}

// AsExecuteData extracts ExecuteData from an execute event argument.
func AsExecuteData(arg any) (ExecuteData, bool) {
	switch d := arg.(type) {
	case ExecuteData:
		return d, true
	case *ExecuteData:
		if d == nil {
			return ExecuteData{}, false
		}
		return *d, true
	}
	return ExecuteData{}, false
}

// NewCommand creates the mention command. Its default body replaces the
// range with the mention text and appends a space.
func NewCommand(m *model.Model) *command.Base {
	return command.NewBase(command.Spec{
		Name: CommandName,
		Body: func(arg any) error {
			data, ok := AsExecuteData(arg)
			if !ok {
				return fmt.Errorf("expected mention.ExecuteData, got %T", arg)
			}
			return insertMention(m, data)
		},
	})
}

func insertMention(m *model.Model, data ExecuteData) error {
	if data.Marker == "" || !strings.HasPrefix(data.Mention.ID, data.Marker) {
		return fmt.Errorf("%w: %q (marker %q)", ErrMentionID, data.Mention.ID, data.Marker)
	}

	return m.Change(func(w *model.Writer) error {
		var r model.Range
		if data.Range != nil {
			r = *data.Range
		} else if first, ok := m.Selection().FirstRange(); ok {
			r = first
		} else {
			r = model.Collapsed(m.Document().Len())
		}

		attrs := m.Selection().Attributes()
		mentionAttrs := model.Attributes{}
		for k, v := range attrs {
			mentionAttrs[k] = v
		}
		mentionAttrs[AttributeKey] = data.Mention.ID

		text := data.InsertText()
		if err := w.Remove(r); err != nil {
			return err
		}
		if err := w.InsertText(r.Start, text, mentionAttrs); err != nil {
			return err
		}
		end := r.Start + len([]rune(text))
		if err := w.InsertText(end, " ", attrs); err != nil {
			return err
		}
		return w.SetSelection(model.Collapsed(end + 1))
	})
}
