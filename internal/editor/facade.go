// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"errors"
	"fmt"

	"github.com/jeranaias/slashdoc/internal/command"
	"github.com/jeranaias/slashdoc/internal/feed"
	"github.com/jeranaias/slashdoc/internal/mention"
	"github.com/jeranaias/slashdoc/internal/model"
)

// ErrNoMention is returned by suggestion calls when the Mention plugin is
// not loaded.
var ErrNoMention = errors.New("mention plugin not loaded")

// ErrNoSuggestion is returned by AcceptID for ids the session does not offer.
var ErrNoSuggestion = errors.New("no such suggestion")

// Execute runs a command by name.
func (e *Editor) Execute(name string, arg any) error {
	if e.destroyed {
		return ErrDestroyed
	}
	return e.commands.Execute(name, arg)
}

// Type inserts text at the selection.
func (e *Editor) Type(text string) error {
	return e.Execute("input", text)
}

// Backspace deletes the selection or the character before the caret.
func (e *Editor) Backspace() error {
	return e.Execute("delete", nil)
}

// Delete deletes the selection or the character after the caret.
func (e *Editor) Delete() error {
	return e.Execute("deleteForward", nil)
}

// Undo reverts the last change. It is a no-op when there is nothing to undo.
func (e *Editor) Undo() error {
	return e.Execute("undo", nil)
}

// Redo reapplies the last undone change.
func (e *Editor) Redo() error {
	return e.Execute("redo", nil)
}

// =============================================================================
// SELECTION
// =============================================================================

// Cursor returns the caret position.
func (e *Editor) Cursor() int {
	return e.model.Selection().Focus()
}

// MoveCursor moves the caret by delta characters, clamped to the document.
// Typed text then continues the formatting of the character before the caret.
func (e *Editor) MoveCursor(delta int) error {
	return e.SetCursor(e.Cursor() + delta)
}

// SetCursor puts a collapsed caret at pos, clamped to the document.
func (e *Editor) SetCursor(pos int) error {
	if e.destroyed {
		return ErrDestroyed
	}
	pos = clamp(pos, 0, e.model.Document().Len())
	return e.model.ChangeWith(model.BatchTransparent, func(w *model.Writer) error {
		if err := w.SetSelection(model.Collapsed(pos)); err != nil {
			return err
		}
		return e.inheritFormatting(w, pos)
	})
}

// Select selects [start, end), clamped to the document.
func (e *Editor) Select(start, end int) error {
	if e.destroyed {
		return ErrDestroyed
	}
	n := e.model.Document().Len()
	r := model.NewRange(clamp(start, 0, n), clamp(end, 0, n))
	return e.model.ChangeWith(model.BatchTransparent, func(w *model.Writer) error {
		return w.SetSelection(r)
	})
}

// inheritFormatting copies the formatting of the character before pos onto
// the selection attributes.
func (e *Editor) inheritFormatting(w *model.Writer, pos int) error {
	before := e.model.Document().AttributesAt(pos - 1)
	for _, key := range command.FormattingAttributes {
		var err error
		if v, ok := before[key]; ok {
			err = w.SetSelectionAttribute(key, v)
		} else {
			err = w.RemoveSelectionAttribute(key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// =============================================================================
// DATA
// =============================================================================

// SetData replaces the document with plain text, puts the caret at its end
// and clears the undo history.
func (e *Editor) SetData(text string) error {
	if e.destroyed {
		return ErrDestroyed
	}
	err := e.model.ChangeWith(model.BatchTransparent, func(w *model.Writer) error {
		if err := w.Remove(model.NewRange(0, e.model.Document().Len())); err != nil {
			return err
		}
		if err := w.InsertText(0, text, nil); err != nil {
			return err
		}
		return w.SetSelection(model.Collapsed(e.model.Document().Len()))
	})
	e.model.History().Clear()
	return err
}

// Data returns the document as plain text.
func (e *Editor) Data() string {
	return e.model.Document().Text()
}

// Markdown returns the document as markdown.
func (e *Editor) Markdown() string {
	return e.model.Document().Markdown()
}

// SourceMode reports whether the source editing toggle is on.
func (e *Editor) SourceMode() bool {
	cmd, ok := e.commands.Get(SourceEditingCommand)
	if !ok {
		return false
	}
	on, _ := cmd.Value().(bool)
	return on
}

// WordCount returns the word count plugin when loaded.
func (e *Editor) WordCount() (*WordCount, bool) {
	p, ok := e.plugins.Get("WordCount")
	if !ok {
		return nil, false
	}
	wc, ok := p.Instance.(*WordCount)
	return wc, ok
}

// =============================================================================
// SUGGESTIONS
// =============================================================================

// Suggestions returns the active mention session and its items.
func (e *Editor) Suggestions() (mention.Match, []feed.Item, bool) {
	s, ok := mention.SuggesterOf(e)
	if !ok {
		return mention.Match{}, nil, false
	}
	return s.Suggestions()
}

// Accept accepts item for the active mention session.
func (e *Editor) Accept(item feed.Item) error {
	if e.destroyed {
		return ErrDestroyed
	}
	s, ok := mention.SuggesterOf(e)
	if !ok {
		return ErrNoMention
	}
	return s.Accept(item)
}

// AcceptID accepts the suggestion with the given id. Matches beyond the
// dropdown limit are accepted too.
func (e *Editor) AcceptID(id string) error {
	s, ok := mention.SuggesterOf(e)
	if !ok {
		return ErrNoMention
	}
	m, ok := s.Active()
	if !ok {
		return mention.ErrNoSession
	}
	for _, item := range e.feeds.Query(m.Marker(), m.Query, 0) {
		if item.ID == id {
			return e.Accept(item)
		}
	}
	return fmt.Errorf("%w: %s", ErrNoSuggestion, id)
}
