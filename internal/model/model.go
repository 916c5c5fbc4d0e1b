// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"

	"github.com/jeranaias/slashdoc/internal/event"
)

// EventChange is fired after every non-empty outermost Change with the
// *Batch as data.
const EventChange = "change"

// Model owns the document, the selection and the undo history.
type Model struct {
	doc     *Document
	sel     *Selection
	history *History
	emitter event.Emitter

	writer *Writer // non-nil while inside Change
}

// New creates an empty model whose history keeps historySize batches.
func New(historySize int) *Model {
	m := &Model{
		doc:     &Document{},
		sel:     &Selection{ranges: []Range{Collapsed(0)}},
		history: NewHistory(historySize),
	}
	m.emitter.Source = m
	return m
}

// Document returns the document. It must only be mutated through a Writer.
func (m *Model) Document() *Document {
	return m.doc
}

// Selection returns the current selection.
func (m *Model) Selection() *Selection {
	return m.sel
}

// History returns the undo history.
func (m *Model) History() *History {
	return m.history
}

// InChange reports whether a Change call is in progress.
func (m *Model) InChange() bool {
	return m.writer != nil
}

// On registers a model event listener.
func (m *Model) On(name string, l event.Listener, p event.Priority) (off func()) {
	return m.emitter.On(name, l, p)
}

// Change runs fn with a writer. The outermost call opens a new undoable
// batch; nested calls record into the batch of the outer call.
//
// Operations applied before fn returns an error stay applied and recorded.
func (m *Model) Change(fn func(w *Writer) error) error {
	return m.ChangeWith(BatchDefault, fn)
}

// ChangeWith is Change with an explicit batch type for the outermost call.
// The type is ignored for nested calls.
func (m *Model) ChangeWith(typ BatchType, fn func(w *Writer) error) error {
	if m.writer != nil {
		return fn(m.writer)
	}

	batch := newBatch(typ)
	batch.SelectionBefore = m.sel.Ranges()
	m.writer = &Writer{m: m, batch: batch}

	var err error
	func() {
		defer func() { m.writer = nil }()
		err = fn(m.writer)
	}()

	batch.SelectionAfter = m.sel.Ranges()
	if !batch.IsEmpty() {
		if batch.Undoable() {
			m.history.Append(batch)
		}
		m.emitter.Fire(EventChange, batch)
	}
	return err
}

// Undo reverts the newest batch in the history. It reports false when there
// is nothing to undo.
func (m *Model) Undo() (bool, error) {
	if m.writer != nil {
		return false, fmt.Errorf("undo inside a change block")
	}
	b := m.history.Undo()
	if b == nil {
		return false, nil
	}
	err := m.ChangeWith(BatchUndo, func(w *Writer) error {
		for i := len(b.Operations) - 1; i >= 0; i-- {
			if err := w.apply(b.Operations[i].inverse()); err != nil {
				return err
			}
		}
		return m.restoreSelection(w, b.SelectionBefore)
	})
	return true, err
}

// Redo reapplies the batch reverted by the last Undo.
func (m *Model) Redo() (bool, error) {
	if m.writer != nil {
		return false, fmt.Errorf("redo inside a change block")
	}
	b := m.history.Redo()
	if b == nil {
		return false, nil
	}
	err := m.ChangeWith(BatchRedo, func(w *Writer) error {
		for _, op := range b.Operations {
			if err := w.apply(op); err != nil {
				return err
			}
		}
		return m.restoreSelection(w, b.SelectionAfter)
	})
	return true, err
}

func (m *Model) restoreSelection(w *Writer, ranges []Range) error {
	if len(ranges) == 0 {
		return nil
	}
	return w.SetSelection(ranges...)
}
