// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"container/list"
)

// History is the undo/redo list of undoable batches.
type History struct {
	l       *list.List
	cur     *list.Element // last applied batch, nil when everything is undone
	maxSize int
}

// NewHistory returns a history that keeps at most maxSize batches.
// A maxSize <= 0 keeps everything.
func NewHistory(maxSize int) *History {
	return &History{l: list.New(), maxSize: maxSize}
}

// Append records b as the newest batch and drops the redo branch.
func (h *History) Append(b *Batch) {
	if b.IsEmpty() {
		return
	}

	if h.cur == nil {
		h.cur = h.l.PushFront(b)
	} else {
		h.cur = h.l.InsertAfter(b, h.cur)
	}

	// remove all nexts
	for h.cur.Next() != nil {
		h.l.Remove(h.cur.Next())
	}

	if h.maxSize > 0 && h.l.Len() > h.maxSize {
		h.clearOldN(h.l.Len() - h.maxSize)
	}
}

// Undo moves the cursor back and returns the batch to revert.
func (h *History) Undo() *Batch {
	if h.cur == nil {
		return nil
	}
	b := h.cur.Value.(*Batch)
	h.cur = h.cur.Prev()
	return b
}

// Redo moves the cursor forward and returns the batch to reapply.
func (h *History) Redo() *Batch {
	var next *list.Element
	if h.cur == nil {
		next = h.l.Front()
	} else {
		next = h.cur.Next()
	}
	if next == nil {
		return nil
	}
	h.cur = next
	return h.cur.Value.(*Batch)
}

// CanUndo reports whether Undo would return a batch.
func (h *History) CanUndo() bool {
	return h.cur != nil
}

// CanRedo reports whether Redo would return a batch.
func (h *History) CanRedo() bool {
	if h.cur == nil {
		return h.l.Len() > 0
	}
	return h.cur.Next() != nil
}

// Len returns the number of recorded batches.
func (h *History) Len() int {
	return h.l.Len()
}

// Clear drops every batch.
func (h *History) Clear() {
	h.l = list.New()
	h.cur = nil
}

func (h *History) clearOldN(n int) {
	for e := h.l.Front(); e != h.cur && n > 0; e = h.l.Front() {
		h.l.Remove(e)
		n--
	}
}
