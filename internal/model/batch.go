// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"github.com/google/uuid"
)

// BatchType tells the model how to treat a batch in the history.
type BatchType string

const (
	BatchDefault     BatchType = "default"     // recorded in history
	BatchTransparent BatchType = "transparent" // applied but never undone
	BatchUndo        BatchType = "undo"
	BatchRedo        BatchType = "redo"
)

// Batch groups the operations of one outermost Change call.
type Batch struct {
	ID         uuid.UUID
	Type       BatchType
	Operations []Operation

	// Selection before the first and after the last operation
	SelectionBefore []Range
	SelectionAfter  []Range
}

func newBatch(typ BatchType) *Batch {
	return &Batch{ID: uuid.New(), Type: typ}
}

// Undoable reports whether the batch goes into the history.
func (b *Batch) Undoable() bool {
	return b.Type == BatchDefault
}

// IsEmpty reports whether no operation was recorded.
func (b *Batch) IsEmpty() bool {
	return len(b.Operations) == 0
}

// HasDocumentChanges reports whether the batch changed the document content
// or attributes, as opposed to only the selection.
func (b *Batch) HasDocumentChanges() bool {
	for _, op := range b.Operations {
		switch op.(type) {
		case *InsertOperation, *RemoveOperation, *AttributeOperation:
			return true
		}
	}
	return false
}
