// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model provides the headless document model of the editor.
//
// A Document is a flat sequence of attributed characters. Every mutation goes
// through a Writer obtained from Model.Change, which records an invertible
// Operation for each edit. The operations of the outermost Change call form a
// Batch; nested Change calls join the batch of the outer call, so a group of
// edits made by different commands is undone in one step.
//
// # Key Types
//
//   - Model: document, selection, history and the change event
//   - Writer: the only way to mutate the document or selection
//   - Batch: operations grouped into one undo step
//   - History: undo/redo cursor over batches
//
// # Usage
//
//	m := model.New(100)
//	err := m.Change(func(w *model.Writer) error {
//	    if err := w.InsertText(0, "hello", nil); err != nil {
//	        return err
//	    }
//	    return w.SetAttribute("bold", "true", model.NewRange(0, 5))
//	})
//
//	m.Undo() // removes the bold text again
package model
