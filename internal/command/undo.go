// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"github.com/jeranaias/slashdoc/internal/model"
)

// NewUndoCommand creates the undo command. It is enabled while the history
// has something to undo.
func NewUndoCommand(m *model.Model) *Base {
	return NewBase(Spec{
		Name:    "undo",
		Label:   "Undo",
		Icon:    "↶",
		Enabled: m.History().CanUndo,
		Body: func(arg any) error {
			_, err := m.Undo()
			return err
		},
	})
}

// NewRedoCommand creates the redo command.
func NewRedoCommand(m *model.Model) *Base {
	return NewBase(Spec{
		Name:    "redo",
		Label:   "Redo",
		Icon:    "↷",
		Enabled: m.History().CanRedo,
		Body: func(arg any) error {
			_, err := m.Redo()
			return err
		},
	})
}
