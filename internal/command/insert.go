// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"fmt"

	"github.com/jeranaias/slashdoc/internal/model"
)

// Text inserted by the block insertion commands.
const (
	HorizontalLineText = "\n---\n"
	PageBreakText      = "\n<div class=\"page-break\" style=\"page-break-after:always;\"></div>\n"
)

// NewInsertCommand creates a command that replaces the primary selection
// range with text and puts the caret after it.
func NewInsertCommand(m *model.Model, name, label, icon, text string) *Base {
	return NewBase(Spec{
		Name:  name,
		Label: label,
		Icon:  icon,
		Body: func(arg any) error {
			return replaceSelection(m, text, nil)
		},
	})
}

// =============================================================================
// TYPING
// =============================================================================

// NewInputCommand creates the input command. Its argument is the typed
// string; the text carries the selection attributes.
func NewInputCommand(m *model.Model) *Base {
	return NewBase(Spec{
		Name: "input",
		Body: func(arg any) error {
			text, ok := arg.(string)
			if !ok {
				return fmt.Errorf("input expects a string, got %T", arg)
			}
			return replaceSelection(m, text, m.Selection().Attributes())
		},
	})
}

// Delete directions for the delete commands.
const (
	Backward = "backward"
	Forward  = "forward"
)

// NewDeleteCommand creates delete (backward) or deleteForward. A non-collapsed
// selection is removed; otherwise one character next to the caret.
func NewDeleteCommand(m *model.Model, direction string) *Base {
	name := "delete"
	if direction == Forward {
		name = "deleteForward"
	}
	return NewBase(Spec{
		Name: name,
		Body: func(arg any) error {
			return m.Change(func(w *model.Writer) error {
				r, ok := m.Selection().FirstRange()
				if !ok {
					return nil
				}
				if r.IsCollapsed() {
					switch {
					case direction == Forward && r.End < m.Document().Len():
						r.End++
					case direction != Forward && r.Start > 0:
						r.Start--
					default:
						return nil
					}
				}
				if err := w.Remove(r); err != nil {
					return err
				}
				return w.SetSelection(model.Collapsed(r.Start))
			})
		},
	})
}

func replaceSelection(m *model.Model, text string, attrs model.Attributes) error {
	return m.Change(func(w *model.Writer) error {
		r, ok := m.Selection().FirstRange()
		if !ok {
			r = model.Collapsed(m.Document().Len())
		}
		if err := w.Remove(r); err != nil {
			return err
		}
		if err := w.InsertText(r.Start, text, attrs); err != nil {
			return err
		}
		return w.SetSelection(model.Collapsed(r.Start + len([]rune(text))))
	})
}
