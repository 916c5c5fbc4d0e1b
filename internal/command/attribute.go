// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"fmt"

	"github.com/jeranaias/slashdoc/internal/model"
)

// FormattingAttributes are the inline formatting keys removed by removeFormat.
var FormattingAttributes = []string{
	"bold", "italic", "underline", "strikethrough", "code", "superscript", "subscript",
}

// =============================================================================
// ATTRIBUTE COMMAND
// =============================================================================

// AttributeCommand toggles a boolean formatting attribute. With a collapsed
// selection it toggles the selection attribute used for typed text;
// otherwise it toggles the attribute on every selected range.
type AttributeCommand struct {
	*Base
	model *model.Model
	key   string
}

// NewAttributeCommand creates a toggle command for the attribute key. The
// command name equals the attribute key.
func NewAttributeCommand(m *model.Model, key, label, icon string) *AttributeCommand {
	c := &AttributeCommand{model: m, key: key}
	c.Base = NewBase(Spec{
		Name:  key,
		Label: label,
		Icon:  icon,
		Body:  c.execute,
		State: func() any { return c.isSet() },
	})
	return c
}

// isSet reports whether the attribute applies at the selection.
func (c *AttributeCommand) isSet() bool {
	sel := c.model.Selection()
	r, ok := sel.FirstRange()
	if !ok {
		return false
	}
	if r.IsCollapsed() {
		_, set := sel.Attribute(c.key)
		return set
	}
	return c.model.Document().HasAttribute(c.key, r)
}

// execute toggles the attribute. A bool argument forces the value.
func (c *AttributeCommand) execute(arg any) error {
	value := !c.isSet()
	if arg != nil {
		force, ok := arg.(bool)
		if !ok {
			return fmt.Errorf("unexpected argument %T", arg)
		}
		value = force
	}

	return c.model.Change(func(w *model.Writer) error {
		sel := c.model.Selection()
		if sel.IsCollapsed() {
			if value {
				return w.SetSelectionAttribute(c.key, "true")
			}
			return w.RemoveSelectionAttribute(c.key)
		}
		for _, r := range sel.Ranges() {
			var err error
			if value {
				err = w.SetAttribute(c.key, "true", r)
			} else {
				err = w.RemoveAttribute(c.key, r)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// =============================================================================
// REMOVE FORMAT
// =============================================================================

// NewRemoveFormatCommand creates the removeFormat command, which strips every
// formatting attribute from the selection.
func NewRemoveFormatCommand(m *model.Model) *Base {
	return NewBase(Spec{
		Name:  "removeFormat",
		Label: "Remove Format",
		Icon:  "Tx",
		Body: func(arg any) error {
			return m.Change(func(w *model.Writer) error {
				sel := m.Selection()
				for _, key := range FormattingAttributes {
					if err := w.RemoveSelectionAttribute(key); err != nil {
						return err
					}
					for _, r := range sel.Ranges() {
						if err := w.RemoveAttribute(key, r); err != nil {
							return err
						}
					}
				}
				return nil
			})
		},
	})
}
