// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
)

// Operation is a single invertible edit of the document or selection.
type Operation interface {
	apply(doc *Document, sel *Selection) error
	inverse() Operation
	String() string
}

// =============================================================================
// INSERT / REMOVE
// =============================================================================

// InsertOperation inserts characters at Position.
type InsertOperation struct {
	Position int
	Chars    []Char
}

func (op *InsertOperation) apply(doc *Document, sel *Selection) error {
	if err := doc.checkPosition(op.Position); err != nil {
		return err
	}
	doc.insert(op.Position, op.Chars)
	n := len(op.Chars)
	sel.transform(func(pos int) int {
		if pos >= op.Position {
			return pos + n
		}
		return pos
	})
	return nil
}

func (op *InsertOperation) inverse() Operation {
	return &RemoveOperation{Position: op.Position, Chars: op.Chars}
}

func (op *InsertOperation) String() string {
	return fmt.Sprintf("insert %d %q", op.Position, charsText(op.Chars))
}

// RemoveOperation removes the characters starting at Position. Chars holds
// the removed content so the operation can be inverted.
type RemoveOperation struct {
	Position int
	Chars    []Char
}

func (op *RemoveOperation) apply(doc *Document, sel *Selection) error {
	r := Range{Start: op.Position, End: op.Position + len(op.Chars)}
	if err := doc.checkRange(r); err != nil {
		return err
	}
	doc.remove(r)
	n := len(op.Chars)
	sel.transform(func(pos int) int {
		switch {
		case pos >= r.End:
			return pos - n
		case pos > r.Start:
			return r.Start
		}
		return pos
	})
	return nil
}

func (op *RemoveOperation) inverse() Operation {
	return &InsertOperation{Position: op.Position, Chars: op.Chars}
}

func (op *RemoveOperation) String() string {
	return fmt.Sprintf("remove %d %q", op.Position, charsText(op.Chars))
}

// =============================================================================
// ATTRIBUTES
// =============================================================================

// AttributeOperation changes one attribute on the characters starting at
// Position. Before and After hold one value per character.
type AttributeOperation struct {
	Position int
	Key      string
	Before   []AttributeValue
	After    []AttributeValue
}

func (op *AttributeOperation) apply(doc *Document, sel *Selection) error {
	r := Range{Start: op.Position, End: op.Position + len(op.After)}
	if err := doc.checkRange(r); err != nil {
		return err
	}
	for i, v := range op.After {
		c := &doc.chars[op.Position+i]
		if !v.Set {
			delete(c.Attrs, op.Key)
			continue
		}
		if c.Attrs == nil {
			c.Attrs = make(Attributes)
		}
		c.Attrs[op.Key] = v.Value
	}
	return nil
}

func (op *AttributeOperation) inverse() Operation {
	return &AttributeOperation{Position: op.Position, Key: op.Key, Before: op.After, After: op.Before}
}

func (op *AttributeOperation) String() string {
	return fmt.Sprintf("attribute %s %s", op.Key, Range{Start: op.Position, End: op.Position + len(op.After)})
}

// =============================================================================
// SELECTION
// =============================================================================

// SelectionOperation replaces the selection ranges.
type SelectionOperation struct {
	Before []Range
	After  []Range
}

func (op *SelectionOperation) apply(doc *Document, sel *Selection) error {
	for _, r := range op.After {
		if err := doc.checkRange(r); err != nil {
			return err
		}
	}
	sel.ranges = append([]Range(nil), op.After...)
	return nil
}

func (op *SelectionOperation) inverse() Operation {
	return &SelectionOperation{Before: op.After, After: op.Before}
}

func (op *SelectionOperation) String() string {
	return fmt.Sprintf("selection %v", op.After)
}

// SelectionAttributeOperation changes one selection attribute.
type SelectionAttributeOperation struct {
	Key    string
	Before AttributeValue
	After  AttributeValue
}

func (op *SelectionAttributeOperation) apply(doc *Document, sel *Selection) error {
	sel.setAttribute(op.Key, op.After)
	return nil
}

func (op *SelectionAttributeOperation) inverse() Operation {
	return &SelectionAttributeOperation{Key: op.Key, Before: op.After, After: op.Before}
}

func (op *SelectionAttributeOperation) String() string {
	if !op.After.Set {
		return fmt.Sprintf("selection-attribute -%s", op.Key)
	}
	return fmt.Sprintf("selection-attribute %s=%s", op.Key, op.After.Value)
}

func charsText(chars []Char) string {
	rs := make([]rune, len(chars))
	for i, c := range chars {
		rs[i] = c.R
	}
	return string(rs)
}
