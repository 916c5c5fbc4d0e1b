// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
)

// Writer mutates the model inside a Change call. Every method records an
// operation in the current batch.
type Writer struct {
	m     *Model
	batch *Batch
}

// Batch returns the batch the writer records into.
func (w *Writer) Batch() *Batch {
	return w.batch
}

// Model returns the model being changed.
func (w *Writer) Model() *Model {
	return w.m
}

func (w *Writer) apply(op Operation) error {
	if err := op.apply(w.m.doc, w.m.sel); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	w.batch.Operations = append(w.batch.Operations, op)
	return nil
}

// InsertText inserts text at pos with the given attributes.
func (w *Writer) InsertText(pos int, text string, attrs Attributes) error {
	if text == "" {
		return nil
	}
	return w.apply(&InsertOperation{Position: pos, Chars: charsFromText(text, attrs)})
}

// Remove deletes the characters in r.
func (w *Writer) Remove(r Range) error {
	if r.IsCollapsed() {
		return nil
	}
	chars, err := w.m.doc.Chars(r)
	if err != nil {
		return fmt.Errorf("remove %s: %w", r, err)
	}
	return w.apply(&RemoveOperation{Position: r.Start, Chars: chars})
}

// SetAttribute sets key=value on every character in r.
func (w *Writer) SetAttribute(key, value string, r Range) error {
	return w.changeAttribute(key, AttributeValue{Value: value, Set: true}, r)
}

// RemoveAttribute removes key from every character in r.
func (w *Writer) RemoveAttribute(key string, r Range) error {
	return w.changeAttribute(key, AttributeValue{}, r)
}

func (w *Writer) changeAttribute(key string, v AttributeValue, r Range) error {
	if r.IsCollapsed() {
		return nil
	}
	chars, err := w.m.doc.Chars(r)
	if err != nil {
		return fmt.Errorf("attribute %s %s: %w", key, r, err)
	}

	before := make([]AttributeValue, len(chars))
	after := make([]AttributeValue, len(chars))
	changed := false
	for i, c := range chars {
		old, ok := c.Attrs[key]
		before[i] = AttributeValue{Value: old, Set: ok}
		after[i] = v
		if before[i] != after[i] {
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return w.apply(&AttributeOperation{Position: r.Start, Key: key, Before: before, After: after})
}

// SetSelection replaces the selection ranges.
func (w *Writer) SetSelection(ranges ...Range) error {
	return w.apply(&SelectionOperation{Before: w.m.sel.Ranges(), After: ranges})
}

// SetSelectionAttribute sets an attribute applied to newly typed text.
func (w *Writer) SetSelectionAttribute(key, value string) error {
	return w.changeSelectionAttribute(key, AttributeValue{Value: value, Set: true})
}

// RemoveSelectionAttribute removes a selection attribute.
func (w *Writer) RemoveSelectionAttribute(key string) error {
	return w.changeSelectionAttribute(key, AttributeValue{})
}

func (w *Writer) changeSelectionAttribute(key string, v AttributeValue) error {
	old, ok := w.m.sel.attrs[key]
	before := AttributeValue{Value: old, Set: ok}
	if before == v {
		return nil
	}
	return w.apply(&SelectionAttributeOperation{Key: key, Before: before, After: v})
}
