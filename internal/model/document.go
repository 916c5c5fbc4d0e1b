// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrOutOfRange is returned when a position or range does not fit the document.
var ErrOutOfRange = errors.New("position out of range")

// =============================================================================
// ATTRIBUTES
// =============================================================================

// Attributes are key/value formatting attributes (e.g. "bold" -> "true").
type Attributes map[string]string

// Clone returns a copy of the attributes. A nil map stays nil.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	c := make(Attributes, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// Equal reports whether both attribute sets hold the same keys and values.
func (a Attributes) Equal(b Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// Keys returns the attribute keys sorted.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AttributeValue is the state of a single attribute on one character.
type AttributeValue struct {
	Value string
	Set   bool
}

// =============================================================================
// RANGE
// =============================================================================

// Range is a half-open span [Start, End) of character offsets.
type Range struct {
	Start int
	End   int
}

// NewRange returns a range between a and b regardless of their order.
func NewRange(a, b int) Range {
	if b < a {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// Collapsed returns an empty range at pos.
func Collapsed(pos int) Range {
	return Range{Start: pos, End: pos}
}

// IsCollapsed reports whether the range is empty.
func (r Range) IsCollapsed() bool {
	return r.Start == r.End
}

// Len returns the number of characters in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether pos lies inside the range.
func (r Range) Contains(pos int) bool {
	return pos >= r.Start && pos < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// =============================================================================
// DOCUMENT
// =============================================================================

// Char is a single character with its attributes.
type Char struct {
	R     rune
	Attrs Attributes
}

// Document holds the editor content.
type Document struct {
	chars []Char
}

// Len returns the document length in characters.
func (d *Document) Len() int {
	return len(d.chars)
}

// Text returns the plain text of the document.
func (d *Document) Text() string {
	return d.TextIn(Range{Start: 0, End: len(d.chars)})
}

// TextIn returns the plain text of r, clamped to the document.
func (d *Document) TextIn(r Range) string {
	r = d.clamp(r)
	var sb strings.Builder
	for _, c := range d.chars[r.Start:r.End] {
		sb.WriteRune(c.R)
	}
	return sb.String()
}

// Chars returns a copy of the characters in r.
func (d *Document) Chars(r Range) ([]Char, error) {
	if err := d.checkRange(r); err != nil {
		return nil, err
	}
	return cloneChars(d.chars[r.Start:r.End]), nil
}

// AttributesAt returns the attributes of the character at pos.
func (d *Document) AttributesAt(pos int) Attributes {
	if pos < 0 || pos >= len(d.chars) {
		return nil
	}
	return d.chars[pos].Attrs.Clone()
}

// HasAttribute reports whether every character in r carries key. An empty
// range never has an attribute.
func (d *Document) HasAttribute(key string, r Range) bool {
	r = d.clamp(r)
	if r.IsCollapsed() {
		return false
	}
	for _, c := range d.chars[r.Start:r.End] {
		if _, ok := c.Attrs[key]; !ok {
			return false
		}
	}
	return true
}

func (d *Document) checkPosition(pos int) error {
	if pos < 0 || pos > len(d.chars) {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrOutOfRange, pos, len(d.chars))
	}
	return nil
}

func (d *Document) checkRange(r Range) error {
	if r.Start > r.End {
		return fmt.Errorf("%w: inverted range %s", ErrOutOfRange, r)
	}
	if err := d.checkPosition(r.Start); err != nil {
		return err
	}
	return d.checkPosition(r.End)
}

func (d *Document) clamp(r Range) Range {
	clampPos := func(p int) int {
		if p < 0 {
			return 0
		}
		if p > len(d.chars) {
			return len(d.chars)
		}
		return p
	}
	return NewRange(clampPos(r.Start), clampPos(r.End))
}

func (d *Document) insert(pos int, chars []Char) {
	tail := append(cloneChars(chars), d.chars[pos:]...)
	d.chars = append(d.chars[:pos], tail...)
}

func (d *Document) remove(r Range) {
	d.chars = append(d.chars[:r.Start], d.chars[r.End:]...)
}

func cloneChars(chars []Char) []Char {
	out := make([]Char, len(chars))
	for i, c := range chars {
		out[i] = Char{R: c.R, Attrs: c.Attrs.Clone()}
	}
	return out
}

func charsFromText(text string, attrs Attributes) []Char {
	var chars []Char
	for _, r := range text {
		chars = append(chars, Char{R: r, Attrs: attrs.Clone()})
	}
	return chars
}

// =============================================================================
// SELECTION
// =============================================================================

// Selection is the document selection: one or more ranges plus the
// attributes that newly typed text will carry.
type Selection struct {
	ranges []Range
	attrs  Attributes
}

// Ranges returns a copy of the selection ranges.
func (s *Selection) Ranges() []Range {
	out := make([]Range, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// FirstRange returns the primary range. ok is false when nothing is selected.
func (s *Selection) FirstRange() (r Range, ok bool) {
	if len(s.ranges) == 0 {
		return Range{}, false
	}
	return s.ranges[0], true
}

// IsCollapsed reports whether the selection is a single caret.
func (s *Selection) IsCollapsed() bool {
	return len(s.ranges) == 1 && s.ranges[0].IsCollapsed()
}

// Focus returns the caret position of the primary range.
func (s *Selection) Focus() int {
	if len(s.ranges) == 0 {
		return 0
	}
	return s.ranges[0].End
}

// Attribute returns a selection attribute.
func (s *Selection) Attribute(key string) (string, bool) {
	v, ok := s.attrs[key]
	return v, ok
}

// Attributes returns a copy of the selection attributes.
func (s *Selection) Attributes() Attributes {
	return s.attrs.Clone()
}

func (s *Selection) transform(fn func(pos int) int) {
	for i, r := range s.ranges {
		s.ranges[i] = NewRange(fn(r.Start), fn(r.End))
	}
}

func (s *Selection) setAttribute(key string, v AttributeValue) {
	if !v.Set {
		delete(s.attrs, key)
		return
	}
	if s.attrs == nil {
		s.attrs = make(Attributes)
	}
	s.attrs[key] = v.Value
}
