// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/slashdoc/internal/event"
	"github.com/jeranaias/slashdoc/internal/model"
)

func newModel(t *testing.T, text string, sel model.Range) *model.Model {
	t.Helper()
	m := model.New(50)
	require.NoError(t, m.ChangeWith(model.BatchTransparent, func(w *model.Writer) error {
		if err := w.InsertText(0, text, nil); err != nil {
			return err
		}
		return w.SetSelection(sel)
	}))
	return m
}

// =============================================================================
// BASE / COLLECTION TESTS
// =============================================================================

func TestBase_DecoratedExecute(t *testing.T) {
	ran := 0
	cmd := NewBase(Spec{Name: "ping", Body: func(arg any) error { ran++; return nil }})

	require.NoError(t, cmd.Execute(nil))
	assert.Equal(t, 1, ran)

	// A high priority listener can pre-empt the body.
	off := cmd.On(EventExecute, func(info *event.Info, data any) {
		info.Stop()
	}, event.PriorityHigh)
	require.NoError(t, cmd.Execute(nil))
	assert.Equal(t, 1, ran)

	off()
	require.NoError(t, cmd.Execute(nil))
	assert.Equal(t, 2, ran)
}

func TestBase_DisabledIsNoOp(t *testing.T) {
	ran := false
	intercepted := false
	cmd := NewBase(Spec{Name: "ping", Body: func(arg any) error { ran = true; return nil }})
	cmd.On(EventExecute, func(info *event.Info, data any) { intercepted = true }, event.PriorityHigh)

	cmd.ForceDisabled("readonly")
	assert.False(t, cmd.IsEnabled())
	require.NoError(t, cmd.Execute(nil))
	assert.False(t, ran)
	assert.False(t, intercepted, "guard registered first stops later high priority listeners")

	cmd.ClearForceDisabled("readonly")
	require.NoError(t, cmd.Execute(nil))
	assert.True(t, ran)
}

func TestBase_BodyError(t *testing.T) {
	boom := errors.New("boom")
	cmd := NewBase(Spec{Name: "fail", Body: func(arg any) error { return boom }})

	err := cmd.Execute(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "fail")
}

func TestCollection(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(NewBase(Spec{Name: "b"})))
	require.NoError(t, c.Add(NewBase(Spec{Name: "a"})))

	err := c.Add(NewBase(Spec{Name: "a"}))
	assert.True(t, errors.Is(err, ErrDuplicateCommand))

	assert.Equal(t, []string{"b", "a"}, c.Names())
	assert.Len(t, c.All(), 2)

	_, ok := c.Get("a")
	assert.True(t, ok)

	err = c.Execute("missing", nil)
	assert.True(t, errors.Is(err, ErrUnknownCommand))
}

// =============================================================================
// BUILT-IN COMMAND TESTS
// =============================================================================

func TestAttributeCommand_Collapsed(t *testing.T) {
	m := newModel(t, "abc", model.Collapsed(3))
	bold := NewAttributeCommand(m, "bold", "Bold", "B")

	assert.Equal(t, false, bold.Value())
	require.NoError(t, bold.Execute(nil))
	assert.Equal(t, true, bold.Value())

	require.NoError(t, NewInputCommand(m).Execute("de"))
	assert.True(t, m.Document().HasAttribute("bold", model.NewRange(3, 5)))
	assert.False(t, m.Document().HasAttribute("bold", model.NewRange(0, 3)))
}

func TestAttributeCommand_Range(t *testing.T) {
	m := newModel(t, "hello world", model.NewRange(0, 5))
	italic := NewAttributeCommand(m, "italic", "Italic", "I")

	require.NoError(t, italic.Execute(nil))
	assert.True(t, m.Document().HasAttribute("italic", model.NewRange(0, 5)))
	assert.Equal(t, true, italic.Value())

	require.NoError(t, italic.Execute(nil))
	assert.False(t, m.Document().HasAttribute("italic", model.NewRange(0, 5)))

	require.NoError(t, italic.Execute(true))
	assert.Equal(t, true, italic.Value())

	assert.Error(t, italic.Execute("yes"))
}

func TestRemoveFormatCommand(t *testing.T) {
	m := newModel(t, "styled", model.NewRange(0, 6))
	require.NoError(t, NewAttributeCommand(m, "bold", "Bold", "B").Execute(nil))
	require.NoError(t, NewAttributeCommand(m, "code", "Code", "<>").Execute(nil))

	require.NoError(t, NewRemoveFormatCommand(m).Execute(nil))
	assert.Equal(t, "styled", m.Document().Markdown())
}

func TestInsertCommand(t *testing.T) {
	m := newModel(t, "ab", model.Collapsed(1))
	hr := NewInsertCommand(m, "horizontalLine", "Horizontal line", "—", HorizontalLineText)

	require.NoError(t, hr.Execute(nil))
	assert.Equal(t, "a\n---\nb", m.Document().Text())
	assert.Equal(t, 6, m.Selection().Focus())
}

func TestInputCommand_ReplacesSelection(t *testing.T) {
	m := newModel(t, "hello world", model.NewRange(6, 11))
	require.NoError(t, NewInputCommand(m).Execute("there"))
	assert.Equal(t, "hello there", m.Document().Text())

	assert.Error(t, NewInputCommand(m).Execute(42))
}

func TestDeleteCommand(t *testing.T) {
	m := newModel(t, "abc", model.Collapsed(2))

	require.NoError(t, NewDeleteCommand(m, Backward).Execute(nil))
	assert.Equal(t, "ac", m.Document().Text())
	assert.Equal(t, 1, m.Selection().Focus())

	require.NoError(t, NewDeleteCommand(m, Forward).Execute(nil))
	assert.Equal(t, "a", m.Document().Text())

	// Nothing after the caret.
	require.NoError(t, NewDeleteCommand(m, Forward).Execute(nil))
	assert.Equal(t, "a", m.Document().Text())
}

func TestUndoRedoCommands(t *testing.T) {
	m := newModel(t, "", model.Collapsed(0))
	undo := NewUndoCommand(m)
	redo := NewRedoCommand(m)

	assert.False(t, undo.IsEnabled())
	require.NoError(t, NewInputCommand(m).Execute("x"))
	assert.True(t, undo.IsEnabled())
	assert.False(t, redo.IsEnabled())

	require.NoError(t, undo.Execute(nil))
	assert.Equal(t, "", m.Document().Text())
	assert.True(t, redo.IsEnabled())

	require.NoError(t, redo.Execute(nil))
	assert.Equal(t, "x", m.Document().Text())
}
