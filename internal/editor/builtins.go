// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"strings"
	"unicode"

	"github.com/jeranaias/slashdoc/internal/build"
	"github.com/jeranaias/slashdoc/internal/command"
	"github.com/jeranaias/slashdoc/internal/mention"
	"github.com/jeranaias/slashdoc/internal/plugin"
	"github.com/jeranaias/slashdoc/internal/slashcmd"
)

// Factory creates a fresh plugin instance.
type Factory func() *plugin.Plugin

// builtins are the manifest plugins implemented by this host.
var builtins = map[string]Factory{
	"Essentials":     essentials,
	"Paragraph":      func() *plugin.Plugin { return &plugin.Plugin{Name: "Paragraph"} },
	"Bold":           attribute("Bold", "bold", "Bold", "B"),
	"Italic":         attribute("Italic", "italic", "Italic", "I"),
	"Underline":      attribute("Underline", "underline", "Underline", "U"),
	"Strikethrough":  attribute("Strikethrough", "strikethrough", "Strikethrough", "S"),
	"Superscript":    attribute("Superscript", "superscript", "Superscript", "x²"),
	"Subscript":      attribute("Subscript", "subscript", "Subscript", "x₂"),
	"Code":           attribute("Code", "code", "Code", "<>"),
	"RemoveFormat":   commands("RemoveFormat", func(ed plugin.Editor) command.Command { return command.NewRemoveFormatCommand(ed.Model()) }),
	"HorizontalLine": insert("HorizontalLine", "horizontalLine", "Horizontal line", "─", command.HorizontalLineText),
	"PageBreak":      insert("PageBreak", "pageBreak", "Page break", "↡", command.PageBreakText),
	"Mention":        mention.Plugin,
	"WordCount":      wordCount,

	build.SourceEditing: sourceEditing,

	slashcmd.EditingPluginName: slashcmd.EditingPlugin,
	slashcmd.UIPluginName:      slashcmd.UIPlugin,
}

// Builtin reports whether the host implements the named plugin.
func Builtin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// commands returns a plugin registering the commands built by fns.
func commands(name string, fns ...func(ed plugin.Editor) command.Command) Factory {
	return func() *plugin.Plugin {
		return &plugin.Plugin{
			Name: name,
			Configure: func(ed plugin.Editor) error {
				for _, fn := range fns {
					if err := ed.Commands().Add(fn(ed)); err != nil {
						return err
					}
				}
				return nil
			},
		}
	}
}

func attribute(name, key, label, icon string) Factory {
	return commands(name, func(ed plugin.Editor) command.Command {
		return command.NewAttributeCommand(ed.Model(), key, label, icon)
	})
}

func insert(name, cmd, label, icon, text string) Factory {
	return commands(name, func(ed plugin.Editor) command.Command {
		return command.NewInsertCommand(ed.Model(), cmd, label, icon, text)
	})
}

func essentials() *plugin.Plugin {
	return commands("Essentials",
		func(ed plugin.Editor) command.Command { return command.NewInputCommand(ed.Model()) },
		func(ed plugin.Editor) command.Command { return command.NewDeleteCommand(ed.Model(), command.Backward) },
		func(ed plugin.Editor) command.Command { return command.NewDeleteCommand(ed.Model(), command.Forward) },
		func(ed plugin.Editor) command.Command { return command.NewUndoCommand(ed.Model()) },
		func(ed plugin.Editor) command.Command { return command.NewRedoCommand(ed.Model()) },
	)()
}

// =============================================================================
// SOURCE EDITING
// =============================================================================

// SourceEditingCommand is the name of the source mode toggle.
const SourceEditingCommand = "sourceEditing"

func sourceEditing() *plugin.Plugin {
	return commands(build.SourceEditing, func(ed plugin.Editor) command.Command {
		on := false
		return command.NewBase(command.Spec{
			Name:  SourceEditingCommand,
			Label: "Source",
			Icon:  "MD",
			State: func() any { return on },
			Body: func(arg any) error {
				if v, ok := arg.(bool); ok {
					on = v
				} else {
					on = !on
				}
				ed.Logger().Printf("SOURCE_EDITING | enabled=%t", on)
				return nil
			},
		})
	})()
}

// =============================================================================
// WORD COUNT
// =============================================================================

// WordCount counts the words and characters of the document.
type WordCount struct {
	ed plugin.Editor
}

// Words returns the number of whitespace separated words.
func (w *WordCount) Words() int {
	return len(strings.FieldsFunc(w.ed.Model().Document().Text(), unicode.IsSpace))
}

// Characters returns the number of characters, line breaks excluded.
func (w *WordCount) Characters() int {
	return len([]rune(strings.ReplaceAll(w.ed.Model().Document().Text(), "\n", "")))
}

func wordCount() *plugin.Plugin {
	p := &plugin.Plugin{Name: "WordCount"}
	p.Configure = func(ed plugin.Editor) error {
		p.Instance = &WordCount{ed: ed}
		return nil
	}
	return p
}
