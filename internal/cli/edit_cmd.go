// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/slashdoc/internal/ui/editorview"
)

// HandleEdit opens the interactive editor. An existing file is loaded as
// plain text; Ctrl+S writes the document back as markdown.
func HandleEdit(args Args) error {
	if err := RequiresTTY("edit"); err != nil {
		return NewCommandError("edit", "", err)
	}

	ed, err := newEditor(args)
	if err != nil {
		return NewCommandError("edit", "", err)
	}
	defer ed.Destroy()

	var opts []editorview.Option
	if args.File != "" {
		data, err := os.ReadFile(args.File)
		switch {
		case err == nil:
			if err := ed.SetData(string(data)); err != nil {
				return NewCommandError("edit", "load", err)
			}
		case errors.Is(err, fs.ErrNotExist):
			// saved on first Ctrl+S
		default:
			return NewCommandError("edit", "load", err)
		}
		opts = append(opts, editorview.WithPath(args.File))
	}

	p := tea.NewProgram(editorview.New(ed, opts...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return NewCommandError("edit", "", fmt.Errorf("run editor: %w", err))
	}
	return nil
}
