// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/jeranaias/slashdoc/internal/editor"
	"github.com/jeranaias/slashdoc/internal/slashcmd"
	"github.com/jeranaias/slashdoc/internal/ui/styles"
)

// newEditor builds the editor of the configured or flagged variant.
func newEditor(args Args) (*editor.Editor, error) {
	cfg, err := loadConfig(args)
	if err != nil {
		return nil, err
	}
	return editor.New(variantOf(args, cfg), cfg)
}

// HandleCommands lists the slash commands the build offers, in the order
// the dropdown shows them.
func HandleCommands(args Args) error {
	ed, err := newEditor(args)
	if err != nil {
		return NewCommandError("commands", "", err)
	}
	defer ed.Destroy()

	source, ok := slashcmd.SourceOf(ed)
	if !ok {
		return NewCommandError("commands", "", fmt.Errorf("slash commands are not part of the %s build", ed.Manifest().Variant))
	}
	marker := ed.Config().SlashCommand.Marker
	infos := source.Commands()

	if args.JSON {
		data := CommandsData{
			Variant:  string(ed.Manifest().Variant),
			Marker:   marker,
			Commands: make([]CommandEntry, len(infos)),
		}
		for i, info := range infos {
			data.Commands[i] = CommandEntry{ID: info.ID, Title: info.Title, Icon: info.Icon}
		}
		return NewJSONResponse("commands", data).Print(stdout)
	}

	if len(infos) == 0 {
		fmt.Fprintln(stdout, DimStyle.Render("no slash commands"))
		return nil
	}
	theme := styles.NewThemeFor(ed.Config().UI.Theme)
	fmt.Fprintln(stdout, theme.RenderEntries(slashcmd.Entries(marker, infos), -1))
	return nil
}
