// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling of the slashdoc editor view and CLI.

All colors use Lip Gloss AdaptiveColor so they follow the terminal
background. NewThemeFor pins the background to the configured ui.theme.

# Suggestion entries

RenderEntry lays out a suggestion in three columns: the icon padded to
slashcmd.IconWidth cells, the title, and the id. EntryRenderer wraps it as a
feed.ItemRenderer so the same layout serves the dropdown and the
"slashdoc commands" listing.

	theme := styles.NewThemeFor(cfg.UI.Theme)
	fmt.Println(theme.RenderEntries(items, -1))
*/
package styles
