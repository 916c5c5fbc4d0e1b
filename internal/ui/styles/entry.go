// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/jeranaias/slashdoc/internal/feed"
	"github.com/jeranaias/slashdoc/internal/slashcmd"
	"github.com/jeranaias/slashdoc/internal/util"
)

// =============================================================================
// SUGGESTION ENTRIES
// =============================================================================

// EntryRenderer returns a feed renderer that styles each entry with the
// theme. The id column is aligned to titleWidth cells.
func (t *Theme) EntryRenderer(titleWidth int) feed.ItemRenderer {
	return func(item feed.Item) string {
		return t.RenderEntry(item, titleWidth, false)
	}
}

// RenderEntry renders one suggestion as icon, title and id columns.
// Entries whose title is their id show only the title.
func (t *Theme) RenderEntry(item feed.Item, titleWidth int, selected bool) string {
	icon, title, id := slashcmd.Columns(item)

	iconStyle, titleStyle, idStyle := t.EntryIcon, t.EntryTitle, t.EntryID
	if selected {
		iconStyle, titleStyle, idStyle = t.EntrySelected, t.EntrySelected, t.EntryIDSelected
	}

	if title == id {
		return iconStyle.Render(icon) + titleStyle.Render(" "+title)
	}
	if titleWidth > 0 {
		title = util.PadWidth(util.TruncateWidth(title, titleWidth), titleWidth)
	}
	return iconStyle.Render(icon) + titleStyle.Render(" "+title+"  ") + idStyle.Render(id)
}

// TitleWidth returns the widest title among items, capped at max.
func TitleWidth(items []feed.Item, max int) int {
	w := 0
	for _, item := range items {
		if n := util.StringWidth(item.Label()); n > w {
			w = n
		}
	}
	if max > 0 && w > max {
		w = max
	}
	return w
}

// RenderEntries renders items one per line with the selected one highlighted.
// A negative selected highlights nothing.
func (t *Theme) RenderEntries(items []feed.Item, selected int) string {
	width := TitleWidth(items, 24)
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = t.RenderEntry(item, width, i == selected)
	}
	return strings.Join(lines, "\n")
}
