// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package slashcmd

import (
	"strings"

	"github.com/jeranaias/slashdoc/internal/feed"
	"github.com/jeranaias/slashdoc/internal/util"
)

// IconWidth is the number of cells the icon column takes.
const IconWidth = 2

// Entries projects command descriptors onto feed items whose id is the
// marker followed by the command id.
func Entries(marker string, infos []CommandInfo) []feed.Item {
	items := make([]feed.Item, len(infos))
	for i, info := range infos {
		items[i] = feed.Item{
			ID:    marker + info.ID,
			Title: info.Title,
			Icon:  info.Icon,
		}
	}
	return items
}

// Columns splits the display of an entry into its icon, title and id cells.
// The icon is padded or cut to IconWidth cells.
func Columns(item feed.Item) (icon, title, id string) {
	return util.PadWidth(item.Icon, IconWidth), item.Label(), item.ID
}

// RenderItem lays out an entry as icon, title and id side by side.
func RenderItem(item feed.Item) string {
	icon, title, id := Columns(item)
	if title == id {
		return strings.TrimRight(icon+" "+title, " ")
	}
	return icon + " " + title + "  " + id
}
