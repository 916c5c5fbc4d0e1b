// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package build describes the "all-in" editor builds: which plugins each
// variant ships and the toolbar it starts with.
package build

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/slashdoc/internal/config"
)

// ErrUnknownVariant is returned for a variant name no build exists for.
var ErrUnknownVariant = errors.New("unknown editor variant")

// Variant is an editor build.
type Variant string

const (
	Classic   Variant = "classic"
	Inline    Variant = "inline"
	Balloon   Variant = "balloon"
	Decoupled Variant = "decoupled"
)

// Variants lists every build in display order.
var Variants = []Variant{Classic, Inline, Balloon, Decoupled}

// ParseVariant parses a variant name, ignoring case.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Plugins shipped by every variant, in load order.
var Plugins = []string{
	"Alignment",
	"Autoformat",
	"Bold", "Italic", "Underline", "Strikethrough", "Superscript", "Subscript", "Code",
	"BlockQuote",
	"CloudServices",
	"CodeBlock",
	"Comments",
	"EasyImage",
	"Essentials",
	"ExportPdf",
	"ExportWord",
	"Heading",
	"Image", "ImageCaption", "ImageStyle", "ImageToolbar", "AutoImage", "ImageResize", "ImageUpload",
	"Indent", "IndentBlock",
	"TextPartLanguage",
	"Link", "AutoLink", "LinkImage",
	"List", "ListProperties", "TodoList",
	"MediaEmbed",
	"Paragraph",
	"FindAndReplace",
	"FontBackgroundColor", "FontColor", "FontFamily", "FontSize",
	"Highlight",
	"HorizontalLine",
	"HtmlEmbed",
	"HtmlComment",
	"Mention",
	"PageBreak",
	"PasteFromOffice",
	"Pagination",
	"RealTimeCollaborativeComments",
	"RealTimeCollaborativeRevisionHistory",
	"RealTimeCollaborativeTrackChanges",
	"RemoveFormat",
	"RevisionHistory",
	"StandardEditingMode",
	"SpecialCharacters", "SpecialCharactersEssentials",
	"Table", "TableToolbar", "TableCellProperties", "TableProperties", "TableCaption",
	"TrackChanges",
	"TextTransformation",
	"WordCount",
	"SlashCommandEditing", "SlashCommandUI",
}

// SourceEditing is only shipped by the classic build.
const (
	SourceEditing        = "SourceEditing"
	SourceEditingToolbar = "sourceEditing"
)

// Manifest is the resolved build of one variant.
type Manifest struct {
	Variant Variant
	Plugins []string
	Toolbar []string
}

// For resolves the manifest of v with the toolbar of cfg.
func For(v Variant, cfg *config.Config) Manifest {
	m := Manifest{
		Variant: v,
		Plugins: append([]string(nil), Plugins...),
		Toolbar: append([]string(nil), cfg.Toolbar...),
	}
	if v == Classic {
		m.Plugins = append(m.Plugins, SourceEditing)
		if !m.HasToolbarItem(SourceEditingToolbar) {
			m.Toolbar = append(m.Toolbar, "|", SourceEditingToolbar)
		}
	}
	return m
}

// Has reports whether the manifest ships the plugin.
func (m Manifest) Has(plugin string) bool {
	for _, p := range m.Plugins {
		if p == plugin {
			return true
		}
	}
	return false
}

// HasToolbarItem reports whether the toolbar contains item.
func (m Manifest) HasToolbarItem(item string) bool {
	for _, t := range m.Toolbar {
		if t == item {
			return true
		}
	}
	return false
}

// ToolbarGroups splits the toolbar at its "|" separators, dropping empty groups.
func (m Manifest) ToolbarGroups() [][]string {
	var groups [][]string
	var current []string
	for _, item := range m.Toolbar {
		if item == "|" {
			if len(current) > 0 {
				groups = append(groups, current)
			}
			current = nil
			continue
		}
		current = append(current, item)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}
