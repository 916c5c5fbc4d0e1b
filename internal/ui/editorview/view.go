// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editorview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/slashdoc/internal/model"
	"github.com/jeranaias/slashdoc/internal/ui/styles"
)

// maxPaneLines caps the markdown pane height.
const maxPaneLines = 8

// =============================================================================
// MARKDOWN
// =============================================================================

// RenderMarkdown renders markdown for the terminal, wrapped to width.
func RenderMarkdown(md string, width int, theme string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch theme {
	case "dark", "light":
		opts = append(opts, glamour.WithStandardStyle(theme))
	default:
		opts = append(opts, glamour.WithAutoStyle())
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	parts := []string{m.renderHeader(), m.viewport.View()}
	if dd := m.renderDropdown(); dd != "" {
		parts = append(parts, dd)
	}
	if pane := m.renderPane(); pane != "" {
		parts = append(parts, pane)
	}
	parts = append(parts, m.renderStatus(), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("slashdoc")
	badge := m.theme.HeaderBadge.Render(string(m.ed.Manifest().Variant))
	line := title + " " + badge
	if m.path != "" && m.theme.GetLayoutMode() != styles.LayoutNarrow {
		line += "  " + m.theme.MutedStyle.Render(m.path)
	}
	return m.theme.Header.Width(m.width).Render(line)
}

// renderDocument renders the document text with its formatting, the caret
// and the selected ranges.
func (m Model) renderDocument() string {
	doc := m.ed.Model().Document()
	sel := m.ed.Model().Selection()

	if doc.Len() == 0 {
		return m.theme.Caret.Render(" ") + m.theme.Placeholder.Render(m.ed.Config().Placeholder)
	}

	chars, err := doc.Chars(model.NewRange(0, doc.Len()))
	if err != nil {
		return doc.Text()
	}

	caret := -1
	if sel.IsCollapsed() {
		caret = sel.Focus()
	}
	ranges := sel.Ranges()

	var sb strings.Builder
	for i, c := range chars {
		if c.R == '\n' {
			if i == caret {
				sb.WriteString(m.theme.Caret.Render(" "))
			}
			sb.WriteByte('\n')
			continue
		}
		style := charStyle(c.Attrs)
		switch {
		case i == caret:
			style = style.Inherit(m.theme.Caret)
		case inRanges(ranges, i):
			style = style.Inherit(m.theme.Selection)
		}
		sb.WriteString(style.Render(string(c.R)))
	}
	if caret == len(chars) {
		sb.WriteString(m.theme.Caret.Render(" "))
	}
	return sb.String()
}

// charStyle maps formatting attributes onto terminal text styles.
func charStyle(attrs model.Attributes) lipgloss.Style {
	s := lipgloss.NewStyle()
	if _, ok := attrs["bold"]; ok {
		s = s.Bold(true)
	}
	if _, ok := attrs["italic"]; ok {
		s = s.Italic(true)
	}
	if _, ok := attrs["underline"]; ok {
		s = s.Underline(true)
	}
	if _, ok := attrs["strikethrough"]; ok {
		s = s.Strikethrough(true)
	}
	if _, ok := attrs["code"]; ok {
		s = s.Faint(true)
	}
	return s
}

func inRanges(ranges []model.Range, pos int) bool {
	for _, r := range ranges {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}

func (m Model) renderDropdown() string {
	match, items, ok := m.suggestions()
	if !ok {
		return ""
	}
	header := m.theme.DropdownHeader.Render(fmt.Sprintf("%s%s", match.Marker(), match.Query))
	body := m.theme.RenderEntries(items, m.selected)
	return m.theme.Dropdown.Render(header + "\n" + body)
}

// renderPane renders the markdown source in source mode, or the rendered
// preview when the preview is on.
func (m Model) renderPane() string {
	md := m.ed.Markdown()
	var content string
	switch {
	case m.ed.SourceMode():
		content = md
	case m.showMarkdown:
		out, err := RenderMarkdown(md, max(m.width-4, 20), m.ed.Config().UI.Theme)
		if err != nil {
			content = md
		} else {
			content = strings.Trim(out, "\n")
		}
	default:
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > maxPaneLines {
		lines = lines[len(lines)-maxPaneLines:]
	}
	return m.theme.Markdown.Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus() string {
	var left string
	if m.ed.SourceMode() {
		left = m.theme.StatusSource.Render("SOURCE") + "  "
	}
	if wc, ok := m.ed.WordCount(); ok {
		left += fmt.Sprintf("%d words  %d chars", wc.Words(), wc.Characters())
	}
	if m.status != "" {
		if m.statusErr {
			left += "  " + m.theme.Error(m.status)
		} else {
			left += "  " + m.theme.Success(m.status)
		}
	}
	return m.theme.StatusBar.Width(m.width).Render(left)
}

// documentHeight returns the rows left for the document.
func (m Model) documentHeight() int {
	used := 2 + lipgloss.Height(m.help.View(m.keys))
	if dd := m.renderDropdown(); dd != "" {
		used += lipgloss.Height(dd)
	}
	if pane := m.renderPane(); pane != "" {
		used += lipgloss.Height(pane)
	}
	return max(m.height-used, 3)
}
