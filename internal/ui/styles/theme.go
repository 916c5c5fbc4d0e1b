// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components of the editor view and the CLI.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER / STATUS
	// ==========================================================================

	Header       lipgloss.Style
	HeaderTitle  lipgloss.Style
	HeaderBadge  lipgloss.Style
	StatusBar    lipgloss.Style
	StatusSource lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// DOCUMENT
	// ==========================================================================

	Document    lipgloss.Style
	Placeholder lipgloss.Style
	Caret       lipgloss.Style
	Selection   lipgloss.Style
	Markdown    lipgloss.Style

	// ==========================================================================
	// SUGGESTION DROPDOWN
	// ==========================================================================

	Dropdown        lipgloss.Style
	DropdownHeader  lipgloss.Style
	EntryIcon       lipgloss.Style
	EntryTitle      lipgloss.Style
	EntryID         lipgloss.Style
	EntrySelected   lipgloss.Style
	EntryIDSelected lipgloss.Style

	// ==========================================================================
	// SEMANTIC
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
	MutedStyle   lipgloss.Style
}

// NewTheme creates a theme from the detected terminal background.
func NewTheme() *Theme {
	return NewThemeFor("")
}

// NewThemeFor creates a theme for "dark" or "light". Anything else uses the
// detected terminal background.
func NewThemeFor(name string) *Theme {
	colorProfile := termenv.ColorProfile()
	isDark := termenv.HasDarkBackground()
	switch strings.ToLower(name) {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	// Header and status bar
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderBadge = lipgloss.NewStyle().
		Foreground(Cyan).
		Italic(true)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.StatusSource = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Document
	t.Document = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Caret = lipgloss.NewStyle().
		Reverse(true)

	t.Selection = lipgloss.NewStyle().
		Background(SelectionBg)

	t.Markdown = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Emerald).
		PaddingLeft(1)

	// Dropdown
	t.Dropdown = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(0, 1)

	t.DropdownHeader = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.EntryIcon = lipgloss.NewStyle().
		Foreground(Purple)

	t.EntryTitle = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.EntryID = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.EntrySelected = lipgloss.NewStyle().
		Background(Cyan).
		Foreground(Surface).
		Bold(true)

	t.EntryIDSelected = lipgloss.NewStyle().
		Background(Cyan).
		Foreground(Surface)

	// Semantic
	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(Amber)

	t.InfoStyle = lipgloss.NewStyle().
		Foreground(Cyan)

	t.MutedStyle = lipgloss.NewStyle().
		Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// Success renders msg with the success indicator.
func (t *Theme) Success(msg string) string {
	return t.SuccessStyle.Render(StatusIndicators.Success) + " " + msg
}

// Error renders msg with the error indicator.
func (t *Theme) Error(msg string) string {
	return t.ErrorStyle.Render(StatusIndicators.Error) + " " + msg
}

// Warning renders msg with the warning indicator.
func (t *Theme) Warning(msg string) string {
	return t.WarningStyle.Render(StatusIndicators.Warning) + " " + msg
}

// Info renders msg with the info indicator.
func (t *Theme) Info(msg string) string {
	return t.InfoStyle.Render(StatusIndicators.Info) + " " + msg
}
