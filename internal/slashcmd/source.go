// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package slashcmd

import (
	"github.com/jeranaias/slashdoc/internal/command"
	"github.com/jeranaias/slashdoc/internal/config"
	"github.com/jeranaias/slashdoc/internal/mention"
)

// CommandInfo describes one command offered in the slash menu.
type CommandInfo struct {
	// ID is the command name it dispatches to
	ID string

	// Title is the human-readable label
	Title string

	// Icon is an optional glyph
	Icon string
}

// CommandSource enumerates the commands eligible for slash invocation.
// Commands without a label are internal (typing, deleting, mentions) and
// never offered.
type CommandSource struct {
	commands *command.Collection
	include  map[string]bool
	exclude  map[string]bool
	titles   map[string]string
}

// NewCommandSource creates a source over commands filtered by cfg.
func NewCommandSource(commands *command.Collection, cfg config.SlashCommandConfig) *CommandSource {
	s := &CommandSource{
		commands: commands,
		exclude:  toSet(cfg.Exclude),
		titles:   cfg.Titles,
	}
	if len(cfg.Include) > 0 {
		s.include = toSet(cfg.Include)
	}
	return s
}

// Commands returns the eligible commands in registration order. It reads
// the collection on every call.
func (s *CommandSource) Commands() []CommandInfo {
	var infos []CommandInfo
	for _, cmd := range s.commands.All() {
		name := cmd.Name()
		if !s.eligible(cmd) {
			continue
		}
		title := cmd.Label()
		if t, ok := s.titles[name]; ok && t != "" {
			title = t
		}
		infos = append(infos, CommandInfo{ID: name, Title: title, Icon: cmd.Icon()})
	}
	return infos
}

func (s *CommandSource) eligible(cmd command.Command) bool {
	name := cmd.Name()
	switch {
	case cmd.Label() == "", name == mention.CommandName:
		return false
	case s.include != nil && !s.include[name]:
		return false
	case s.exclude[name]:
		return false
	}
	return true
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
