// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package slashcmd

import (
	"fmt"

	"github.com/jeranaias/slashdoc/internal/command"
	"github.com/jeranaias/slashdoc/internal/feed"
	"github.com/jeranaias/slashdoc/internal/mention"
	"github.com/jeranaias/slashdoc/internal/plugin"
)

// Plugin names.
const (
	EditingPluginName = "SlashCommandEditing"
	UIPluginName      = "SlashCommandUI"
)

// EditingPlugin returns the SlashCommandEditing plugin. Its Instance is the
// *CommandSource.
func EditingPlugin() *plugin.Plugin {
	p := &plugin.Plugin{Name: EditingPluginName}
	p.Configure = func(ed plugin.Editor) error {
		p.Instance = NewCommandSource(ed.Commands(), ed.Config().SlashCommand)
		return nil
	}
	return p
}

// UIPlugin returns the SlashCommandUI plugin. Its Instance is the
// *Arbitrator once wired.
func UIPlugin() *plugin.Plugin {
	p := &plugin.Plugin{
		Name:     UIPluginName,
		Requires: []string{EditingPluginName, mention.PluginName},
	}

	var source *CommandSource
	var marker string

	p.Configure = func(ed plugin.Editor) error {
		var ok bool
		if source, ok = SourceOf(ed); !ok {
			return fmt.Errorf("%s has no command source", EditingPluginName)
		}
		marker = ed.Config().SlashCommand.Marker

		err := ed.Feeds().Add(feed.Feed{
			Marker: marker,
			Source: func(query string) []feed.Item {
				return feed.Filter(Entries(marker, source.Commands()), query)
			},
			Renderer: RenderItem,
		})
		if err != nil {
			return err
		}
		ed.Logger().Printf("FEED_REGISTERED | marker=%s source=commands", marker)
		return nil
	}

	p.Wire = func(ed plugin.Editor) error {
		cmd, ok := ed.Commands().Get(mention.CommandName)
		if !ok {
			return fmt.Errorf("%w: %s", command.ErrUnknownCommand, mention.CommandName)
		}
		arb := NewArbitrator(marker, ed.Model(), ed.Commands(), ed.Logger(), source.Commands())
		off := arb.Attach(cmd)
		p.Destroy = off
		p.Instance = arb
		return nil
	}

	return p
}

// SourceOf returns the command source of a loaded SlashCommandEditing plugin.
func SourceOf(ed plugin.Editor) (*CommandSource, bool) {
	p, ok := ed.Plugins().Get(EditingPluginName)
	if !ok {
		return nil, false
	}
	s, ok := p.Instance.(*CommandSource)
	return s, ok
}

// ArbitratorOf returns the arbitrator of a loaded SlashCommandUI plugin.
func ArbitratorOf(ed plugin.Editor) (*Arbitrator, bool) {
	p, ok := ed.Plugins().Get(UIPluginName)
	if !ok {
		return nil, false
	}
	a, ok := p.Instance.(*Arbitrator)
	return a, ok
}
