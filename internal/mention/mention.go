// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package mention

import (
	"errors"
	"fmt"

	"github.com/jeranaias/slashdoc/internal/config"
	"github.com/jeranaias/slashdoc/internal/feed"
	"github.com/jeranaias/slashdoc/internal/plugin"
)

// PluginName is the name of the mention plugin.
const PluginName = "Mention"

// ErrNoSession is returned by Accept when the caret is not after a marker.
var ErrNoSession = errors.New("no active mention session")

// =============================================================================
// PLUGIN
// =============================================================================

// Plugin returns the Mention plugin. Its Instance is the *Suggester.
func Plugin() *plugin.Plugin {
	p := &plugin.Plugin{Name: PluginName}
	p.Configure = func(ed plugin.Editor) error {
		for _, fc := range ed.Config().Mention.Feeds {
			f := staticFeed(fc)
			if err := ed.Feeds().Add(f); err != nil {
				return err
			}
			ed.Logger().Printf("FEED_REGISTERED | marker=%s items=%d source=config", f.Marker, len(f.Items))
		}
		if err := ed.Commands().Add(NewCommand(ed.Model())); err != nil {
			return err
		}
		p.Instance = NewSuggester(ed)
		return nil
	}
	return p
}

func staticFeed(fc config.FeedConfig) feed.Feed {
	items := make([]feed.Item, len(fc.Items))
	for i, id := range fc.Items {
		items[i] = feed.Item{ID: id}
	}
	return feed.Feed{
		Marker:            fc.Marker,
		Items:             items,
		MinimumCharacters: fc.MinimumCharacters,
	}
}

// SuggesterOf returns the suggester of a loaded Mention plugin.
func SuggesterOf(ed plugin.Editor) (*Suggester, bool) {
	p, ok := ed.Plugins().Get(PluginName)
	if !ok {
		return nil, false
	}
	s, ok := p.Instance.(*Suggester)
	return s, ok
}

// =============================================================================
// SUGGESTER
// =============================================================================

// Suggester drives mention sessions from the editor selection.
type Suggester struct {
	ed      plugin.Editor
	watcher *Watcher
}

// NewSuggester creates a suggester for ed.
func NewSuggester(ed plugin.Editor) *Suggester {
	return &Suggester{ed: ed, watcher: NewWatcher()}
}

// Active returns the session the caret is in. A non-collapsed selection has
// no session.
func (s *Suggester) Active() (Match, bool) {
	sel := s.ed.Model().Selection()
	if !sel.IsCollapsed() {
		return Match{}, false
	}
	text := s.ed.Model().Document().Text()
	return s.watcher.Match(text, sel.Focus(), s.ed.Feeds().Feeds())
}

// Suggestions returns the active session and its items, capped at the
// configured dropdown limit.
func (s *Suggester) Suggestions() (Match, []feed.Item, bool) {
	m, ok := s.Active()
	if !ok {
		return Match{}, nil, false
	}
	items := s.ed.Feeds().Query(m.Marker(), m.Query, s.ed.Config().Mention.DropdownLimit)
	return m, items, true
}

// Render renders item with the feed of the session.
func (s *Suggester) Render(m Match, item feed.Item) string {
	return m.Feed.Render(item)
}

// Accept fires the mention command for item with the marker and range of the
// active session.
func (s *Suggester) Accept(item feed.Item) error {
	m, ok := s.Active()
	if !ok {
		return ErrNoSession
	}
	r := m.Range
	data := ExecuteData{Marker: m.Marker(), Mention: item, Range: &r}
	if err := s.ed.Commands().Execute(CommandName, data); err != nil {
		return fmt.Errorf("accept %s: %w", item.ID, err)
	}
	return nil
}
