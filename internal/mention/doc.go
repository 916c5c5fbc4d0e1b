// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mention provides the mention/autocomplete subsystem of the editor.
//
// The Mention plugin loads the static feeds of the configuration into the
// feed registry and registers the "mention" command. A Watcher finds the
// marker the caret is typing after; a Suggester turns that into suggestions
// and, on accept, fires the mention command with the marker, the accepted
// item and the range of the typed trigger text.
//
// The mention command's default listener replaces the range with the item
// text carrying a "mention" attribute. Other plugins may claim the execute
// event at a higher priority and stop it before that happens.
//
// # Usage
//
//	s := mention.SuggesterOf(ed)
//	session, items := s.Suggestions()
//	err := s.Accept(items[0])
package mention
