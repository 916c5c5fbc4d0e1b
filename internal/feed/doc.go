// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package feed provides the suggestion-feed configuration of the editor.
//
// A feed is keyed by a single-character marker. Typing the marker starts a
// suggestion session whose candidates come from the feed, either a static
// item list filtered by the typed query or a Source function called on
// every query. Registration is additive: adding a feed never replaces the
// feed of another marker, and a marker can be claimed only once.
//
// # Usage
//
//	reg := feed.NewRegistry()
//	err := reg.Add(feed.Feed{
//	    Marker: "@",
//	    Items:  []feed.Item{{ID: "@alice"}, {ID: "@bob"}},
//	})
//	items := reg.Query("@", "al", 10) // [@alice]
package feed
