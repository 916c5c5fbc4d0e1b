// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package mention

import (
	"strings"
	"unicode"

	"github.com/jeranaias/slashdoc/internal/feed"
	"github.com/jeranaias/slashdoc/internal/model"
)

// DefaultOpeners are the characters a marker may directly follow.
const DefaultOpeners = "([{\"'"

// Match is an active mention session found before the caret.
type Match struct {
	// Feed is the feed of the marker
	Feed feed.Feed

	// Query is the text typed after the marker
	Query string

	// Range covers the marker and the query
	Range model.Range
}

// Marker returns the marker of the matched feed.
func (m Match) Marker() string {
	return m.Feed.Marker
}

// Watcher finds mention sessions in text.
type Watcher struct {
	// Openers are the characters a marker may follow besides whitespace
	Openers string
}

// NewWatcher creates a watcher with DefaultOpeners.
func NewWatcher() *Watcher {
	return &Watcher{Openers: DefaultOpeners}
}

// Match looks back from cursor for a marker of one of feeds. The marker must
// start the text or follow whitespace or an opener, and the query between the
// marker and the cursor must not contain whitespace. Matches with fewer query
// characters than the feed's MinimumCharacters are ignored.
func (w *Watcher) Match(text string, cursor int, feeds []feed.Feed) (Match, bool) {
	runes := []rune(text)
	if cursor < 0 || cursor > len(runes) {
		return Match{}, false
	}

	byMarker := make(map[rune]feed.Feed, len(feeds))
	for _, f := range feeds {
		r := []rune(f.Marker)
		if len(r) == 1 {
			byMarker[r[0]] = f
		}
	}

	for i := cursor - 1; i >= 0; i-- {
		r := runes[i]
		if unicode.IsSpace(r) {
			return Match{}, false
		}
		f, ok := byMarker[r]
		if !ok || !w.startsSession(runes, i) {
			continue
		}

		query := string(runes[i+1 : cursor])
		if len([]rune(query)) < f.MinimumCharacters {
			return Match{}, false
		}
		return Match{Feed: f, Query: query, Range: model.NewRange(i, cursor)}, true
	}
	return Match{}, false
}

func (w *Watcher) startsSession(runes []rune, i int) bool {
	if i == 0 {
		return true
	}
	prev := runes[i-1]
	return unicode.IsSpace(prev) || strings.ContainsRune(w.Openers, prev)
}
