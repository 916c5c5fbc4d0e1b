// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package feed

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrInvalidMarker is returned for markers that are not one character.
	ErrInvalidMarker = errors.New("marker must be a single character")

	// ErrDuplicateMarker is returned when a marker already has a feed.
	ErrDuplicateMarker = errors.New("marker already registered")
)

// =============================================================================
// ITEM / FEED
// =============================================================================

// Item is one suggestion candidate.
type Item struct {
	// ID identifies the item and starts with the feed marker (e.g. "@alice")
	ID string

	// Text is inserted for the item; the ID is used when empty
	Text string

	// Title is the display label
	Title string

	// Icon is an optional glyph shown before the title
	Icon string
}

// Label returns the title, falling back to the id.
func (i Item) Label() string {
	if i.Title != "" {
		return i.Title
	}
	return i.ID
}

// ItemRenderer turns an item into its display text.
type ItemRenderer func(item Item) string

// Feed is a source of items for one marker.
type Feed struct {
	// Marker is the single character starting a session
	Marker string

	// Items is the static item list, filtered by the query
	Items []Item

	// Source is called on every query instead of filtering Items
	Source func(query string) []Item

	// Renderer renders items of this feed; DefaultRenderer when nil
	Renderer ItemRenderer

	// MinimumCharacters typed after the marker before suggestions show
	MinimumCharacters int
}

// Render renders item with the feed renderer.
func (f Feed) Render(item Item) string {
	if f.Renderer != nil {
		return f.Renderer(item)
	}
	return DefaultRenderer(item)
}

// DefaultRenderer renders "title id" or just the id.
func DefaultRenderer(item Item) string {
	if item.Title == "" || item.Title == item.ID {
		return item.ID
	}
	return item.Title + " " + item.ID
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry holds the feeds of one editor in registration order.
type Registry struct {
	feeds []Feed
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a feed. It fails when the marker is invalid or taken.
func (r *Registry) Add(f Feed) error {
	if utf8.RuneCountInString(f.Marker) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidMarker, f.Marker)
	}
	if _, ok := r.Get(f.Marker); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateMarker, f.Marker)
	}
	r.feeds = append(r.feeds, f)
	return nil
}

// Get returns the feed of marker.
func (r *Registry) Get(marker string) (Feed, bool) {
	for _, f := range r.feeds {
		if f.Marker == marker {
			return f, true
		}
	}
	return Feed{}, false
}

// Markers returns the registered markers in registration order.
func (r *Registry) Markers() []string {
	markers := make([]string, len(r.feeds))
	for i, f := range r.feeds {
		markers[i] = f.Marker
	}
	return markers
}

// Feeds returns a copy of the registered feeds.
func (r *Registry) Feeds() []Feed {
	out := make([]Feed, len(r.feeds))
	copy(out, r.feeds)
	return out
}

// Query returns up to limit items of the marker's feed matching query.
// A limit <= 0 returns every match.
func (r *Registry) Query(marker, query string, limit int) []Item {
	f, ok := r.Get(marker)
	if !ok {
		return nil
	}

	var items []Item
	if f.Source != nil {
		items = f.Source(query)
	} else {
		items = Filter(f.Items, query)
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// =============================================================================
// MATCHING
// =============================================================================

// fold normalizes s for case-insensitive comparison. A Caser keeps state,
// so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Filter returns the items whose id or title contains query, ignoring case.
func Filter(items []Item, query string) []Item {
	q := fold(query)
	var out []Item
	for _, item := range items {
		if Matches(item, q) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether item matches an already folded query.
func Matches(item Item, foldedQuery string) bool {
	if foldedQuery == "" {
		return true
	}
	return strings.Contains(fold(item.ID), foldedQuery) ||
		strings.Contains(fold(item.Title), foldedQuery)
}

// Fold exposes the normalization used by Filter for Source implementations.
func Fold(s string) string {
	return fold(s)
}
