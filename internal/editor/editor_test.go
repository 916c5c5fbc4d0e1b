// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/slashdoc/internal/build"
	"github.com/jeranaias/slashdoc/internal/config"
	"github.com/jeranaias/slashdoc/internal/feed"
	"github.com/jeranaias/slashdoc/internal/mention"
	"github.com/jeranaias/slashdoc/internal/plugin"
	"github.com/jeranaias/slashdoc/internal/slashcmd"
)

func newEditor(t *testing.T, variant string, cfg *config.Config) (*Editor, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	ed, err := New(variant, cfg, WithLogger(log.New(&buf, "", 0)))
	require.NoError(t, err)
	t.Cleanup(ed.Destroy)
	return ed, &buf
}

func ids(items []feed.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

// =============================================================================
// CONSTRUCTION
// =============================================================================

func TestNew_Variants(t *testing.T) {
	for _, v := range build.Variants {
		t.Run(string(v), func(t *testing.T) {
			ed, logs := newEditor(t, string(v), nil)

			assert.Equal(t, v == build.Classic, ed.Plugins().Has(build.SourceEditing))
			assert.True(t, ed.Plugins().Has(slashcmd.UIPluginName))
			assert.Contains(t, ed.External(), "Table")
			assert.NotContains(t, ed.External(), "Bold")
			assert.Contains(t, logs.String(), "PLUGINS | variant="+string(v))
			assert.Contains(t, logs.String(), "PLUGIN_EXTERNAL | names=Alignment,Autoformat,")
		})
	}
}

func TestNew_UnknownVariant(t *testing.T) {
	_, err := New("document", nil)
	assert.ErrorIs(t, err, build.ErrUnknownVariant)
}

func TestNew_DuplicateMarkerFails(t *testing.T) {
	cfg := config.Default()
	cfg.Mention.Feeds = []config.FeedConfig{{Marker: "/", Items: []string{"/home"}}}

	_, err := New("classic", cfg, WithLogger(log.New(&bytes.Buffer{}, "", 0)))
	require.Error(t, err)
	assert.ErrorIs(t, err, feed.ErrDuplicateMarker)
}

func TestNew_WithoutBuiltins(t *testing.T) {
	var configured bool
	extra := &plugin.Plugin{Name: "Custom", Configure: func(plugin.Editor) error {
		configured = true
		return nil
	}}

	ed, err := New("inline", nil, WithoutBuiltins(), WithPlugins(extra), WithLogger(log.New(&bytes.Buffer{}, "", 0)))
	require.NoError(t, err)
	defer ed.Destroy()

	assert.True(t, configured)
	assert.Equal(t, []string{"Custom"}, ed.Plugins().Names())
	assert.Empty(t, ed.Commands().Names())
	assert.ErrorIs(t, ed.Accept(feed.Item{ID: "/bold"}), ErrNoMention)
}

func TestNew_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slashdoc.log")
	cfg := config.Default()
	cfg.Log.File = path

	ed, err := New("balloon", cfg)
	require.NoError(t, err)
	require.NoError(t, ed.Type("/bold"))
	require.NoError(t, ed.AcceptID("/bold"))
	ed.Destroy()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "PLUGINS | variant=balloon")
	assert.Contains(t, string(data), "SLASH_DISPATCH | command=bold")
}

func TestNew_QuietLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slashdoc.log")
	cfg := config.Default()
	cfg.Log.File = path
	cfg.Log.Quiet = true

	ed, err := New("classic", cfg)
	require.NoError(t, err)
	ed.Destroy()

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

// =============================================================================
// SLASH COMMANDS END TO END
// =============================================================================

func TestSlash_TypeAcceptAndUndo(t *testing.T) {
	ed, logs := newEditor(t, "classic", nil)

	require.NoError(t, ed.Type("Text /bo"))
	m, items, ok := ed.Suggestions()
	require.True(t, ok)
	assert.Equal(t, "/", m.Marker())
	assert.Equal(t, []string{"/bold"}, ids(items))

	require.NoError(t, ed.Accept(items[0]))
	assert.Equal(t, "Text ", ed.Data())
	assert.Contains(t, logs.String(), "SLASH_DISPATCH | command=bold range=[5,8)")

	require.NoError(t, ed.Type("x"))
	assert.Equal(t, "Text **x**", ed.Markdown())

	require.NoError(t, ed.Undo())
	assert.Equal(t, "Text ", ed.Data())
	require.NoError(t, ed.Undo())
	assert.Equal(t, "Text /bo", ed.Data(), "one undo reverts removal and command")

	require.NoError(t, ed.Redo())
	assert.Equal(t, "Text ", ed.Data())
}

func TestSlash_SuggestionsExcludeHistoryAndInternalCommands(t *testing.T) {
	ed, _ := newEditor(t, "classic", nil)
	require.NoError(t, ed.Type("/"))

	_, _, ok := ed.Suggestions()
	require.True(t, ok)

	all := ed.Feeds().Query("/", "", 0)
	assert.Equal(t, []string{
		"/bold", "/italic", "/underline", "/strikethrough", "/superscript", "/subscript", "/code",
		"/horizontalLine", "/pageBreak", "/removeFormat", "/sourceEditing",
	}, ids(all))

	_, limited, _ := ed.Suggestions()
	assert.Len(t, limited, ed.Config().Mention.DropdownLimit)
}

func TestSlash_SourceEditingClassicOnly(t *testing.T) {
	classic, _ := newEditor(t, "classic", nil)
	require.NoError(t, classic.Type("/sou"))
	require.NoError(t, classic.AcceptID("/sourceEditing"))
	assert.True(t, classic.SourceMode())
	assert.Equal(t, "", classic.Data())

	inline, _ := newEditor(t, "inline", nil)
	require.NoError(t, inline.Type("/sou"))
	_, items, ok := inline.Suggestions()
	assert.True(t, ok)
	assert.Empty(t, items)
	assert.ErrorIs(t, inline.AcceptID("/sourceEditing"), ErrNoSuggestion)
	assert.False(t, inline.SourceMode())
}

func TestSlash_ForeignFeedUsesDefaultHandling(t *testing.T) {
	cfg := config.Default()
	cfg.Mention.Feeds = []config.FeedConfig{{Marker: "@", Items: []string{"@someone", "@other"}}}
	ed, logs := newEditor(t, "decoupled", cfg)

	require.NoError(t, ed.Type("ping @so"))
	_, items, ok := ed.Suggestions()
	require.True(t, ok)
	require.Equal(t, []string{"@someone"}, ids(items))

	require.NoError(t, ed.Accept(items[0]))
	assert.Equal(t, "ping @someone ", ed.Data())
	assert.Equal(t, "@someone", ed.Model().Document().AttributesAt(5)[mention.AttributeKey])
	assert.NotContains(t, logs.String(), "SLASH_DISPATCH")
}

func TestSlash_ZeroCommands(t *testing.T) {
	cfg := config.Default()
	cfg.SlashCommand.Include = []string{"nothingMatches"}
	ed, _ := newEditor(t, "classic", cfg)

	require.NoError(t, ed.Type("/"))
	_, items, ok := ed.Suggestions()
	assert.True(t, ok)
	assert.Empty(t, items)

	arb, ok := slashcmd.ArbitratorOf(ed)
	require.True(t, ok)
	assert.Equal(t, 0, arb.Len())
}

func TestSlash_InsertCommand(t *testing.T) {
	ed, _ := newEditor(t, "classic", nil)

	require.NoError(t, ed.Type("above/"))
	_, _, ok := ed.Suggestions()
	assert.False(t, ok, "marker inside a word starts no session")

	require.NoError(t, ed.Type(" /hori"))
	require.NoError(t, ed.AcceptID("/horizontalLine"))
	assert.Equal(t, "above/ \n---\n", ed.Data())
}

func TestSlash_TitleOverrideAndCustomMarker(t *testing.T) {
	cfg := config.Default()
	cfg.SlashCommand.Marker = "!"
	cfg.SlashCommand.Titles = map[string]string{"italic": "Kursiv"}
	ed, _ := newEditor(t, "balloon", cfg)

	require.NoError(t, ed.Type("!kurs"))
	m, items, ok := ed.Suggestions()
	require.True(t, ok)
	require.Equal(t, []string{"!italic"}, ids(items))
	assert.Equal(t, "I  Kursiv  !italic", m.Feed.Render(items[0]))
}

// =============================================================================
// FACADE
// =============================================================================

func TestFacade_MoveCursorInheritsFormatting(t *testing.T) {
	ed, _ := newEditor(t, "classic", nil)

	require.NoError(t, ed.Execute("bold", nil))
	require.NoError(t, ed.Type("bold"))
	require.NoError(t, ed.Execute("bold", false))
	require.NoError(t, ed.Type(" plain"))

	require.NoError(t, ed.SetCursor(2))
	require.NoError(t, ed.Type("X"))
	require.NoError(t, ed.MoveCursor(100))
	require.NoError(t, ed.Type("!"))

	assert.Equal(t, "**boXld** plain!", ed.Markdown())
	assert.Equal(t, len([]rune(ed.Data())), ed.Cursor())
}

func TestFacade_SelectBackspaceDelete(t *testing.T) {
	ed, _ := newEditor(t, "inline", nil)
	require.NoError(t, ed.SetData("hello world"))
	assert.False(t, ed.Model().History().CanUndo())

	require.NoError(t, ed.Select(5, 11))
	require.NoError(t, ed.Backspace())
	assert.Equal(t, "hello", ed.Data())

	require.NoError(t, ed.SetCursor(0))
	require.NoError(t, ed.Delete())
	assert.Equal(t, "ello", ed.Data())

	require.NoError(t, ed.Select(-5, 99))
	require.NoError(t, ed.Execute("italic", nil))
	assert.Equal(t, "_ello_", ed.Markdown())
}

func TestFacade_WordCount(t *testing.T) {
	ed, _ := newEditor(t, "classic", nil)
	require.NoError(t, ed.SetData("one two\nthree"))

	wc, ok := ed.WordCount()
	require.True(t, ok)
	assert.Equal(t, 3, wc.Words())
	assert.Equal(t, 12, wc.Characters())
}

func TestFacade_Destroyed(t *testing.T) {
	ed, err := New("classic", nil, WithLogger(log.New(&bytes.Buffer{}, "", 0)))
	require.NoError(t, err)
	ed.Destroy()
	ed.Destroy()

	assert.ErrorIs(t, ed.Type("x"), ErrDestroyed)
	assert.ErrorIs(t, ed.SetCursor(0), ErrDestroyed)
	assert.ErrorIs(t, ed.Accept(feed.Item{ID: "/bold"}), ErrDestroyed)
}
