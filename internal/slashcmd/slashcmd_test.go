// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package slashcmd

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/slashdoc/internal/command"
	"github.com/jeranaias/slashdoc/internal/config"
	"github.com/jeranaias/slashdoc/internal/feed"
	"github.com/jeranaias/slashdoc/internal/mention"
	"github.com/jeranaias/slashdoc/internal/model"
	"github.com/jeranaias/slashdoc/internal/plugin"
)

// =============================================================================
// TEST EDITOR
// =============================================================================

type testEditor struct {
	cfg      *config.Config
	model    *model.Model
	commands *command.Collection
	feeds    *feed.Registry
	plugins  *plugin.Collection
	logBuf   bytes.Buffer
	logger   *log.Logger
}

func (e *testEditor) Config() *config.Config { return e.cfg }
func (e *testEditor) Model() *model.Model { return e.model }
func (e *testEditor) Commands() *command.Collection { return e.commands }
func (e *testEditor) Feeds() *feed.Registry { return e.feeds }
func (e *testEditor) Plugins() *plugin.Collection { return e.plugins }
func (e *testEditor) Logger() *log.Logger { return e.logger }

// newEditor builds an editor with the given commands registered before the
// plugins load. text is set with the caret at its end.
func newEditor(t *testing.T, cfg *config.Config, text string, register func(m *model.Model) []command.Command) *testEditor {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	ed := &testEditor{
		cfg:      cfg,
		model:    model.New(cfg.Undo.Steps),
		commands: command.NewCollection(),
		feeds:    feed.NewRegistry(),
		plugins:  plugin.NewCollection(),
	}
	ed.logger = log.New(&ed.logBuf, "", 0)

	if register != nil {
		for _, cmd := range register(ed.model) {
			require.NoError(t, ed.commands.Add(cmd))
		}
	}
	require.NoError(t, ed.plugins.Load(ed, []*plugin.Plugin{UIPlugin(), mention.Plugin(), EditingPlugin()}))

	require.NoError(t, ed.model.ChangeWith(model.BatchTransparent, func(w *model.Writer) error {
		if err := w.InsertText(0, text, nil); err != nil {
			return err
		}
		return w.SetSelection(model.Collapsed(len([]rune(text))))
	}))
	return ed
}

func boldOnly(m *model.Model) []command.Command {
	return []command.Command{command.NewAttributeCommand(m, "bold", "Bold", "B")}
}

func standard(m *model.Model) []command.Command {
	return []command.Command{
		command.NewAttributeCommand(m, "bold", "Bold", "B"),
		command.NewAttributeCommand(m, "italic", "Italic", "I"),
		command.NewInsertCommand(m, "horizontalLine", "Horizontal line", "─", command.HorizontalLineText),
		command.NewUndoCommand(m),
		command.NewRedoCommand(m),
		command.NewInputCommand(m),
	}
}

func accept(t *testing.T, ed *testEditor, marker, id string, r *model.Range) {
	t.Helper()
	data := mention.ExecuteData{Marker: marker, Mention: feed.Item{ID: id}, Range: r}
	require.NoError(t, ed.commands.Execute(mention.CommandName, data))
}

func rangePtr(a, b int) *model.Range {
	r := model.NewRange(a, b)
	return &r
}

// =============================================================================
// SOURCE / ENTRY TESTS
// =============================================================================

func TestCommandSource_Eligibility(t *testing.T) {
	m := model.New(0)
	commands := command.NewCollection()
	for _, cmd := range standard(m) {
		require.NoError(t, commands.Add(cmd))
	}
	require.NoError(t, commands.Add(mention.NewCommand(m)))

	tests := []struct {
		name string
		cfg  config.SlashCommandConfig
		want []string
	}{
		{name: "labelled commands only", cfg: config.SlashCommandConfig{}, want: []string{"bold", "italic", "horizontalLine", "undo", "redo"}},
		{name: "default exclude", cfg: config.Default().SlashCommand, want: []string{"bold", "italic", "horizontalLine"}},
		{name: "include", cfg: config.SlashCommandConfig{Include: []string{"italic", "input", "mention"}}, want: []string{"italic"}},
		{name: "include and exclude", cfg: config.SlashCommandConfig{Include: []string{"bold", "italic"}, Exclude: []string{"bold"}}, want: []string{"italic"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, info := range NewCommandSource(commands, tt.cfg).Commands() {
				got = append(got, info.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandSource_TitleOverride(t *testing.T) {
	m := model.New(0)
	commands := command.NewCollection()
	require.NoError(t, commands.Add(command.NewAttributeCommand(m, "bold", "Bold", "B")))

	infos := NewCommandSource(commands, config.SlashCommandConfig{Titles: map[string]string{"bold": "Fett"}}).Commands()
	require.Len(t, infos, 1)
	assert.Equal(t, CommandInfo{ID: "bold", Title: "Fett", Icon: "B"}, infos[0])
}

func TestEntries_IDInvertsLosslessly(t *testing.T) {
	infos := []CommandInfo{
		{ID: "bold", Title: "Bold"},
		{ID: "horizontalLine", Title: "Horizontal line"},
		{ID: "/weird", Title: "Starts with the marker"},
		{ID: "", Title: "Empty"},
	}

	for _, marker := range []string{"/", "€"} {
		arb := NewArbitrator(marker, model.New(0), command.NewCollection(), log.New(&bytes.Buffer{}, "", 0), infos)
		for i, item := range Entries(marker, infos) {
			assert.Equal(t, marker+infos[i].ID, item.ID)
			id, ok := arb.CommandID(marker, item.ID)
			require.True(t, ok, item.ID)
			assert.Equal(t, infos[i].ID, id)
		}
	}
}

func TestArbitrator_CommandIDRejectsForeignEntries(t *testing.T) {
	arb := NewArbitrator("/", model.New(0), command.NewCollection(), log.New(&bytes.Buffer{}, "", 0),
		[]CommandInfo{{ID: "bold", Title: "Bold"}})

	tests := []struct {
		marker string
		id     string
	}{
		{"@", "/bold"},
		{"/", "/bolder"},
		{"/", "/bol"},
		{"/", "bold"},
		{"/", "@bold"},
		{"/", ""},
	}
	for _, tt := range tests {
		_, ok := arb.CommandID(tt.marker, tt.id)
		assert.False(t, ok, "%s %s", tt.marker, tt.id)
	}
	assert.Equal(t, 1, arb.Len())
}

func TestRenderItem(t *testing.T) {
	tests := []struct {
		item feed.Item
		want string
	}{
		{feed.Item{ID: "/bold", Title: "Bold", Icon: "B"}, "B  Bold  /bold"},
		{feed.Item{ID: "/removeFormat", Title: "Remove Format", Icon: "Tx"}, "Tx Remove Format  /removeFormat"},
		{feed.Item{ID: "/pageBreak", Title: "Page break"}, "   Page break  /pageBreak"},
		{feed.Item{ID: "/x"}, "   /x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RenderItem(tt.item))
	}

	icon, title, id := Columns(feed.Item{ID: "/bold", Title: "Bold", Icon: "Bold"})
	assert.Equal(t, "Bo", icon)
	assert.Equal(t, "Bold", title)
	assert.Equal(t, "/bold", id)
}

// =============================================================================
// PLUGIN TESTS
// =============================================================================

func TestUIPlugin_RegistersFeedAdditively(t *testing.T) {
	cfg := config.Default()
	cfg.Mention.Feeds = []config.FeedConfig{{Marker: "@", Items: []string{"@someone"}}}
	ed := newEditor(t, cfg, "", standard)

	assert.Equal(t, []string{"@", "/"}, ed.feeds.Markers())

	items := ed.feeds.Query("/", "", 0)
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	assert.Equal(t, []string{"/bold", "/italic", "/horizontalLine"}, ids)

	f, ok := ed.feeds.Get("/")
	require.True(t, ok)
	assert.Equal(t, "B  Bold  /bold", f.Render(items[0]))

	assert.Contains(t, ed.logBuf.String(), "FEED_REGISTERED | marker=/ source=commands")

	arb, ok := ArbitratorOf(ed)
	require.True(t, ok)
	assert.Equal(t, Armed, arb.State())
	assert.Equal(t, "/", arb.Marker())
}

func TestUIPlugin_FeedFiltersByQuery(t *testing.T) {
	ed := newEditor(t, nil, "", standard)

	items := ed.feeds.Query("/", "LIN", 0)
	require.Len(t, items, 1)
	assert.Equal(t, "/horizontalLine", items[0].ID)
}

func TestUIPlugin_DuplicateMarkerFailsStartup(t *testing.T) {
	cfg := config.Default()
	cfg.Mention.Feeds = []config.FeedConfig{{Marker: "/", Items: []string{"/path"}}}

	ed := &testEditor{
		cfg:      cfg,
		model:    model.New(0),
		commands: command.NewCollection(),
		feeds:    feed.NewRegistry(),
		plugins:  plugin.NewCollection(),
	}
	ed.logger = log.New(&ed.logBuf, "", 0)

	err := ed.plugins.Load(ed, []*plugin.Plugin{mention.Plugin(), EditingPlugin(), UIPlugin()})
	require.Error(t, err)
	assert.ErrorIs(t, err, feed.ErrDuplicateMarker)
	assert.Contains(t, err.Error(), UIPluginName)
}

func TestUIPlugin_RequiresMention(t *testing.T) {
	ed := &testEditor{
		cfg:      config.Default(),
		model:    model.New(0),
		commands: command.NewCollection(),
		feeds:    feed.NewRegistry(),
		plugins:  plugin.NewCollection(),
	}
	ed.logger = log.New(&ed.logBuf, "", 0)

	err := ed.plugins.Load(ed, []*plugin.Plugin{EditingPlugin(), UIPlugin()})
	assert.ErrorIs(t, err, plugin.ErrMissingDependency)
}

func TestUIPlugin_CustomMarker(t *testing.T) {
	cfg := config.Default()
	cfg.SlashCommand.Marker = "\\"
	ed := newEditor(t, cfg, "go \\bo", boldOnly)

	accept(t, ed, "\\", "\\bold", rangePtr(3, 6))
	assert.Equal(t, "go ", ed.model.Document().Text())
	assert.Equal(t, true, mustGet(t, ed, "bold").Value())
}

func TestUIPlugin_ZeroCommands(t *testing.T) {
	ed := newEditor(t, nil, "x /", nil)

	_, ok := ed.feeds.Get("/")
	assert.True(t, ok, "feed registered even when empty")
	assert.Empty(t, ed.feeds.Query("/", "", 0))

	arb, ok := ArbitratorOf(ed)
	require.True(t, ok)
	assert.Equal(t, 0, arb.Len())

	s, ok := mention.SuggesterOf(ed)
	require.True(t, ok)
	_, items, active := s.Suggestions()
	assert.True(t, active)
	assert.Empty(t, items)
}

func TestUIPlugin_DestroyDetaches(t *testing.T) {
	ed := newEditor(t, nil, "a /bold", boldOnly)
	ed.plugins.Destroy()

	accept(t, ed, "/", "/bold", rangePtr(2, 7))
	assert.Equal(t, "a /bold ", ed.model.Document().Text(), "default mention insertion runs once detached")
}

func mustGet(t *testing.T, ed *testEditor, name string) command.Command {
	t.Helper()
	cmd, ok := ed.commands.Get(name)
	require.True(t, ok, name)
	return cmd
}

// =============================================================================
// ARBITRATION TESTS
// =============================================================================

func TestArbitrator_ClaimedAccept(t *testing.T) {
	ed := newEditor(t, nil, "Text /bold", boldOnly)
	bold := mustGet(t, ed, "bold")
	historyBefore := ed.model.History().Len()

	accept(t, ed, "/", "/bold", rangePtr(5, 10))

	assert.Equal(t, "Text ", ed.model.Document().Text())
	assert.Equal(t, true, bold.Value(), "bold invoked")
	assert.Equal(t, historyBefore+1, ed.model.History().Len(), "one batch for removal and command")
	assert.Contains(t, ed.logBuf.String(), "SLASH_DISPATCH | command=bold range=[5,10)")

	arb, _ := ArbitratorOf(ed)
	assert.Equal(t, Armed, arb.State())

	// A single undo reverts both effects.
	undone, err := ed.model.Undo()
	require.NoError(t, err)
	require.True(t, undone)
	assert.Equal(t, "Text /bold", ed.model.Document().Text())
	assert.Equal(t, false, bold.Value())
	assert.False(t, ed.model.History().CanUndo())
}

func TestArbitrator_ClaimedAcceptWithRangeCommand(t *testing.T) {
	ed := newEditor(t, nil, "one /hor", standard)

	accept(t, ed, "/", "/horizontalLine", rangePtr(4, 8))
	assert.Equal(t, "one "+command.HorizontalLineText, ed.model.Document().Text())

	_, err := ed.model.Undo()
	require.NoError(t, err)
	assert.Equal(t, "one /hor", ed.model.Document().Text())
}

func TestArbitrator_DispatchingStateDuringCommand(t *testing.T) {
	var seen State = -1
	var arb *Arbitrator

	ed := newEditor(t, nil, "/probe", func(m *model.Model) []command.Command {
		return []command.Command{command.NewBase(command.Spec{
			Name:  "probe",
			Label: "Probe",
			Body: func(arg any) error {
				seen = arb.State()
				return nil
			},
		})}
	})
	var ok bool
	arb, ok = ArbitratorOf(ed)
	require.True(t, ok)

	accept(t, ed, "/", "/probe", rangePtr(0, 6))
	assert.Equal(t, Dispatching, seen)
	assert.Equal(t, Armed, arb.State())
}

func TestArbitrator_ForeignMarkerIsNoOp(t *testing.T) {
	cfg := config.Default()
	cfg.Mention.Feeds = []config.FeedConfig{{Marker: "@", Items: []string{"@someone"}}}
	ed := newEditor(t, cfg, "hi @so", boldOnly)
	bold := mustGet(t, ed, "bold")

	accept(t, ed, "@", "@someone", rangePtr(3, 6))

	// Default handling proceeds for the other feed.
	assert.Equal(t, "hi @someone ", ed.model.Document().Text())
	assert.Equal(t, "@someone", ed.model.Document().AttributesAt(3)[mention.AttributeKey])
	assert.Equal(t, false, bold.Value())
	assert.NotContains(t, ed.logBuf.String(), "SLASH_")
}

func TestArbitrator_ForeignMarkerSameID(t *testing.T) {
	cfg := config.Default()
	cfg.Mention.Feeds = []config.FeedConfig{{Marker: "@", Items: []string{"@bold"}}}
	ed := newEditor(t, cfg, "@bo", boldOnly)

	// Same id as a slash entry but accepted from another feed.
	err := ed.commands.Execute(mention.CommandName, mention.ExecuteData{
		Marker:  "@",
		Mention: feed.Item{ID: "/bold"},
		Range:   rangePtr(0, 3),
	})
	assert.ErrorIs(t, err, mention.ErrMentionID, "left to the default handler")
	assert.NotContains(t, ed.logBuf.String(), "SLASH_DISPATCH")
	assert.Equal(t, false, mustGet(t, ed, "bold").Value())
}

func TestArbitrator_UnknownEntryNotClaimed(t *testing.T) {
	m := model.New(10)
	require.NoError(t, m.ChangeWith(model.BatchTransparent, func(w *model.Writer) error {
		return w.InsertText(0, "Text /bolder", nil)
	}))
	commands := command.NewCollection()
	bold := command.NewAttributeCommand(m, "bold", "Bold", "B")
	require.NoError(t, commands.Add(bold))

	defaultRan := false
	host := command.NewBase(command.Spec{Name: mention.CommandName, Body: func(arg any) error {
		defaultRan = true
		return nil
	}})

	var logBuf bytes.Buffer
	arb := NewArbitrator("/", m, commands, log.New(&logBuf, "", 0), []CommandInfo{{ID: "bold", Title: "Bold"}})
	off := arb.Attach(host)
	defer off()

	for _, id := range []string{"/bolder", "/bol", "/Bold"} {
		require.NoError(t, host.Execute(mention.ExecuteData{Marker: "/", Mention: feed.Item{ID: id}, Range: rangePtr(5, 12)}))
	}

	assert.True(t, defaultRan, "event left for the default handler")
	assert.Equal(t, "Text /bolder", m.Document().Text())
	assert.Equal(t, false, bold.Value())
	assert.False(t, m.History().CanUndo())
	assert.Empty(t, logBuf.String())
}

func TestArbitrator_IgnoresForeignPayload(t *testing.T) {
	m := model.New(10)
	host := command.NewBase(command.Spec{Name: mention.CommandName})
	arb := NewArbitrator("/", m, command.NewCollection(), log.New(&bytes.Buffer{}, "", 0), []CommandInfo{{ID: "bold"}})
	off := arb.Attach(host)
	defer off()

	assert.NoError(t, host.Execute("/bold"))
	assert.NoError(t, host.Execute(nil))
	assert.False(t, m.History().CanUndo())
}

func TestArbitrator_SelectionFallback(t *testing.T) {
	ed := newEditor(t, nil, "Text /bold", boldOnly)
	require.NoError(t, ed.model.Change(func(w *model.Writer) error {
		return w.SetSelection(model.NewRange(5, 10))
	}))

	accept(t, ed, "/", "/bold", nil)

	assert.Equal(t, "Text ", ed.model.Document().Text())
	assert.Contains(t, ed.logBuf.String(), "range=[5,10)")
}

// Without a range the first selection range is removed even when it has
// nothing to do with the trigger text.
func TestArbitrator_SelectionFallbackRemovesUnrelatedSelection(t *testing.T) {
	ed := newEditor(t, nil, "keep this /bold", boldOnly)
	require.NoError(t, ed.model.Change(func(w *model.Writer) error {
		return w.SetSelection(model.NewRange(0, 5))
	}))

	accept(t, ed, "/", "/bold", nil)

	assert.Equal(t, "this /bold", ed.model.Document().Text())
	assert.Equal(t, true, mustGet(t, ed, "bold").Value())
}

func TestArbitrator_UnknownCommandAtDispatch(t *testing.T) {
	m := model.New(10)
	require.NoError(t, m.ChangeWith(model.BatchTransparent, func(w *model.Writer) error {
		return w.InsertText(0, "x /ghost", nil)
	}))
	host := mention.NewCommand(m)

	var logBuf bytes.Buffer
	arb := NewArbitrator("/", m, command.NewCollection(), log.New(&logBuf, "", 0), []CommandInfo{{ID: "ghost", Title: "Ghost"}})
	off := arb.Attach(host)
	defer off()

	require.NoError(t, host.Execute(mention.ExecuteData{Marker: "/", Mention: feed.Item{ID: "/ghost"}, Range: rangePtr(2, 8)}))

	assert.Equal(t, "x ", m.Document().Text(), "trigger text stays removed")
	assert.Contains(t, logBuf.String(), "SLASH_COMMAND_FAILED | command=ghost")
	assert.Contains(t, logBuf.String(), command.ErrUnknownCommand.Error())
	assert.Equal(t, Armed, arb.State())

	// The removal is still one undoable step.
	_, err := m.Undo()
	require.NoError(t, err)
	assert.Equal(t, "x /ghost", m.Document().Text())
}

func TestArbitrator_RangeOutOfBoundsReturnsError(t *testing.T) {
	ed := newEditor(t, nil, "Text /bold", boldOnly)
	bold := mustGet(t, ed, "bold")

	data := mention.ExecuteData{Marker: "/", Mention: feed.Item{ID: "/bold"}, Range: rangePtr(5, 99)}
	err := ed.commands.Execute(mention.CommandName, data)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrOutOfRange)

	assert.Equal(t, "Text /bold", ed.model.Document().Text())
	assert.Equal(t, false, bold.Value(), "command not run")
	assert.Contains(t, ed.logBuf.String(), "SLASH_COMMAND_FAILED | command=bold")

	arb, _ := ArbitratorOf(ed)
	assert.Equal(t, Armed, arb.State())
}

func TestArbitrator_DisabledCommandAtDispatch(t *testing.T) {
	ed := newEditor(t, nil, "Text /bold", boldOnly)
	bold := mustGet(t, ed, "bold").(*command.AttributeCommand)
	bold.ForceDisabled("readOnly")

	accept(t, ed, "/", "/bold", rangePtr(5, 10))

	assert.Equal(t, "Text ", ed.model.Document().Text())
	assert.Equal(t, false, bold.Value())
	assert.NotContains(t, ed.logBuf.String(), "SLASH_COMMAND_FAILED")
}

func TestArbitrator_HistoryCommandInsideChangeFails(t *testing.T) {
	cfg := config.Default()
	cfg.SlashCommand.Exclude = nil
	ed := newEditor(t, cfg, "abc", standard)

	// Give undo something to do so it is enabled.
	require.NoError(t, ed.commands.Execute("input", " /undo"))
	require.True(t, ed.model.History().CanUndo())

	accept(t, ed, "/", "/undo", rangePtr(4, 9))

	assert.Equal(t, "abc ", ed.model.Document().Text())
	assert.Contains(t, ed.logBuf.String(), "SLASH_COMMAND_FAILED | command=undo")
}

func TestArbitrator_RepeatedInvocationsAreIndependent(t *testing.T) {
	ed := newEditor(t, nil, "/bold", boldOnly)
	bold := mustGet(t, ed, "bold")

	accept(t, ed, "/", "/bold", rangePtr(0, 5))
	require.NoError(t, ed.commands.Execute("bold", false))
	require.NoError(t, ed.model.Change(func(w *model.Writer) error {
		return w.InsertText(0, "/bold", nil)
	}))
	require.NoError(t, ed.model.Change(func(w *model.Writer) error {
		return w.SetSelection(model.Collapsed(5))
	}))
	accept(t, ed, "/", "/bold", rangePtr(0, 5))

	assert.Equal(t, "", ed.model.Document().Text())
	assert.Equal(t, true, bold.Value())
	assert.Equal(t, 2, strings.Count(ed.logBuf.String(), "SLASH_DISPATCH"))
}
