// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jeranaias/slashdoc/internal/build"
	"github.com/jeranaias/slashdoc/internal/command"
	"github.com/jeranaias/slashdoc/internal/config"
	"github.com/jeranaias/slashdoc/internal/feed"
	"github.com/jeranaias/slashdoc/internal/model"
	"github.com/jeranaias/slashdoc/internal/plugin"
)

// ErrDestroyed is returned by facade calls after Destroy.
var ErrDestroyed = errors.New("editor destroyed")

// =============================================================================
// OPTIONS
// =============================================================================

type options struct {
	logger     *log.Logger
	extra      []*plugin.Plugin
	noBuiltins bool
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger the editor and its plugins write to.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithPlugins loads extra plugins after the built-in ones.
func WithPlugins(plugins ...*plugin.Plugin) Option {
	return func(o *options) { o.extra = append(o.extra, plugins...) }
}

// WithoutBuiltins loads only the plugins given with WithPlugins.
func WithoutBuiltins() Option {
	return func(o *options) { o.noBuiltins = true }
}

// =============================================================================
// EDITOR
// =============================================================================

// Editor is a headless editor instance. It is not safe for concurrent use.
type Editor struct {
	cfg      *config.Config
	manifest build.Manifest
	model    *model.Model
	commands *command.Collection
	feeds    *feed.Registry
	plugins  *plugin.Collection
	logger   *log.Logger
	logFile  io.Closer
	external []string

	destroyed bool
}

// New creates an editor of the given variant. A nil cfg uses the defaults.
func New(variant string, cfg *config.Config, opts ...Option) (*Editor, error) {
	v, err := build.ParseVariant(variant)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	e := &Editor{
		cfg:      cfg,
		manifest: build.For(v, cfg),
		model:    model.New(cfg.Undo.Steps),
		commands: command.NewCollection(),
		feeds:    feed.NewRegistry(),
		plugins:  plugin.NewCollection(),
		logger:   o.logger,
	}
	if e.logger == nil {
		if e.logger, e.logFile, err = openLog(cfg.Log); err != nil {
			return nil, err
		}
	}

	var toLoad []*plugin.Plugin
	if !o.noBuiltins {
		for _, name := range e.manifest.Plugins {
			factory, ok := builtins[name]
			if !ok {
				e.external = append(e.external, name)
				continue
			}
			toLoad = append(toLoad, factory())
		}
	}
	toLoad = append(toLoad, o.extra...)

	e.logger.Printf("PLUGINS | variant=%s loaded=%d external=%d", v, len(toLoad), len(e.external))
	if len(e.external) > 0 {
		e.logger.Printf("PLUGIN_EXTERNAL | names=%s", strings.Join(e.external, ","))
	}

	if err := e.plugins.Load(e, toLoad); err != nil {
		e.closeLog()
		return nil, fmt.Errorf("load %s editor: %w", v, err)
	}
	return e, nil
}

// openLog opens the configured log file, or discards when there is none.
func openLog(lc config.LogConfig) (*log.Logger, io.Closer, error) {
	if lc.File == "" || lc.Quiet {
		return log.New(io.Discard, "", 0), nil, nil
	}
	f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "slashdoc ", log.LstdFlags), f, nil
}

func (e *Editor) closeLog() {
	if e.logFile != nil {
		e.logFile.Close()
		e.logFile = nil
	}
}

// Destroy unloads the plugins and closes the log file.
func (e *Editor) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.plugins.Destroy()
	e.closeLog()
}

// Config returns the editor configuration.
func (e *Editor) Config() *config.Config { return e.cfg }

// Model returns the document model.
func (e *Editor) Model() *model.Model { return e.model }

// Commands returns the command collection.
func (e *Editor) Commands() *command.Collection { return e.commands }

// Feeds returns the suggestion feed registry.
func (e *Editor) Feeds() *feed.Registry { return e.feeds }

// Plugins returns the loaded plugins.
func (e *Editor) Plugins() *plugin.Collection { return e.plugins }

// Logger returns the editor logger.
func (e *Editor) Logger() *log.Logger { return e.logger }

// Manifest returns the build manifest of the editor variant.
func (e *Editor) Manifest() build.Manifest { return e.manifest }

// External returns the manifest plugins this host does not implement.
func (e *Editor) External() []string {
	return append([]string(nil), e.external...)
}

var _ plugin.Editor = (*Editor)(nil)
