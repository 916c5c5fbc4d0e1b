// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package plugin

import (
	"errors"
	"fmt"
	"log"

	"github.com/jeranaias/slashdoc/internal/command"
	"github.com/jeranaias/slashdoc/internal/config"
	"github.com/jeranaias/slashdoc/internal/feed"
	"github.com/jeranaias/slashdoc/internal/model"
)

var (
	// ErrMissingDependency is returned when a required plugin is not available.
	ErrMissingDependency = errors.New("missing plugin dependency")

	// ErrDependencyCycle is returned when plugins require each other.
	ErrDependencyCycle = errors.New("plugin dependency cycle")

	// ErrDuplicatePlugin is returned when two plugins share a name.
	ErrDuplicatePlugin = errors.New("duplicate plugin")

	// ErrAlreadyLoaded is returned when Load is called twice.
	ErrAlreadyLoaded = errors.New("plugins already loaded")
)

// Editor is the surface plugins see of the editor that loads them.
type Editor interface {
	Config() *config.Config
	Model() *model.Model
	Commands() *command.Collection
	Feeds() *feed.Registry
	Plugins() *Collection
	Logger() *log.Logger
}

// Plugin describes one editor plugin.
type Plugin struct {
	// Name is the unique plugin name (e.g. "SlashCommandUI")
	Name string

	// Requires lists plugins that must be configured before this one
	Requires []string

	// Configure registers what the plugin provides
	Configure func(ed Editor) error

	// Wire attaches to what other plugins provide; runs after every Configure
	Wire func(ed Editor) error

	// Destroy releases listeners; called in reverse load order
	Destroy func()

	// Instance is the plugin API other plugins may use
	Instance any
}

// =============================================================================
// COLLECTION
// =============================================================================

// Collection holds the loaded plugins of one editor.
type Collection struct {
	loaded []*Plugin
	byName map[string]*Plugin
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{byName: make(map[string]*Plugin)}
}

// Load orders plugins by their requirements and initializes them in two
// phases. The first error aborts loading.
func (c *Collection) Load(ed Editor, plugins []*Plugin) error {
	if len(c.loaded) > 0 {
		return ErrAlreadyLoaded
	}

	ordered, err := resolve(plugins)
	if err != nil {
		return err
	}

	for _, p := range ordered {
		c.byName[p.Name] = p
		c.loaded = append(c.loaded, p)
	}

	for _, p := range ordered {
		if p.Configure == nil {
			continue
		}
		if err := p.Configure(ed); err != nil {
			return fmt.Errorf("plugin %s: configure: %w", p.Name, err)
		}
	}

	for _, p := range ordered {
		if p.Wire == nil {
			continue
		}
		if err := p.Wire(ed); err != nil {
			return fmt.Errorf("plugin %s: wire: %w", p.Name, err)
		}
	}

	return nil
}

// Get returns a loaded plugin by name.
func (c *Collection) Get(name string) (*Plugin, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// Has reports whether a plugin is loaded.
func (c *Collection) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Names returns the loaded plugin names in initialization order.
func (c *Collection) Names() []string {
	names := make([]string, len(c.loaded))
	for i, p := range c.loaded {
		names[i] = p.Name
	}
	return names
}

// Destroy calls Destroy on every plugin in reverse order.
func (c *Collection) Destroy() {
	for i := len(c.loaded) - 1; i >= 0; i-- {
		if c.loaded[i].Destroy != nil {
			c.loaded[i].Destroy()
		}
	}
	c.loaded = nil
	c.byName = make(map[string]*Plugin)
}

// =============================================================================
// DEPENDENCY ORDER
// =============================================================================

// resolve returns plugins with every requirement placed before its
// dependents, keeping the given order otherwise.
func resolve(plugins []*Plugin) ([]*Plugin, error) {
	available := make(map[string]*Plugin, len(plugins))
	for _, p := range plugins {
		if _, ok := available[p.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlugin, p.Name)
		}
		available[p.Name] = p
	}

	const (
		visiting = 1
		done     = 2
	)
	state := make(map[string]int, len(plugins))
	var ordered []*Plugin

	var visit func(p *Plugin, path []string) error
	visit = func(p *Plugin, path []string) error {
		switch state[p.Name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: %v", ErrDependencyCycle, append(path, p.Name))
		}
		state[p.Name] = visiting
		for _, name := range p.Requires {
			dep, ok := available[name]
			if !ok {
				return fmt.Errorf("%w: %s requires %s", ErrMissingDependency, p.Name, name)
			}
			if err := visit(dep, append(path, p.Name)); err != nil {
				return err
			}
		}
		state[p.Name] = done
		ordered = append(ordered, p)
		return nil
	}

	for _, p := range plugins {
		if err := visit(p, nil); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}
