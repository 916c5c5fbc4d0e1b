// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"fmt"
)

// Collection holds the commands of one editor.
type Collection struct {
	commands map[string]Command
	order    []string
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{commands: make(map[string]Command)}
}

// Add registers a command under its name.
func (c *Collection) Add(cmd Command) error {
	name := cmd.Name()
	if _, ok := c.commands[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}
	c.commands[name] = cmd
	c.order = append(c.order, name)
	return nil
}

// Get retrieves a command by name.
func (c *Collection) Get(name string) (Command, bool) {
	cmd, ok := c.commands[name]
	return cmd, ok
}

// Names returns the command names in registration order.
func (c *Collection) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// All returns the commands in registration order.
func (c *Collection) All() []Command {
	cmds := make([]Command, 0, len(c.order))
	for _, name := range c.order {
		cmds = append(cmds, c.commands[name])
	}
	return cmds
}

// Execute runs the named command. Executing a disabled command is a no-op.
func (c *Collection) Execute(name string, arg any) error {
	cmd, ok := c.commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return cmd.Execute(arg)
}
