// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package command provides editor commands and the command collection.
//
// Every command decorates its Execute with an "execute" event. A guard
// listener at high priority stops the event while the command is disabled,
// and the command body runs as the default listener at normal priority. Other
// plugins may listen at high priority to intercept an execution and call
// Info.Stop so the body never runs.
//
// # Key Types
//
//   - Command: interface implemented by every command
//   - Base: the decorated execute shared by all built-in commands
//   - Collection: commands by name, in registration order
//
// # Built-in Commands
//
//   - AttributeCommand: bold, italic, underline, strikethrough, code, ...
//   - InsertCommand: horizontalLine, pageBreak
//   - RemoveFormatCommand: removeFormat
//   - UndoCommand / RedoCommand: undo, redo
//   - InputCommand / DeleteCommand: typing and deleting text
package command
