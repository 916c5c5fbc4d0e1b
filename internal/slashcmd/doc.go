// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package slashcmd turns the editor's commands into a slash command menu on
// top of the mention subsystem.
//
// Two plugins cooperate:
//
//   - SlashCommandEditing enumerates the commands eligible for slash
//     invocation (CommandSource).
//   - SlashCommandUI registers a feed for the slash marker whose entries are
//     the marker followed by a command name, then attaches an Arbitrator to
//     the mention command's execute event at high priority.
//
// When a suggestion is accepted the Arbitrator decides whether it is one of
// its own entries. If so it removes the typed trigger text, runs the command
// inside the same model change (one undo step reverts both) and stops the
// event so the default mention insertion never runs. Any other accept passes
// through untouched.
//
// # Key Types
//
//   - CommandInfo: id, title and icon of one eligible command
//   - CommandSource: live enumeration honouring include, exclude and titles
//   - Arbitrator: claims slash entries and dispatches their commands
package slashcmd
