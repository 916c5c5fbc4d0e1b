// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package script replays line-oriented editor scripts.
//
// Each line is one directive followed by its arguments, split on whitespace
// with single or double quotes grouping words. Lines starting with # are
// comments.
//
//	set slash_command.marker /
//	type "Hello /bo"
//	suggest
//	accept /bold
//	type world
//	expect markdown "Hello **world**"
//	undo
//	print text
//
// Directives:
//
//	set <key> <value>        change the configuration (before any editing)
//	type <text>...           type text; arguments are joined by spaces
//	key <name>               backspace, delete, left, right, home, end, enter
//	cursor <pos>             move the caret
//	select <start> <end>     select a range
//	suggest                  print the active suggestions
//	accept [id]              accept a suggestion (the first when omitted)
//	exec <command> [bool]    run a command
//	undo, redo               walk the history
//	print [text|markdown]    print the document
//	expect [text|markdown] <value>  fail unless the document matches
package script
