// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package editorview is the interactive terminal view of a slashdoc editor.
//
// Typing a feed marker opens the suggestion dropdown. Up and Down move the
// highlight, Enter or Tab accepts, Esc hides the dropdown until the next
// session. Accepting a slash entry runs the command in place of the typed
// text.
package editorview
