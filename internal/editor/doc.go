// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package editor hosts a headless rich-text editor built from one of the
// "all-in" builds.
//
// New resolves the build manifest of a variant against the plugins this
// host implements, loads them and exposes a small facade (typing, caret
// movement, suggestions, undo) used by the CLI, the script runner and the
// terminal UI. Plugins of the manifest the host does not implement are
// reported as external.
//
// # Usage
//
//	ed, err := editor.New("classic", cfg)
//	if err != nil {
//	    return err
//	}
//	defer ed.Destroy()
//
//	ed.Type("Hello /bo")
//	_, items, _ := ed.Suggestions()
//	err = ed.Accept(items[0])
package editor
