// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package plugin provides the two-phase plugin loader of the editor.
//
// A Plugin is a plain descriptor: a name, the names it requires and two
// functions. The loader orders plugins so that every dependency comes first,
// then calls Configure on all of them, then Wire on all of them. Configure is
// where a plugin registers commands and feeds; Wire is where it attaches
// listeners to what other plugins registered.
//
// # Usage
//
//	plugins := plugin.NewCollection()
//	err := plugins.Load(ed, []*plugin.Plugin{mention.Plugin(), slashcmd.UIPlugin()})
package plugin
