// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses the slashdoc command line and runs its commands.
//
// # Key Types
//
//   - Command: Enumeration of the CLI commands
//   - Args: Parsed global and command-specific flags
//   - ArgParser: Flag and positional parsing for subcommands
//   - ScriptWatcher: Re-runs a script when its file changes
//
// # Usage
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdExec:
//	    err = cli.HandleExec(args)
//	// ... other commands
//	}
//
// # Commands Overview
//
//   - edit: Interactive editor with the slash command dropdown
//   - commands: Slash commands of a build
//   - exec: Replay an editor script, optionally on every change
//   - preview: Replay a script and render its markdown
//   - config: Show, get and set configuration values
//   - plugins: Plugins and toolbar of a build
//
// Every handler supports --json for scripting. Errors map to exit codes
// through GetExitCode.
package cli
