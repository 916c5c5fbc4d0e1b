// slashdoc - A terminal document editor with slash commands.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"os"

	"github.com/jeranaias/slashdoc/internal/cli"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()
	if args.NoColor {
		cli.SetColorsEnabled(false)
	}

	var err error
	switch cmd {
	case cli.CmdEdit:
		err = cli.HandleEdit(args)
	case cli.CmdCommands:
		err = cli.HandleCommands(args)
	case cli.CmdExec:
		err = cli.HandleExec(args)
	case cli.CmdPreview:
		err = cli.HandlePreview(args)
	case cli.CmdConfig:
		err = cli.HandleConfig(args)
	case cli.CmdPlugins:
		err = cli.HandlePlugins(args)
	case cli.CmdVersion:
		err = cli.HandleVersion(args)
	case cli.CmdHelp:
		err = cli.HandleHelp()
	default:
		cli.PrintUsage()
		os.Exit(cli.ExitUsageError)
	}

	if err != nil {
		cli.DisplayError(os.Stderr, err, args.JSON)
		os.Exit(cli.GetExitCode(err))
	}
}
