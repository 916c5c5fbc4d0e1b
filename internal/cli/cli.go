// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/jeranaias/slashdoc/internal/config"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Output streams of the handlers; tests swap them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdEdit Command = iota
	CmdCommands
	CmdExec
	CmdPreview
	CmdConfig
	CmdPlugins
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Variant    string
	ConfigPath string
	Theme      string
	Quiet      bool
	JSON       bool
	NoColor    bool

	// Command-specific
	File       string
	Markdown   bool
	Watch      bool
	Width      string // raw preview --width value
	Subcommand string
	ConfigKey  string
	ConfigVal  string
}

const usageText = `slashdoc - a terminal document editor with slash commands

Type "/" in the editor to open the command list. Picking an entry runs the
editor command in place of the typed text.

Usage:
  slashdoc [file]                     Edit a file (default)
  slashdoc edit [file]                Edit a file in the interactive editor
  slashdoc commands                   List the slash commands of the build
  slashdoc exec <script> [flags]      Replay an editor script
    --markdown                        Print the document as markdown
    --watch                           Re-run the script when it changes
  slashdoc preview <script> [flags]   Replay a script and render the markdown
    --width <n>                       Wrap width (default: terminal width)
  slashdoc config [subcommand]        Configuration
    show                              Show the effective configuration
    init                              Write the default config file
    path                              Show the config file path
    get <key>                         Print one value (dot notation)
    set <key> <value>                 Change one value and save
    keys                              List all keys
  slashdoc plugins                    List the plugins of the build
  slashdoc version                    Show version information
  slashdoc help                       Show this help

Global flags:
  --variant <name>                    Editor build: classic, inline, balloon, decoupled
  --config <path>                     Config file (TOML or JSON)
  --theme <dark|light>                Override ui.theme
  --json                              Machine-readable output
  --no-color                          Plain output without colors
  -q, --quiet                         Suppress the editor log

Script directives:
  set <key> <value>    type <text>    key <name>    cursor <pos>
  select <from> <to>   suggest        accept [id]   exec <command> [arg]
  undo    redo    print [text|markdown]    expect [text|markdown] <value>

Examples:
  slashdoc notes.md
  slashdoc --variant inline commands
  slashdoc exec demo.txt --markdown
  slashdoc config set slash_command.marker "!"
`

// =============================================================================
// PARSING
// =============================================================================

// Parse parses os.Args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the arguments after the program name.
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)
	if len(remaining) == 0 {
		return CmdEdit, parsedArgs
	}

	cmd := remaining[0]
	remaining = remaining[1:]

	switch cmd {
	case "edit", "e":
		if len(remaining) > 0 {
			parsedArgs.File = remaining[0]
		}
		return CmdEdit, parsedArgs

	case "commands", "cmds":
		return CmdCommands, parsedArgs

	case "exec", "run":
		p := NewArgParser(remaining, "markdown", "watch")
		parsedArgs.File = p.Positional(0)
		parsedArgs.Markdown = p.BoolFlag("markdown")
		parsedArgs.Watch = p.BoolFlag("watch")
		return CmdExec, parsedArgs

	case "preview":
		p := NewArgParser(remaining)
		parsedArgs.File = p.Positional(0)
		parsedArgs.Width = p.Flag("width")
		return CmdPreview, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "plugins":
		return CmdPlugins, parsedArgs

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// A bare argument is the file to edit
		parsedArgs.File = cmd
		return CmdEdit, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	value := func(i *int) string {
		if *i+1 < len(args) {
			*i++
			return args[*i]
		}
		return ""
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "--json":
			parsedArgs.JSON = true
		case "--no-color":
			parsedArgs.NoColor = true
		case "--variant":
			parsedArgs.Variant = value(&i)
		case "--config":
			parsedArgs.ConfigPath = value(&i)
		case "--theme":
			parsedArgs.Theme = value(&i)
		default:
			switch {
			case strings.HasPrefix(arg, "--variant="):
				parsedArgs.Variant = strings.TrimPrefix(arg, "--variant=")
			case strings.HasPrefix(arg, "--config="):
				parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
			case strings.HasPrefix(arg, "--theme="):
				parsedArgs.Theme = strings.TrimPrefix(arg, "--theme=")
			default:
				remaining = append(remaining, arg)
			}
		}
	}

	return remaining, parsedArgs
}

// parseConfigArgs parses config command specific arguments.
func parseConfigArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining)
	args.Subcommand = p.Subcommand()
	args.ConfigKey = p.Positional(1)
	args.ConfigVal = p.JoinPositional(2)
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// loadConfig loads the config file named by --config, or the default one,
// and applies the flag overrides.
func loadConfig(args Args) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if args.Theme != "" {
		cfg.UI.Theme = args.Theme
	}
	if args.Quiet {
		cfg.Log.Quiet = true
	}
	return cfg, cfg.Validate()
}

// variantOf returns the --variant flag or the configured variant.
func variantOf(args Args, cfg *config.Config) string {
	if args.Variant != "" {
		return args.Variant
	}
	return cfg.UI.Variant
}

// =============================================================================
// VERSION / HELP
// =============================================================================

// PrintUsage prints the usage text.
func PrintUsage() {
	fmt.Fprint(stdout, usageText)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Fprintf(stdout, "slashdoc %s (%s, built %s, %s)\n", Version, GitCommit, BuildDate, runtime.Version())
}

// HandleVersion handles the "version" command.
func HandleVersion(args Args) error {
	if args.JSON {
		return NewJSONResponse("version", VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}).Print(stdout)
	}
	PrintVersion()
	return nil
}

// HandleHelp handles the "help" command.
func HandleHelp() error {
	PrintUsage()
	return nil
}
