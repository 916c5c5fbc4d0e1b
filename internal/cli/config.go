// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config command implementation.
//
// Command: config [subcommand]
// Short:   View and modify configuration
//
// Subcommands:
//   show (default)      Display the effective configuration
//   init                Write the default config file
//   path                Show the configuration file path
//   get <key>           Print one value
//   set <key> <value>   Set a value and save the file
//   keys                List every key
//
// Examples:
//   slashdoc config set slash_command.marker "!"
//   slashdoc config set slash_command.exclude undo,redo,sourceEditing
//   slashdoc config set mention.dropdown_limit 5
//   slashdoc --config team.toml config show --json
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jeranaias/slashdoc/internal/config"
)

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(args)
	case "init":
		return handleConfigInit(args)
	case "path":
		return handleConfigPath(args)
	case "get":
		return handleConfigGet(args)
	case "set":
		return handleConfigSet(args)
	case "keys":
		return handleConfigKeys(args)
	default:
		return &UsageError{
			Message: "unknown config subcommand: " + args.Subcommand,
			Usage:   "slashdoc config [show|init|path|get|set|keys]",
		}
	}
}

// configPath returns the file config commands read and write.
func configPath(args Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	return config.ConfigPathTOML()
}

// saveConfig writes cfg to the --config file in the format of its
// extension, or to the default TOML file.
func saveConfig(args Args, cfg *config.Config) error {
	path := args.ConfigPath
	if path == "" {
		return config.Save(cfg)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return config.SaveJSON(cfg, path)
	}
	return config.SaveTOML(cfg, path)
}

func handleConfigShow(args Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return NewCommandError("config", "show", err)
	}
	path, _ := configPath(args)

	if args.JSON {
		return NewJSONResponse("config show", map[string]any{
			"path":   path,
			"config": cfg,
		}).Print(stdout)
	}

	fmt.Fprintln(stdout, TitleStyle.Render("slashdoc configuration"))
	fmt.Fprintln(stdout, RenderSeparator())

	section := ""
	for _, key := range config.GetAllKeys() {
		head, _, _ := strings.Cut(key, ".")
		if head != section && strings.Contains(key, ".") {
			section = head
			fmt.Fprintln(stdout, SectionStyle.Render("["+section+"]"))
		}
		val, err := cfg.Get(key)
		if err != nil {
			continue
		}
		fmt.Fprintf(stdout, "  %s%s\n", RenderLabel(key+":"), ValueStyle.Render(formatValue(val)))
	}

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "Config file: %s\n", DimStyle.Render(path))
	return nil
}

func handleConfigInit(args Args) error {
	path, err := configPath(args)
	if err != nil {
		return NewCommandError("config", "init", err)
	}
	if _, err := os.Stat(path); err == nil {
		return NewCommandError("config", "init", fmt.Errorf("%s already exists", path))
	}
	if err := saveConfig(args, config.Default()); err != nil {
		return NewCommandError("config", "init", err)
	}
	fmt.Fprintf(stdout, "%s wrote %s\n", SuccessStyle.Render("[OK]"), path)
	return nil
}

func handleConfigPath(args Args) error {
	path, err := configPath(args)
	if err != nil {
		return NewCommandError("config", "path", err)
	}
	_, statErr := os.Stat(path)
	exists := !errors.Is(statErr, fs.ErrNotExist)

	if args.JSON {
		return NewJSONResponse("config path", map[string]any{
			"path":   path,
			"exists": exists,
		}).Print(stdout)
	}
	fmt.Fprintln(stdout, path)
	if !exists {
		fmt.Fprintln(stderr, DimStyle.Render("(not created yet, run: slashdoc config init)"))
	}
	return nil
}

func handleConfigGet(args Args) error {
	if args.ConfigKey == "" {
		return ErrMissingArgument("key", "slashdoc config get <key>")
	}
	cfg, err := loadConfig(args)
	if err != nil {
		return NewCommandError("config", "get", err)
	}
	val, err := cfg.Get(args.ConfigKey)
	if err != nil {
		return NewCommandError("config", "get", err)
	}
	if args.JSON {
		return NewJSONResponse("config get", map[string]any{
			"key":   args.ConfigKey,
			"value": val,
		}).Print(stdout)
	}
	fmt.Fprintln(stdout, formatValue(val))
	return nil
}

func handleConfigSet(args Args) error {
	if args.ConfigKey == "" || args.ConfigVal == "" {
		return ErrMissingArgument("key and value", "slashdoc config set <key> <value>")
	}

	cfg, err := loadConfig(args)
	if err != nil {
		return NewCommandError("config", "set", err)
	}
	if err := cfg.Set(args.ConfigKey, args.ConfigVal); err != nil {
		return NewCommandError("config", "set", err)
	}
	if err := cfg.Validate(); err != nil {
		return NewCommandError("config", "set", err)
	}
	if err := saveConfig(args, cfg); err != nil {
		return NewCommandError("config", "set", err)
	}

	val, _ := cfg.Get(args.ConfigKey)
	fmt.Fprintf(stdout, "%s %s = %s\n", SuccessStyle.Render("[OK]"), args.ConfigKey, formatValue(val))
	return nil
}

func handleConfigKeys(args Args) error {
	keys := config.GetAllKeys()
	if args.JSON {
		return NewJSONResponse("config keys", keys).Print(stdout)
	}
	for _, key := range keys {
		fmt.Fprintln(stdout, key)
	}
	return nil
}

// formatValue renders a config value the way config set accepts it.
func formatValue(v any) string {
	switch val := v.(type) {
	case []string:
		return strings.Join(val, ",")
	case map[string]string:
		pairs := make([]string, 0, len(val))
		for k, s := range val {
			pairs = append(pairs, k+"="+s)
		}
		sort.Strings(pairs)
		return strings.Join(pairs, ",")
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
