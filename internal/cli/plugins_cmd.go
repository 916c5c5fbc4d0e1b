// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/jeranaias/slashdoc/internal/build"
	"github.com/jeranaias/slashdoc/internal/editor"
)

// HandlePlugins lists the plugins of a build and whether this host
// implements them.
func HandlePlugins(args Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return NewCommandError("plugins", "", err)
	}
	v, err := build.ParseVariant(variantOf(args, cfg))
	if err != nil {
		return NewCommandError("plugins", "", err)
	}
	m := build.For(v, cfg)

	if args.JSON {
		data := PluginsData{Variant: string(m.Variant), Toolbar: m.Toolbar}
		for _, name := range m.Plugins {
			data.Plugins = append(data.Plugins, PluginEntry{Name: name, Builtin: editor.Builtin(name)})
		}
		return NewJSONResponse("plugins", data).Print(stdout)
	}

	fmt.Fprintln(stdout, TitleStyle.Render(fmt.Sprintf("%s build", m.Variant)))
	fmt.Fprintln(stdout, RenderSeparator())

	builtin := 0
	for _, name := range m.Plugins {
		status := "external"
		if editor.Builtin(name) {
			status = "builtin"
			builtin++
		}
		fmt.Fprintf(stdout, "  %s %s\n", RenderStatus(status), name)
	}

	fmt.Fprintln(stdout, SectionStyle.Render("[toolbar]"))
	for _, group := range m.ToolbarGroups() {
		fmt.Fprintf(stdout, "  %s\n", strings.Join(group, " "))
	}

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%d plugins, %d built in, %d external\n", len(m.Plugins), builtin, len(m.Plugins)-builtin)
	return nil
}
