// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser splits subcommand arguments into flags and positionals.
//
//	--flag value    value flag
//	--flag=value    value flag
//	--flag          bool flag (also --flag=true / --flag=false)
//
// Names passed to NewArgParser are bool flags that never take the next
// argument, so "exec --watch doc.txt" keeps doc.txt positional.
type ArgParser struct {
	flags      map[string]string
	boolFlags  map[string]bool
	known      map[string]bool
	positional []string
}

// NewArgParser parses raw. boolNames lists the flags that take no value.
func NewArgParser(raw []string, boolNames ...string) *ArgParser {
	p := &ArgParser{
		flags:     make(map[string]string),
		boolFlags: make(map[string]bool),
		known:     make(map[string]bool, len(boolNames)),
	}
	for _, name := range boolNames {
		p.known[name] = true
	}

	for i := 0; i < len(raw); i++ {
		arg := raw[i]
		if !strings.HasPrefix(arg, "-") {
			p.positional = append(p.positional, arg)
			continue
		}

		name := strings.TrimLeft(arg, "-")
		if key, val, ok := strings.Cut(name, "="); ok {
			if val == "true" || val == "false" {
				p.boolFlags[key] = val == "true"
			} else {
				p.flags[key] = val
			}
			continue
		}

		if !p.known[name] && i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
			p.flags[name] = raw[i+1]
			i++
			continue
		}
		p.boolFlags[name] = true
	}
	return p
}

// Subcommand returns the first positional argument.
//
// Example: "config get ui.theme" -> "get"
func (p *ArgParser) Subcommand() string {
	return p.Positional(0)
}

// Flag returns the value of a value flag, or "" when it is absent.
func (p *ArgParser) Flag(name string) string {
	return p.flags[strings.TrimLeft(name, "-")]
}

// BoolFlag reports whether a bool flag was given.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[strings.TrimLeft(name, "-")]
}

// Positional returns the positional argument at index, or "" when out of
// range. Index 0 is the subcommand.
func (p *ArgParser) Positional(index int) string {
	if index < 0 || index >= len(p.positional) {
		return ""
	}
	return p.positional[index]
}

// JoinPositional joins the positional arguments from index on with spaces.
//
// Example: "config set placeholder Type here" -> "Type here" from index 2
func (p *ArgParser) JoinPositional(index int) string {
	if index < 0 || index >= len(p.positional) {
		return ""
	}
	return strings.Join(p.positional[index:], " ")
}

// =============================================================================
// VALUE HELPERS
// =============================================================================

// parsePositiveInt parses a flag value that must be a positive integer.
func parsePositiveInt(s, flagName string) (int, error) {
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", flagName, s)
	}
	if val <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", flagName, val)
	}
	return val, nil
}
