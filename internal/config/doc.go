// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for slashdoc.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - MentionConfig: Mention dropdown limit and static feeds
//   - SlashCommandConfig: Slash marker, include/exclude lists and title overrides
//   - PaginationConfig: Page format used by the pagination plugin
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (SLASHDOC_*)
//   - ~/.slashdoc/config.toml
//   - ~/.slashdoc/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	marker := cfg.SlashCommand.Marker
//	limit := cfg.Mention.DropdownLimit
package config
