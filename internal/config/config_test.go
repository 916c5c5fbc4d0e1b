// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestConfig_Default tests that Default() returns a valid config with defaults.
func TestConfig_Default(t *testing.T) {
	cfg := Default()

	if cfg.SlashCommand.Marker != "/" {
		t.Errorf("Expected default slash marker '/', got '%s'", cfg.SlashCommand.Marker)
	}
	if cfg.Mention.DropdownLimit != 10 {
		t.Errorf("Expected dropdown limit 10, got %d", cfg.Mention.DropdownLimit)
	}
	if cfg.Pagination.PageWidth != "21cm" || cfg.Pagination.PageHeight != "29.7cm" {
		t.Errorf("Expected A4 page format, got %s x %s", cfg.Pagination.PageWidth, cfg.Pagination.PageHeight)
	}
	if cfg.Placeholder != "Type the content here!" {
		t.Errorf("Unexpected placeholder %q", cfg.Placeholder)
	}
	if len(cfg.Image.ResizeOptions) != 3 {
		t.Errorf("Expected 3 resize options, got %d", len(cfg.Image.ResizeOptions))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

// TestConfig_Validate tests configuration validation.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid default config", mutate: func(c *Config) {}},
		{
			name:    "invalid language",
			mutate:  func(c *Config) { c.Language = "not a language" },
			wantErr: "language",
		},
		{
			name:    "multi character slash marker",
			mutate:  func(c *Config) { c.SlashCommand.Marker = "//" },
			wantErr: "slash_command.marker",
		},
		{
			name: "slash marker clashes with feed",
			mutate: func(c *Config) {
				c.Mention.Feeds = []FeedConfig{{Marker: "/", Items: []string{"/x"}}}
			},
			wantErr: "already used",
		},
		{
			name: "duplicate feed markers",
			mutate: func(c *Config) {
				c.Mention.Feeds = []FeedConfig{{Marker: "@"}, {Marker: "@"}}
			},
			wantErr: "mention.feeds[1].marker",
		},
		{
			name: "feed item without marker",
			mutate: func(c *Config) {
				c.Mention.Feeds = []FeedConfig{{Marker: "@", Items: []string{"alice"}}}
			},
			wantErr: "mention.feeds[0].items",
		},
		{
			name: "unicode feed marker",
			mutate: func(c *Config) {
				c.Mention.Feeds = []FeedConfig{{Marker: "€", Items: []string{"€eur"}}}
			},
		},
		{
			name:    "bad page width",
			mutate:  func(c *Config) { c.Pagination.PageWidth = "wide" },
			wantErr: "pagination.page_width",
		},
		{
			name:    "bad resize percentage",
			mutate:  func(c *Config) { c.Image.ResizeOptions[1].Value = "150" },
			wantErr: "image.resize_options[1].value",
		},
		{
			name:    "negative undo steps",
			mutate:  func(c *Config) { c.Undo.Steps = -1 },
			wantErr: "undo.steps",
		},
		{
			name:    "invalid variant",
			mutate:  func(c *Config) { c.UI.Variant = "document" },
			wantErr: "ui.variant",
		},
		{
			name:    "invalid theme",
			mutate:  func(c *Config) { c.UI.Theme = "invalid" },
			wantErr: "ui.theme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
			if _, ok := err.(ValidateErrors); !ok {
				t.Errorf("Validate() error type = %T, want ValidateErrors", err)
			}
		})
	}
}

// TestConfig_GetSet tests Get and Set methods with dot notation.
func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	val, err := cfg.Get("slash_command.marker")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if val != "/" {
		t.Errorf("Get('slash_command.marker') = %v, want '/'", val)
	}

	if err := cfg.Set("mention.dropdown_limit", "5"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if cfg.Mention.DropdownLimit != 5 {
		t.Errorf("DropdownLimit after Set = %d, want 5", cfg.Mention.DropdownLimit)
	}

	if err := cfg.Set("slash_command.exclude", "undo, bold"); err != nil {
		t.Fatalf("Set() slice error = %v", err)
	}
	if got := cfg.SlashCommand.Exclude; len(got) != 2 || got[1] != "bold" {
		t.Errorf("Exclude after Set = %v", got)
	}

	if err := cfg.Set("ui.show_markdown", "no"); err != nil {
		t.Fatalf("Set() bool error = %v", err)
	}
	if cfg.UI.ShowMarkdown {
		t.Error("ShowMarkdown should be false")
	}

	if _, err := cfg.Get("invalid.key"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Get() with invalid key = %v, want ErrUnknownKey", err)
	}
	if _, err := cfg.Get("language.tag"); err == nil {
		t.Error("Get() through a non-struct field should return error")
	}
	if err := cfg.Set("undo.steps", "many"); err == nil {
		t.Error("Set() with non-integer should return error")
	}
}

func TestConfig_GetAllKeys(t *testing.T) {
	keys := GetAllKeys()
	want := []string{"language", "slash_command.marker", "pagination.page_margins.left", "ui.variant"}
	for _, w := range want {
		found := false
		for _, k := range keys {
			if k == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("GetAllKeys() missing %q", w)
		}
	}
	cfg := Default()
	for _, k := range keys {
		if _, err := cfg.Get(k); err != nil {
			t.Errorf("Get(%q) error = %v", k, err)
		}
	}
}

// TestConfig_Clone tests that Clone creates an independent copy.
func TestConfig_Clone(t *testing.T) {
	original := Default()
	original.SlashCommand.Titles = map[string]string{"bold": "Bold"}

	clone := original.Clone()
	clone.Version = "cloned"
	clone.Toolbar[0] = "changed"
	clone.SlashCommand.Exclude = append(clone.SlashCommand.Exclude[:0], "bold")
	clone.SlashCommand.Titles["bold"] = "Strong"

	if original.Version == "cloned" {
		t.Error("Clone should create an independent copy")
	}
	if original.Toolbar[0] == "changed" {
		t.Error("Clone should copy the toolbar slice")
	}
	if original.SlashCommand.Exclude[0] != "undo" {
		t.Error("Clone should copy the exclude slice")
	}
	if original.SlashCommand.Titles["bold"] != "Bold" {
		t.Error("Clone should copy the titles map")
	}
}

func TestConfig_ApplyEnvOverrides(t *testing.T) {
	t.Setenv("SLASHDOC_LANGUAGE", "de")
	t.Setenv("SLASHDOC_SLASH_MARKER", "!")
	t.Setenv("SLASHDOC_VARIANT", "inline")
	t.Setenv("SLASHDOC_UNDO_STEPS", "7")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Language != "de" || cfg.SlashCommand.Marker != "!" || cfg.UI.Variant != "inline" || cfg.Undo.Steps != 7 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestConfig_SaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"config.toml", "config.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			cfg := Default()
			cfg.SlashCommand.Marker = "!"
			cfg.Mention.Feeds = []FeedConfig{{Marker: "@", Items: []string{"@alice", "@bob"}}}

			var err error
			if strings.HasSuffix(name, ".json") {
				err = SaveJSON(cfg, path)
			} else {
				err = SaveTOML(cfg, path)
			}
			if err != nil {
				t.Fatalf("save: %v", err)
			}

			loaded, err := LoadFromPath(path)
			if err != nil {
				t.Fatalf("LoadFromPath: %v", err)
			}
			if loaded.SlashCommand.Marker != "!" {
				t.Errorf("marker = %q, want '!'", loaded.SlashCommand.Marker)
			}
			if len(loaded.Mention.Feeds) != 1 || len(loaded.Mention.Feeds[0].Items) != 2 {
				t.Errorf("feeds = %+v", loaded.Mention.Feeds)
			}
		})
	}
}

func TestConfig_LoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("language = \"fr\"\n[slash_command]\nmarker = \"\\\\\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Language != "fr" {
		t.Errorf("language = %q", cfg.Language)
	}
	if cfg.SlashCommand.Marker != "\\" {
		t.Errorf("marker = %q", cfg.SlashCommand.Marker)
	}
	if cfg.Mention.DropdownLimit != 10 || cfg.UI.Variant != "classic" {
		t.Errorf("defaults not filled: %+v", cfg)
	}
	if len(cfg.SlashCommand.Exclude) != 2 {
		t.Errorf("exclude = %v", cfg.SlashCommand.Exclude)
	}
	if cfg.Undo.Steps != 100 {
		t.Errorf("undo steps = %d, want default 100", cfg.Undo.Steps)
	}
}

// TestConfig_LoadUnlimitedUndo tests that an explicit zero survives loading.
func TestConfig_LoadUnlimitedUndo(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"config.toml": "[undo]\nsteps = 0\n",
		"config.json": `{"undo": {"steps": 0}}`,
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadFromPath(path)
			if err != nil {
				t.Fatalf("LoadFromPath: %v", err)
			}
			if cfg.Undo.Steps != 0 {
				t.Errorf("undo steps = %d, want 0 (unlimited)", cfg.Undo.Steps)
			}
		})
	}
}

// TestConfig_SaveToDefaultPath tests Save followed by Load through HOME.
func TestConfig_SaveToDefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.UI.Variant = "balloon"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	path, err := ConfigPathTOML()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.UI.Variant != "balloon" {
		t.Errorf("variant = %q, want balloon", loaded.UI.Variant)
	}
}

func TestConfig_LoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\nvariant = \"document\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Error("expected validation error")
	}
}
