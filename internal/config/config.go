// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for slashdoc.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.slashdoc/config.toml
//   - ~/.slashdoc/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/jeranaias/slashdoc/internal/util"
)

// ErrUnknownKey is returned by Get and Set for keys with no config field.
var ErrUnknownKey = errors.New("unknown config key")

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete editor configuration.
type Config struct {
	// General settings
	Version     string `toml:"version" json:"version"`
	Language    string `toml:"language" json:"language"`
	Placeholder string `toml:"placeholder" json:"placeholder"`

	// Toolbar lists toolbar items; "|" separates groups
	Toolbar []string `toml:"toolbar" json:"toolbar"`

	Table      TableConfig      `toml:"table" json:"table"`
	Image      ImageConfig      `toml:"image" json:"image"`
	Comments   CommentsConfig   `toml:"comments" json:"comments"`
	Pagination PaginationConfig `toml:"pagination" json:"pagination"`

	// Mention feeds and the slash command feed layered on top of them
	Mention      MentionConfig      `toml:"mention" json:"mention"`
	SlashCommand SlashCommandConfig `toml:"slash_command" json:"slash_command"`

	Undo UndoConfig `toml:"undo" json:"undo"`
	Log  LogConfig  `toml:"log" json:"log"`
	UI   UIConfig   `toml:"ui" json:"ui"`
}

// TableConfig contains table plugin configuration.
type TableConfig struct {
	// ContentToolbar lists the items of the balloon shown inside tables
	ContentToolbar []string `toml:"content_toolbar" json:"content_toolbar"`
}

// ImageConfig contains image plugin configuration.
type ImageConfig struct {
	Styles        []string       `toml:"styles" json:"styles"`
	ResizeOptions []ResizeOption `toml:"resize_options" json:"resize_options"`
	Toolbar       []string       `toml:"toolbar" json:"toolbar"`
	// InsertIntegrations lists the ways an image can be inserted
	InsertIntegrations []string `toml:"insert_integrations" json:"insert_integrations"`
}

// ResizeOption is one entry of the image resize dropdown.
type ResizeOption struct {
	Name  string `toml:"name" json:"name"`
	Label string `toml:"label" json:"label"`
	// Value is the width in percent; empty means the original size
	Value string `toml:"value" json:"value"`
}

// CommentsConfig contains configuration of the comment editor.
type CommentsConfig struct {
	// ExtraPlugins are loaded into the editor used to write comments
	ExtraPlugins []string `toml:"extra_plugins" json:"extra_plugins"`
}

// PaginationConfig describes the page format.
type PaginationConfig struct {
	PageWidth   string        `toml:"page_width" json:"page_width"`
	PageHeight  string        `toml:"page_height" json:"page_height"`
	PageMargins MarginsConfig `toml:"page_margins" json:"page_margins"`
}

// MarginsConfig holds CSS lengths for the four page margins.
type MarginsConfig struct {
	Top    string `toml:"top" json:"top"`
	Bottom string `toml:"bottom" json:"bottom"`
	Right  string `toml:"right" json:"right"`
	Left   string `toml:"left" json:"left"`
}

// MentionConfig contains mention/autocomplete configuration.
type MentionConfig struct {
	// DropdownLimit caps the number of suggestions shown
	DropdownLimit int `toml:"dropdown_limit" json:"dropdown_limit"`
	// Feeds are static feeds loaded by the mention plugin
	Feeds []FeedConfig `toml:"feeds" json:"feeds"`
}

// FeedConfig is a static mention feed.
type FeedConfig struct {
	Marker string `toml:"marker" json:"marker"`
	// Items are item ids, each starting with the marker
	Items             []string `toml:"items" json:"items"`
	MinimumCharacters int      `toml:"minimum_characters" json:"minimum_characters"`
}

// SlashCommandConfig contains slash command configuration.
type SlashCommandConfig struct {
	// Marker starts a slash command session
	Marker string `toml:"marker" json:"marker"`
	// Include restricts the offered commands when not empty
	Include []string `toml:"include" json:"include"`
	// Exclude removes commands from the offer
	Exclude []string `toml:"exclude" json:"exclude"`
	// Titles overrides command labels by command name
	Titles map[string]string `toml:"titles" json:"titles"`
}

// UndoConfig contains undo history configuration.
type UndoConfig struct {
	// Steps is the number of undo steps kept (0 = unlimited)
	Steps int `toml:"steps" json:"steps"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// File receives the editor log; empty discards it
	File string `toml:"file" json:"file"`
	// Quiet silences logging even when File is set
	Quiet bool `toml:"quiet" json:"quiet"`
}

// UIConfig contains terminal UI configuration.
type UIConfig struct {
	// Variant is the editor build: classic, inline, balloon, decoupled
	Variant string `toml:"variant" json:"variant"`
	// Theme is "dark" or "light"
	Theme string `toml:"theme" json:"theme"`
	// ShowMarkdown shows the markdown source pane
	ShowMarkdown bool `toml:"show_markdown" json:"show_markdown"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Variants lists the editor builds.
var Variants = []string{"classic", "inline", "balloon", "decoupled"}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version:     "1.0.0",
		Language:    "en",
		Placeholder: "Type the content here!",

		Toolbar: []string{
			"pagination",
			"|",
			"trackChanges", "revisionHistory", "comment",
			"|",
			"heading",
			"|",
			"removeFormat", "bold", "italic", "strikethrough", "underline", "code", "subscript", "superscript", "link",
			"|",
			"highlight", "fontSize", "fontFamily", "fontColor", "fontBackgroundColor",
			"|",
			"bulletedList", "numberedList", "todoList",
			"|",
			"blockQuote", "uploadImage", "insertTable", "mediaEmbed", "codeBlock",
			"|",
			"htmlEmbed",
			"|",
			"alignment", "outdent", "indent",
			"|",
			"pageBreak", "horizontalLine", "specialCharacters",
			"|",
			"textPartLanguage",
			"|",
			"undo", "redo", "findAndReplace",
		},

		Table: TableConfig{
			ContentToolbar: []string{
				"tableColumn", "tableRow", "mergeTableCells", "tableProperties", "tableCellProperties", "toggleTableCaption",
			},
		},

		Image: ImageConfig{
			Styles: []string{"alignCenter", "alignLeft", "alignRight"},
			ResizeOptions: []ResizeOption{
				{Name: "resizeImage:original", Label: "Original size", Value: ""},
				{Name: "resizeImage:50", Label: "50%", Value: "50"},
				{Name: "resizeImage:75", Label: "75%", Value: "75"},
			},
			Toolbar: []string{
				"imageTextAlternative", "toggleImageCaption", "|",
				"imageStyle:inline", "imageStyle:wrapText", "imageStyle:breakText", "imageStyle:side", "|",
				"resizeImage",
			},
			InsertIntegrations: []string{"insertImageViaUrl"},
		},

		Comments: CommentsConfig{
			ExtraPlugins: []string{"Bold", "Italic", "Underline", "List"},
		},

		// A4
		Pagination: PaginationConfig{
			PageWidth:  "21cm",
			PageHeight: "29.7cm",
			PageMargins: MarginsConfig{
				Top:    "20mm",
				Bottom: "20mm",
				Right:  "12mm",
				Left:   "12mm",
			},
		},

		Mention: MentionConfig{
			DropdownLimit: 10,
		},

		SlashCommand: SlashCommandConfig{
			Marker: "/",
			// History commands cannot run inside the change that removes the
			// trigger text.
			Exclude: []string{"undo", "redo"},
		},

		Undo: UndoConfig{
			Steps: 100,
		},

		UI: UIConfig{
			Variant:      "classic",
			Theme:        "dark",
			ShowMarkdown: true,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the slashdoc configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".slashdoc"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	for _, candidate := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := candidate()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		return LoadFromPath(path)
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		fmt.Fprintf(os.Stderr, "Warning: unknown config keys in %s: %s\n", path, strings.Join(keys, ", "))
	}
	return fillDefaults(cfg, md.IsDefined("undo", "steps"))
}

// LoadJSON loads configuration from a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	var present struct {
		Undo struct {
			Steps *int `json:"steps"`
		} `json:"undo"`
	}
	_ = json.Unmarshal(data, &present)
	return fillDefaults(cfg, present.Undo.Steps != nil)
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		// Default to TOML
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing values with defaults. undoSet reports
// whether the file named undo.steps, where 0 means unlimited.
func fillDefaults(cfg *Config, undoSet bool) error {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.Language == "" {
		cfg.Language = defaults.Language
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = defaults.Placeholder
	}
	if cfg.Toolbar == nil {
		cfg.Toolbar = defaults.Toolbar
	}

	if cfg.Table.ContentToolbar == nil {
		cfg.Table.ContentToolbar = defaults.Table.ContentToolbar
	}

	if cfg.Image.Styles == nil {
		cfg.Image.Styles = defaults.Image.Styles
	}
	if cfg.Image.ResizeOptions == nil {
		cfg.Image.ResizeOptions = defaults.Image.ResizeOptions
	}
	if cfg.Image.Toolbar == nil {
		cfg.Image.Toolbar = defaults.Image.Toolbar
	}
	if cfg.Image.InsertIntegrations == nil {
		cfg.Image.InsertIntegrations = defaults.Image.InsertIntegrations
	}

	if cfg.Comments.ExtraPlugins == nil {
		cfg.Comments.ExtraPlugins = defaults.Comments.ExtraPlugins
	}

	if cfg.Pagination.PageWidth == "" {
		cfg.Pagination.PageWidth = defaults.Pagination.PageWidth
	}
	if cfg.Pagination.PageHeight == "" {
		cfg.Pagination.PageHeight = defaults.Pagination.PageHeight
	}
	margins := &cfg.Pagination.PageMargins
	if margins.Top == "" {
		margins.Top = defaults.Pagination.PageMargins.Top
	}
	if margins.Bottom == "" {
		margins.Bottom = defaults.Pagination.PageMargins.Bottom
	}
	if margins.Right == "" {
		margins.Right = defaults.Pagination.PageMargins.Right
	}
	if margins.Left == "" {
		margins.Left = defaults.Pagination.PageMargins.Left
	}

	if cfg.Mention.DropdownLimit == 0 {
		cfg.Mention.DropdownLimit = defaults.Mention.DropdownLimit
	}

	if cfg.SlashCommand.Marker == "" {
		cfg.SlashCommand.Marker = defaults.SlashCommand.Marker
	}
	if cfg.SlashCommand.Exclude == nil {
		cfg.SlashCommand.Exclude = defaults.SlashCommand.Exclude
	}

	if !undoSet && cfg.Undo.Steps == 0 {
		cfg.Undo.Steps = defaults.Undo.Steps
	}

	if cfg.UI.Variant == "" {
		cfg.UI.Variant = defaults.UI.Variant
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}

	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	var sb strings.Builder
	sb.WriteString("# slashdoc configuration file\n")
	sb.WriteString("# Generated by slashdoc - edit with care\n")
	sb.WriteString("\n")

	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	if err := util.AtomicWriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// cssLength matches the lengths accepted for page size and margins.
var cssLength = regexp.MustCompile(`^\d+(\.\d+)?(mm|cm|in|pt|px)$`)

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if _, err := language.Parse(c.Language); err != nil {
		errs = append(errs, ValidationError{
			Field:   "language",
			Message: fmt.Sprintf("invalid language tag '%s': %v", c.Language, err),
		})
	}

	// Page format
	lengths := []struct {
		field string
		value string
	}{
		{"pagination.page_width", c.Pagination.PageWidth},
		{"pagination.page_height", c.Pagination.PageHeight},
		{"pagination.page_margins.top", c.Pagination.PageMargins.Top},
		{"pagination.page_margins.bottom", c.Pagination.PageMargins.Bottom},
		{"pagination.page_margins.right", c.Pagination.PageMargins.Right},
		{"pagination.page_margins.left", c.Pagination.PageMargins.Left},
	}
	for _, l := range lengths {
		if !cssLength.MatchString(l.value) {
			errs = append(errs, ValidationError{
				Field:   l.field,
				Message: fmt.Sprintf("invalid length '%s', expected a number with mm, cm, in, pt or px", l.value),
			})
		}
	}

	for i, opt := range c.Image.ResizeOptions {
		if opt.Value == "" {
			continue
		}
		if n, err := strconv.Atoi(opt.Value); err != nil || n <= 0 || n > 100 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("image.resize_options[%d].value", i),
				Message: fmt.Sprintf("invalid percentage '%s', must be 1-100 or empty", opt.Value),
			})
		}
	}

	// Markers
	if c.Mention.DropdownLimit < 0 {
		errs = append(errs, ValidationError{
			Field:   "mention.dropdown_limit",
			Message: "must not be negative",
		})
	}

	markers := make(map[string]string)
	for i, f := range c.Mention.Feeds {
		field := fmt.Sprintf("mention.feeds[%d].marker", i)
		if utf8.RuneCountInString(f.Marker) != 1 {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("marker '%s' must be a single character", f.Marker)})
			continue
		}
		if prev, ok := markers[f.Marker]; ok {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("marker '%s' already used by %s", f.Marker, prev)})
			continue
		}
		markers[f.Marker] = field
		for _, item := range f.Items {
			if !strings.HasPrefix(item, f.Marker) {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("mention.feeds[%d].items", i),
					Message: fmt.Sprintf("item '%s' must start with marker '%s'", item, f.Marker),
				})
			}
		}
	}

	if utf8.RuneCountInString(c.SlashCommand.Marker) != 1 {
		errs = append(errs, ValidationError{
			Field:   "slash_command.marker",
			Message: fmt.Sprintf("marker '%s' must be a single character", c.SlashCommand.Marker),
		})
	} else if prev, ok := markers[c.SlashCommand.Marker]; ok {
		errs = append(errs, ValidationError{
			Field:   "slash_command.marker",
			Message: fmt.Sprintf("marker '%s' already used by %s", c.SlashCommand.Marker, prev),
		})
	}

	if c.Undo.Steps < 0 {
		errs = append(errs, ValidationError{
			Field:   "undo.steps",
			Message: "must not be negative",
		})
	}

	validVariant := false
	for _, v := range Variants {
		if strings.EqualFold(c.UI.Variant, v) {
			validVariant = true
			break
		}
	}
	if !validVariant {
		errs = append(errs, ValidationError{
			Field:   "ui.variant",
			Message: fmt.Sprintf("invalid variant '%s', must be one of: %s", c.UI.Variant, strings.Join(Variants, ", ")),
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light", c.UI.Theme),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides.
//
// Supported environment variables:
//   - SLASHDOC_LANGUAGE: overrides language
//   - SLASHDOC_SLASH_MARKER: overrides slash_command.marker
//   - SLASHDOC_VARIANT: overrides ui.variant
//   - SLASHDOC_LOG_FILE: overrides log.file
//   - SLASHDOC_UNDO_STEPS: overrides undo.steps
func (c *Config) ApplyEnvOverrides() {
	if lang := os.Getenv("SLASHDOC_LANGUAGE"); lang != "" {
		c.Language = lang
	}

	if marker := os.Getenv("SLASHDOC_SLASH_MARKER"); marker != "" {
		c.SlashCommand.Marker = marker
	}

	if variant := os.Getenv("SLASHDOC_VARIANT"); variant != "" {
		c.UI.Variant = variant
	}

	if logFile := os.Getenv("SLASHDOC_LOG_FILE"); logFile != "" {
		c.Log.File = logFile
	}

	if steps := os.Getenv("SLASHDOC_UNDO_STEPS"); steps != "" {
		if n, err := strconv.Atoi(steps); err == nil {
			c.Undo.Steps = n
		}
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "slash_command.marker").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "slash_command.marker").
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, fmt.Errorf("%w: empty key", ErrUnknownKey)
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	// Handle string input with type conversion
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			boolVal := strVal == "1" || strings.ToLower(strVal) == "true" || strings.ToLower(strVal) == "yes"
			field.SetBool(boolVal)
			return nil
		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				var items []string
				for _, item := range strings.Split(strVal, ",") {
					if item = strings.TrimSpace(item); item != "" {
						items = append(items, item)
					}
				}
				field.Set(reflect.ValueOf(items))
				return nil
			}
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all scalar and list configuration keys in dot notation.
func GetAllKeys() []string {
	var keys []string
	collectKeys(reflect.TypeOf(Config{}), "", &keys)
	return keys
}

func collectKeys(t reflect.Type, prefix string, keys *[]string) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.Split(f.Tag.Get("toml"), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if f.Type.Kind() == reflect.Struct {
			collectKeys(f.Type, key, keys)
			continue
		}
		*keys = append(*keys, key)
	}
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c

	clone.Toolbar = cloneStrings(c.Toolbar)
	clone.Table.ContentToolbar = cloneStrings(c.Table.ContentToolbar)
	clone.Image.Styles = cloneStrings(c.Image.Styles)
	clone.Image.Toolbar = cloneStrings(c.Image.Toolbar)
	clone.Image.InsertIntegrations = cloneStrings(c.Image.InsertIntegrations)
	if c.Image.ResizeOptions != nil {
		clone.Image.ResizeOptions = append([]ResizeOption(nil), c.Image.ResizeOptions...)
	}
	clone.Comments.ExtraPlugins = cloneStrings(c.Comments.ExtraPlugins)

	if c.Mention.Feeds != nil {
		clone.Mention.Feeds = make([]FeedConfig, len(c.Mention.Feeds))
		for i, f := range c.Mention.Feeds {
			f.Items = cloneStrings(f.Items)
			clone.Mention.Feeds[i] = f
		}
	}

	clone.SlashCommand.Include = cloneStrings(c.SlashCommand.Include)
	clone.SlashCommand.Exclude = cloneStrings(c.SlashCommand.Exclude)
	if c.SlashCommand.Titles != nil {
		clone.SlashCommand.Titles = make(map[string]string, len(c.SlashCommand.Titles))
		for k, v := range c.SlashCommand.Titles {
			clone.SlashCommand.Titles[k] = v
		}
	}

	return &clone
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

// String returns a string representation of the config for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
