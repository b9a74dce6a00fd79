package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPostText is the sample post shown on first start.
const DefaultPostText = "The DNA of a great company culture is built on these key strands:\n\n" +
	"- Trust & Transparency\n" +
	"- Empowerment & Autonomy\n" +
	"- Continuous Learning & Growth\n\n" +
	"What's in your company's DNA?"

// Config is the top-level configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Emoji   EmojiConfig   `toml:"emoji"`
	Keys    KeysConfig    `toml:"keys"`
	Preview PreviewConfig `toml:"preview"`
	Log     LogConfig     `toml:"log"`
}

type EditorConfig struct {
	InitialText     string `toml:"initial_text"`
	ShowLineNumbers bool   `toml:"show_line_numbers"`
	// HistoryLimit caps undo depth. Negative disables undo.
	HistoryLimit int `toml:"history_limit"`
	TabWidth     int `toml:"tab_width"`
}

type EmojiConfig struct {
	Palette []string `toml:"palette"`
}

// KeysConfig holds bubbletea key strings ("ctrl+b", "alt+i", ...) per action.
// Each action accepts several keys.
type KeysConfig struct {
	Bold       []string `toml:"bold"`
	Italic     []string `toml:"italic"`
	BoldItalic []string `toml:"bold_italic"`
	Clear      []string `toml:"clear"`
	Emoji      []string `toml:"emoji"`
	Copy       []string `toml:"copy"`
	Quit       []string `toml:"quit"`
}

type PreviewConfig struct {
	Author         string `toml:"author"`
	Headline       string `toml:"headline"`
	ShowDigitsHint bool   `toml:"show_digits_hint"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			InitialText:     DefaultPostText,
			ShowLineNumbers: false,
			HistoryLimit:    1000,
			TabWidth:        4,
		},
		Emoji: EmojiConfig{
			Palette: []string{"✨", "🚀", "👍", "💡", "🎯", "🤝", "💼", "📈", "✅", "👇", "🔥", "🙌"},
		},
		Keys: KeysConfig{
			Bold:       []string{"ctrl+b"},
			Italic:     []string{"ctrl+t"},
			BoldItalic: []string{"ctrl+g"},
			Clear:      []string{"ctrl+r"},
			Emoji:      []string{"ctrl+e"},
			Copy:       []string{"ctrl+s"},
			Quit:       []string{"ctrl+q", "esc"},
		},
		Preview: PreviewConfig{
			Author:         "John Doe • 1st",
			Headline:       "VP of Engineering at Acme Corp | Building the future",
			ShowDigitsHint: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the glyphpost configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".glyphpost"), nil
}

// Path returns the config file path, honoring GLYPHPOST_CONFIG.
func Path() (string, error) {
	if p := os.Getenv("GLYPHPOST_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DefaultLogFile returns the log path used when none is configured.
func DefaultLogFile() string {
	dir, err := ConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "glyphpost.log")
	}
	return filepath.Join(dir, "glyphpost.log")
}

// =============================================================================
// LOAD
// =============================================================================

// Load reads the config file if present and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return defaultsWithEnv()
	}
	cfg, err := LoadFromPath(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultsWithEnv()
	}
	return cfg, err
}

func defaultsWithEnv() (*Config, error) {
	cfg := Default()
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads and validates the TOML file at path. Keys missing from
// the file keep their default values.
func LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, ValidateErrors{{Field: strings.Join(keys, ", "), Message: "unknown key"}}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg as TOML, creating the directory if needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode TOML: %w", err)
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
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var validLevels = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		errs = append(errs, ValidationError{
			Field:   "editor.tab_width",
			Message: fmt.Sprintf("must be between 1 and 16, got %d", c.Editor.TabWidth),
		})
	}

	for i, e := range c.Emoji.Palette {
		if strings.TrimSpace(e) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("emoji.palette[%d]", i),
				Message: "must not be empty",
			})
		}
	}

	seen := map[string]string{}
	for _, b := range c.Keys.bindings() {
		for _, k := range b.keys {
			if k == "" {
				errs = append(errs, ValidationError{Field: "keys." + b.name, Message: "empty key"})
				continue
			}
			if prev, ok := seen[k]; ok && prev != b.name {
				errs = append(errs, ValidationError{
					Field:   "keys." + b.name,
					Message: fmt.Sprintf("key %q already bound to %s", k, prev),
				})
				continue
			}
			seen[k] = b.name
		}
	}

	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: trace, debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type namedKeys struct {
	name string
	keys []string
}

func (k KeysConfig) bindings() []namedKeys {
	return []namedKeys{
		{"bold", k.Bold},
		{"italic", k.Italic},
		{"bold_italic", k.BoldItalic},
		{"clear", k.Clear},
		{"emoji", k.Emoji},
		{"copy", k.Copy},
		{"quit", k.Quit},
	}
}

// SetDefaults fills zero-value fields from Default.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Editor.TabWidth == 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.HistoryLimit == 0 {
		c.Editor.HistoryLimit = defaults.Editor.HistoryLimit
	}
	if len(c.Emoji.Palette) == 0 {
		c.Emoji.Palette = defaults.Emoji.Palette
	}

	if len(c.Keys.Bold) == 0 {
		c.Keys.Bold = defaults.Keys.Bold
	}
	if len(c.Keys.Italic) == 0 {
		c.Keys.Italic = defaults.Keys.Italic
	}
	if len(c.Keys.BoldItalic) == 0 {
		c.Keys.BoldItalic = defaults.Keys.BoldItalic
	}
	if len(c.Keys.Clear) == 0 {
		c.Keys.Clear = defaults.Keys.Clear
	}
	if len(c.Keys.Emoji) == 0 {
		c.Keys.Emoji = defaults.Keys.Emoji
	}
	if len(c.Keys.Copy) == 0 {
		c.Keys.Copy = defaults.Keys.Copy
	}
	if len(c.Keys.Quit) == 0 {
		c.Keys.Quit = defaults.Keys.Quit
	}

	if c.Preview.Author == "" {
		c.Preview.Author = defaults.Preview.Author
	}
	if c.Preview.Headline == "" {
		c.Preview.Headline = defaults.Preview.Headline
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	if c.Log.File == "" {
		c.Log.File = DefaultLogFile()
	}
}

// ApplyEnvOverrides applies GLYPHPOST_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	if level := os.Getenv("GLYPHPOST_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if file := os.Getenv("GLYPHPOST_LOG_FILE"); file != "" {
		c.Log.File = file
	}
}
