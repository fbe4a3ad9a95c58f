package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Deck   DeckConfig
	Layout LayoutConfig
	UI     UIConfig
	Log    LogConfig
}

// DeckConfig points at an optional card file. Empty means the built-in cards.
type DeckConfig struct {
	Path string
}

// LayoutConfig holds sizes in logical pixels and terminal cells.
type LayoutConfig struct {
	BreakpointPx int     `mapstructure:"breakpoint_px"`
	CellPx       int     `mapstructure:"cell_px"`
	StepPx       int     `mapstructure:"step_px"`
	OverlapPx    int     `mapstructure:"overlap_px"`
	CardWidth    int     `mapstructure:"card_width"`
	CardHeight   int     `mapstructure:"card_height"`
	RotationStep float64 `mapstructure:"rotation_step"`
}

// UIConfig holds presentation timing.
type UIConfig struct {
	FadeIn     time.Duration `mapstructure:"fade_in"`
	FlipFrames int           `mapstructure:"flip_frames"`
}

// LogConfig controls where log output goes. Empty path discards it.
type LogConfig struct {
	Path string
}

// Cells converts logical pixels to terminal columns, never returning less
// than one column for a positive length.
func (l LayoutConfig) Cells(px int) int {
	cell := max(1, l.CellPx)
	n := (px + cell/2) / cell
	if px > 0 && n == 0 {
		return 1
	}
	return n
}

// Pixels converts terminal columns to logical pixels.
func (l LayoutConfig) Pixels(cols int) int {
	return cols * max(1, l.CellPx)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deck.path", "")
	v.SetDefault("layout.breakpoint_px", 768)
	v.SetDefault("layout.cell_px", 8)
	v.SetDefault("layout.step_px", 100)
	v.SetDefault("layout.overlap_px", 48)
	v.SetDefault("layout.card_width", 22)
	v.SetDefault("layout.card_height", 9)
	v.SetDefault("layout.rotation_step", 3.0)
	v.SetDefault("ui.fade_in", 120*time.Millisecond)
	v.SetDefault("ui.flip_frames", 6)
	v.SetDefault("log.path", "")
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	// Defaults always decode.
	_ = v.Unmarshal(&c)
	return c
}

// Load reads configuration from file and env. Env var overrides use prefix GREETCARDS_.
// An explicit path wins over GREETCARDS_CONFIG, which wins over the user config dir.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("GREETCARDS_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "greetcards"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GREETCARDS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case explicit:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		case !errors.As(err, &notFound):
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects sizes the layout cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Layout.BreakpointPx <= 0:
		return fmt.Errorf("layout.breakpoint_px must be positive, got %d", c.Layout.BreakpointPx)
	case c.Layout.CellPx <= 0:
		return fmt.Errorf("layout.cell_px must be positive, got %d", c.Layout.CellPx)
	case c.Layout.StepPx < 0:
		return fmt.Errorf("layout.step_px must not be negative, got %d", c.Layout.StepPx)
	case c.Layout.CardWidth < 8:
		return fmt.Errorf("layout.card_width must be at least 8, got %d", c.Layout.CardWidth)
	case c.Layout.CardHeight < 5:
		return fmt.Errorf("layout.card_height must be at least 5, got %d", c.Layout.CardHeight)
	case c.UI.FlipFrames < 0:
		return fmt.Errorf("ui.flip_frames must not be negative, got %d", c.UI.FlipFrames)
	}
	return nil
}

// Save writes the provided config to path, creating the directory if needed.
// An empty path means the default location under ~/.config/greetcards.
func Save(cfg Config, path string) error {
	if path == "" {
		path = os.Getenv("GREETCARDS_CONFIG")
	}
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "greetcards", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("deck.path", cfg.Deck.Path)
	v.Set("layout.breakpoint_px", cfg.Layout.BreakpointPx)
	v.Set("layout.cell_px", cfg.Layout.CellPx)
	v.Set("layout.step_px", cfg.Layout.StepPx)
	v.Set("layout.overlap_px", cfg.Layout.OverlapPx)
	v.Set("layout.card_width", cfg.Layout.CardWidth)
	v.Set("layout.card_height", cfg.Layout.CardHeight)
	v.Set("layout.rotation_step", cfg.Layout.RotationStep)
	v.Set("ui.fade_in", cfg.UI.FadeIn.String())
	v.Set("ui.flip_frames", cfg.UI.FlipFrames)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
