package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/blockfall/tetris"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Rules   RulesConfig   `mapstructure:"rules"`
	Game    GameConfig    `mapstructure:"game"`
	Display DisplayConfig `mapstructure:"display"`
	Log     LogConfig     `mapstructure:"log"`
}

// RulesConfig mirrors tetris.Rules.
type RulesConfig struct {
	Width         int           `mapstructure:"width"`
	Height        int           `mapstructure:"height"`
	SpawnColumn   int           `mapstructure:"spawn_column"`
	SpawnRow      int           `mapstructure:"spawn_row"`
	StartLevel    int           `mapstructure:"start_level"`
	LinesPerLevel int           `mapstructure:"lines_per_level"`
	PointsPerLine int           `mapstructure:"points_per_line"`
	LineRewards   []int         `mapstructure:"line_rewards"`
	BaseTick      time.Duration `mapstructure:"base_tick"`
	TickStep      time.Duration `mapstructure:"tick_step"`
	MinTick       time.Duration `mapstructure:"min_tick"`
}

// GameConfig holds driver settings.
type GameConfig struct {
	Seed         uint64        `mapstructure:"seed"`
	Randomizer   string        `mapstructure:"randomizer"`
	SpawnDelay   time.Duration `mapstructure:"spawn_delay"`
	RestartDelay time.Duration `mapstructure:"restart_delay"`
	AutoRestart  bool          `mapstructure:"auto_restart"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	CellSize     int  `mapstructure:"cell_size"`
	DebugOverlay bool `mapstructure:"debug_overlay"`
}

// LogConfig selects the log level and an optional log file.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads configuration from file and env. Env var overrides use prefix BLOCKFALL_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BLOCKFALL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "blockfall"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BLOCKFALL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine, an explicit one must exist
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.TetrisRules().Validate(); err != nil {
		return Config{}, fmt.Errorf("config rules: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	r := tetris.DefaultRules()
	v.SetDefault("rules.width", r.Width)
	v.SetDefault("rules.height", r.Height)
	v.SetDefault("rules.spawn_column", r.SpawnColumn)
	v.SetDefault("rules.spawn_row", r.SpawnRow)
	v.SetDefault("rules.start_level", r.StartLevel)
	v.SetDefault("rules.lines_per_level", r.LinesPerLevel)
	v.SetDefault("rules.points_per_line", r.PointsPerLine)
	v.SetDefault("rules.line_rewards", r.LineRewards)
	v.SetDefault("rules.base_tick", r.BaseTick)
	v.SetDefault("rules.tick_step", r.TickStep)
	v.SetDefault("rules.min_tick", r.MinTick)

	v.SetDefault("game.seed", 0)
	v.SetDefault("game.randomizer", "bag")
	v.SetDefault("game.spawn_delay", 150*time.Millisecond)
	v.SetDefault("game.restart_delay", 2*time.Second)
	v.SetDefault("game.auto_restart", false)

	v.SetDefault("display.cell_size", 30)
	v.SetDefault("display.debug_overlay", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Default returns the configuration Load produces with no file and no env.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic(err)
	}
	return c
}

// Save writes cfg to path as TOML, creating the directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("rules.width", cfg.Rules.Width)
	v.Set("rules.height", cfg.Rules.Height)
	v.Set("rules.spawn_column", cfg.Rules.SpawnColumn)
	v.Set("rules.spawn_row", cfg.Rules.SpawnRow)
	v.Set("rules.start_level", cfg.Rules.StartLevel)
	v.Set("rules.lines_per_level", cfg.Rules.LinesPerLevel)
	v.Set("rules.points_per_line", cfg.Rules.PointsPerLine)
	v.Set("rules.line_rewards", cfg.Rules.LineRewards)
	v.Set("rules.base_tick", cfg.Rules.BaseTick.String())
	v.Set("rules.tick_step", cfg.Rules.TickStep.String())
	v.Set("rules.min_tick", cfg.Rules.MinTick.String())
	v.Set("game.seed", cfg.Game.Seed)
	v.Set("game.randomizer", cfg.Game.Randomizer)
	v.Set("game.spawn_delay", cfg.Game.SpawnDelay.String())
	v.Set("game.restart_delay", cfg.Game.RestartDelay.String())
	v.Set("game.auto_restart", cfg.Game.AutoRestart)
	v.Set("display.cell_size", cfg.Display.CellSize)
	v.Set("display.debug_overlay", cfg.Display.DebugOverlay)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// TetrisRules converts the rules section.
func (c Config) TetrisRules() tetris.Rules {
	r := c.Rules
	return tetris.Rules{
		Width:         r.Width,
		Height:        r.Height,
		SpawnColumn:   r.SpawnColumn,
		SpawnRow:      r.SpawnRow,
		StartLevel:    r.StartLevel,
		LinesPerLevel: r.LinesPerLevel,
		PointsPerLine: r.PointsPerLine,
		LineRewards:   r.LineRewards,
		BaseTick:      r.BaseTick,
		TickStep:      r.TickStep,
		MinTick:       r.MinTick,
	}
}

// Generator builds the piece source named by game.randomizer.
func (c Config) Generator() (tetris.Generator, error) {
	rng := tetris.NewRand(c.Game.Seed)
	switch c.Game.Randomizer {
	case "bag":
		return tetris.NewBagGenerator(rng), nil
	case "uniform":
		return tetris.NewRandomGenerator(rng), nil
	}
	return nil, fmt.Errorf("unknown randomizer %q", c.Game.Randomizer)
}

// NewLogger builds the logger described by the log section. When a file is
// configured the returned closer closes it; otherwise it is a no-op and
// output goes to fallback.
func (c Config) NewLogger(fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var out io.Writer = fallback
	var closer io.Closer = nopCloser{}
	if c.Log.File != "" {
		f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
