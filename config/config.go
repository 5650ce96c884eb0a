package config

import (
	"adversary/engine"
	"adversary/experiments"
	"adversary/reversi"
	"adversary/searcher"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const EnvPrefix = "ADVERSARY"

type Config struct {
	Game       string     `mapstructure:"game"` // tictactoe or reversi
	LogLevel   string     `mapstructure:"log_level"`
	Search     Search     `mapstructure:"search"`
	Experiment Experiment `mapstructure:"experiment"`
}

type Search struct {
	Duration       time.Duration `mapstructure:"duration"`
	MaxDepth       int           `mapstructure:"max_depth"`
	Utility        string        `mapstructure:"utility"` // Reversi only
	Transpositions bool          `mapstructure:"transpositions"`
	Ordered        bool          `mapstructure:"ordered"`
	Seed           uint64        `mapstructure:"seed"` // 0 picks a random seed
}

type Experiment struct {
	Games    int    `mapstructure:"games"`
	Parallel int    `mapstructure:"parallel"`
	MaxTurns int    `mapstructure:"max_turns"`
	OutDir   string `mapstructure:"out_dir"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game", "reversi")
	v.SetDefault("log_level", "info")
	v.SetDefault("search.duration", searcher.DefaultDuration)
	v.SetDefault("search.max_depth", searcher.DefaultMaxDepth)
	v.SetDefault("search.utility", "hybrid")
	v.SetDefault("search.transpositions", true)
	v.SetDefault("search.ordered", false)
	v.SetDefault("search.seed", 0)
	v.SetDefault("experiment.games", experiments.NumGames)
	v.SetDefault("experiment.parallel", 4)
	v.SetDefault("experiment.max_turns", engine.MaxTurns)
	v.SetDefault("experiment.out_dir", "results")
}

// Load layers the defaults, the YAML file at path (skipped when empty) and
// ADVERSARY_* environment variables, e.g. ADVERSARY_SEARCH_MAX_DEPTH.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Game != "tictactoe" && c.Game != "reversi" {
		return fmt.Errorf("unknown game %q", c.Game)
	}
	if _, ok := reversi.Utilities[c.Search.Utility]; !ok {
		return fmt.Errorf("unknown utility %q", c.Search.Utility)
	}
	if c.Search.Duration <= 0 {
		return fmt.Errorf("search duration must be positive, got %s", c.Search.Duration)
	}
	if c.Search.MaxDepth < searcher.MinDepth {
		return fmt.Errorf("search max depth must be at least %d, got %d", searcher.MinDepth, c.Search.MaxDepth)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// SearchOptions turns the search section into searcher options. Utility and
// ordering are game specific and left to the caller.
func (c *Config) SearchOptions() []searcher.Option {
	options := []searcher.Option{
		searcher.WithDuration(c.Search.Duration),
		searcher.WithMaxDepth(c.Search.MaxDepth),
	}
	if !c.Search.Transpositions {
		options = append(options, searcher.WithoutTranspositions())
	}
	if c.Search.Seed != 0 {
		options = append(options, searcher.WithSeed(c.Search.Seed))
	}
	return options
}

func (c *Config) ExperimentSettings() experiments.Settings {
	return experiments.Settings{
		Games:    c.Experiment.Games,
		Duration: c.Search.Duration,
		MaxDepth: c.Search.MaxDepth,
		MaxTurns: c.Experiment.MaxTurns,
		Parallel: c.Experiment.Parallel,
		OutDir:   c.Experiment.OutDir,
	}
}
