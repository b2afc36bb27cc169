package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/engine"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

const (
	ScoringTypeNumber             = "Number"
	ScoringTypeNumberAndPotential = "NumberAndPotential"

	// OptimizationNone turns alpha-beta pruning off. Any other level keeps it on.
	OptimizationNone = "O0"
)

type Config struct {
	Bot  BotConfig  `mapstructure:"Bot"`
	Game GameConfig `mapstructure:"Game"`
}

type BotConfig struct {
	IsWhiteBot     bool   `mapstructure:"IsWhiteBot"`
	IsBlackBot     bool   `mapstructure:"IsBlackBot"`
	WhiteBotLevel  int    `mapstructure:"WhiteBotLevel"`
	BlackBotLevel  int    `mapstructure:"BlackBotLevel"`
	BotScoringType string `mapstructure:"BotScoringType"`
	Optimization   string `mapstructure:"Optimization"`
	NoRandom       bool   `mapstructure:"NoRandom"`
	BotDelayMS     int    `mapstructure:"BotDelayMS"`
}

type GameConfig struct {
	MaxNumTurns int `mapstructure:"MaxNumTurns"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("Bot.IsWhiteBot", false)
	v.SetDefault("Bot.IsBlackBot", true)
	v.SetDefault("Bot.WhiteBotLevel", int(engine.DefaultMaxDepth))
	v.SetDefault("Bot.BlackBotLevel", int(engine.DefaultMaxDepth))
	v.SetDefault("Bot.BotScoringType", ScoringTypeNumberAndPotential)
	v.SetDefault("Bot.Optimization", "O1")
	v.SetDefault("Bot.NoRandom", false)
	v.SetDefault("Bot.BotDelayMS", 0)
	v.SetDefault("Game.MaxNumTurns", 120)
}

// Load reads the settings file at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) Validate() error {
	for _, level := range []int{cfg.Bot.WhiteBotLevel, cfg.Bot.BlackBotLevel} {
		if level <= 0 || level > math.MaxUint8 {
			return fmt.Errorf("%w: bot level %d out of range", ErrInvalidConfig, level)
		}
	}
	if _, err := parseScoringType(cfg.Bot.BotScoringType); err != nil {
		return err
	}
	if cfg.Bot.BotDelayMS < 0 {
		return fmt.Errorf("%w: negative bot delay", ErrInvalidConfig)
	}
	if cfg.Game.MaxNumTurns <= 0 {
		return fmt.Errorf("%w: max number of turns must be positive", ErrInvalidConfig)
	}
	return nil
}

func parseScoringType(s string) (engine.ScoringMode, error) {
	switch s {
	case ScoringTypeNumber:
		return engine.ScoringModeMaterial, nil
	case ScoringTypeNumberAndPotential:
		return engine.ScoringModeMaterialPotential, nil
	default:
		return 0, fmt.Errorf("%w: unknown scoring type '%s'", ErrInvalidConfig, s)
	}
}

// IsBot reports whether s is played by the engine.
func (cfg *Config) IsBot(s board.Side) bool {
	if s == board.SideWhite {
		return cfg.Bot.IsWhiteBot
	}
	return cfg.Bot.IsBlackBot
}

// EngineConfig builds the engine settings of the bot playing s.
func (cfg *Config) EngineConfig(s board.Side, logger *zap.SugaredLogger) *engine.EngineConfig {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	level := cfg.Bot.WhiteBotLevel
	if s == board.SideBlack {
		level = cfg.Bot.BlackBotLevel
	}
	mode, _ := parseScoringType(cfg.Bot.BotScoringType)
	seed := engine.SeedPolicyTimeBased
	if cfg.Bot.NoRandom {
		seed = engine.SeedPolicyFixedZero
	}
	return &engine.EngineConfig{
		MaxDepth:    uint8(level),
		ScoringMode: mode,
		Pruning:     cfg.Bot.Optimization != OptimizationNone,
		SeedPolicy:  seed,
		Logger:      logger.With("side", s.String()),
	}
}
