package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/conquest/internal/game/cards"
)

// Config holds all configuration for the application
type Config struct {
	Rules       RulesConfig       `mapstructure:"rules"`
	AI          AIConfig          `mapstructure:"ai"`
	FogOfWar    FogOfWarConfig    `mapstructure:"fog_of_war"`
	Match       MatchConfig       `mapstructure:"match"`
	Sim         SimConfig         `mapstructure:"sim"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// RulesConfig holds the game mechanics constants
type RulesConfig struct {
	MinReinforcements           int            `mapstructure:"min_reinforcements"`
	TerritoriesPerReinforcement int            `mapstructure:"territories_per_reinforcement"`
	CapitalBonus                int            `mapstructure:"capital_bonus"`
	TurnsToEntrench             int            `mapstructure:"turns_to_entrench"`
	EntrenchmentDefenseBonus    int            `mapstructure:"entrenchment_defense_bonus"`
	DecisiveDefenderBonus       int            `mapstructure:"decisive_defender_bonus"`
	StartingHandSize            int            `mapstructure:"starting_hand_size"`
	StartingArmies              map[string]int `mapstructure:"starting_armies"`
	HandBonuses                 cards.Bonuses  `mapstructure:"hand_bonuses"`
}

// StartingArmiesFor returns the initial troop budget per player for a player count.
func (r RulesConfig) StartingArmiesFor(players int) int {
	return r.StartingArmies[strconv.Itoa(players)]
}

// AIConfig holds computer opponent tunables
type AIConfig struct {
	MaxAttacksPerTurn  int              `mapstructure:"max_attacks_per_turn"`
	EasyContinueChance float64          `mapstructure:"easy_continue_chance"`
	AttackGate         AttackGateConfig `mapstructure:"attack_gate"`
	Surrender          SurrenderConfig  `mapstructure:"surrender"`
}

// AttackGateConfig is the probability that an AI of each difficulty attacks at all
type AttackGateConfig struct {
	Easy   float64 `mapstructure:"easy"`
	Medium float64 `mapstructure:"medium"`
	Hard   float64 `mapstructure:"hard"`
}

// SurrenderConfig holds the territory shares that trigger an AI surrender
type SurrenderConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	StrongestShare float64 `mapstructure:"strongest_share"`
	OwnShare       float64 `mapstructure:"own_share"`
}

// FogOfWarConfig holds fog of war settings
type FogOfWarConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// MatchConfig holds match registry limits
type MatchConfig struct {
	MaxMatches             int `mapstructure:"max_matches"`
	IdleTimeoutSeconds     int `mapstructure:"idle_timeout_seconds"`
	CleanupIntervalSeconds int `mapstructure:"cleanup_interval_seconds"`
}

// SimConfig holds settings of the headless simulator
type SimConfig struct {
	Players    int    `mapstructure:"players"`
	Difficulty string `mapstructure:"difficulty"`
	Seed       int64  `mapstructure:"seed"`
	MaxSteps   int    `mapstructure:"max_steps"`
	Matches    int    `mapstructure:"matches"`
	LogLevel   string `mapstructure:"log_level"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseLogging  bool `mapstructure:"verbose_logging"`
	LogEventDetails bool `mapstructure:"log_event_details"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Rules defaults
	v.SetDefault("rules.min_reinforcements", 3)
	v.SetDefault("rules.territories_per_reinforcement", 3)
	v.SetDefault("rules.capital_bonus", 2)
	v.SetDefault("rules.turns_to_entrench", 2)
	v.SetDefault("rules.entrenchment_defense_bonus", 1)
	v.SetDefault("rules.decisive_defender_bonus", 5)
	v.SetDefault("rules.starting_hand_size", 5)
	v.SetDefault("rules.starting_armies", map[string]int{"2": 40, "3": 35, "4": 30, "5": 25, "6": 20})

	bonuses := cards.DefaultBonuses()
	v.SetDefault("rules.hand_bonuses.pair", bonuses.Pair)
	v.SetDefault("rules.hand_bonuses.flush", bonuses.Flush)
	v.SetDefault("rules.hand_bonuses.straight", bonuses.Straight)
	v.SetDefault("rules.hand_bonuses.three_of_a_kind", bonuses.ThreeOfAKind)
	v.SetDefault("rules.hand_bonuses.straight_flush", bonuses.StraightFlush)

	// AI defaults
	v.SetDefault("ai.max_attacks_per_turn", 30)
	v.SetDefault("ai.easy_continue_chance", 0.8)
	v.SetDefault("ai.attack_gate.easy", 0.5)
	v.SetDefault("ai.attack_gate.medium", 0.8)
	v.SetDefault("ai.attack_gate.hard", 1.0)
	v.SetDefault("ai.surrender.enabled", true)
	v.SetDefault("ai.surrender.strongest_share", 0.65)
	v.SetDefault("ai.surrender.own_share", 0.20)

	// Fog of war defaults
	v.SetDefault("fog_of_war.enabled", true)

	// Match registry defaults
	v.SetDefault("match.max_matches", 100)
	v.SetDefault("match.idle_timeout_seconds", 1800)
	v.SetDefault("match.cleanup_interval_seconds", 60)

	// Simulator defaults
	v.SetDefault("sim.players", 4)
	v.SetDefault("sim.difficulty", "Normal")
	v.SetDefault("sim.seed", 0)
	v.SetDefault("sim.max_steps", 20000)
	v.SetDefault("sim.matches", 1)
	v.SetDefault("sim.log_level", "info")

	// Development defaults
	v.SetDefault("development.verbose_logging", false)
	v.SetDefault("development.log_event_details", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/conquest")
	}

	v.SetEnvPrefix("CONQUEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing explicit file falls back to defaults; for the default
		// search paths only ConfigFileNotFoundError is ignored.
		if configPath == "" {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Defaults returns a freshly decoded config holding only the default values.
// It does not touch the global instance.
func Defaults() *Config {
	dv := viper.New()
	setViperDefaults(dv)
	c := &Config{}
	if err := dv.Unmarshal(c); err != nil {
		panic("failed to decode default config: " + err.Error())
	}
	return c
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig loads environment-specific config overlay
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}

	return nil
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	_ = v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// GetFloat64 gets a float64 value from config
func GetFloat64(key string) float64 {
	return v.GetFloat64(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. Invalid edits are
// reported through onError and the previous values are kept.
func WatchConfig(onChange func(*Config), onError func(error)) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		if err := v.Unmarshal(next); err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		if err := Validate(next); err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		*cfg = *next
		if onChange != nil {
			onChange(cfg)
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	r := c.Rules
	if r.MinReinforcements < 0 {
		return fmt.Errorf("rules.min_reinforcements must be non-negative")
	}
	if r.TerritoriesPerReinforcement <= 0 {
		return fmt.Errorf("rules.territories_per_reinforcement must be positive")
	}
	if r.CapitalBonus < 0 {
		return fmt.Errorf("rules.capital_bonus must be non-negative")
	}
	if r.TurnsToEntrench < 1 {
		return fmt.Errorf("rules.turns_to_entrench must be at least 1")
	}
	if r.EntrenchmentDefenseBonus < 0 || r.DecisiveDefenderBonus < 0 {
		return fmt.Errorf("rules defense bonuses must be non-negative")
	}
	if r.StartingHandSize < 0 || r.StartingHandSize > 8 {
		return fmt.Errorf("rules.starting_hand_size must be between 0 and 8")
	}
	for players := 2; players <= 6; players++ {
		if r.StartingArmiesFor(players) <= 0 {
			return fmt.Errorf("rules.starting_armies must define a positive value for %d players", players)
		}
	}
	hb := r.HandBonuses
	for name, val := range map[string]int{
		"pair": hb.Pair, "flush": hb.Flush, "straight": hb.Straight,
		"three_of_a_kind": hb.ThreeOfAKind, "straight_flush": hb.StraightFlush,
	} {
		if val < 0 {
			return fmt.Errorf("rules.hand_bonuses.%s must be non-negative", name)
		}
	}

	a := c.AI
	if a.MaxAttacksPerTurn < 0 {
		return fmt.Errorf("ai.max_attacks_per_turn must be non-negative")
	}
	probabilities := map[string]float64{
		"ai.easy_continue_chance":      a.EasyContinueChance,
		"ai.attack_gate.easy":          a.AttackGate.Easy,
		"ai.attack_gate.medium":        a.AttackGate.Medium,
		"ai.attack_gate.hard":          a.AttackGate.Hard,
		"ai.surrender.strongest_share": a.Surrender.StrongestShare,
		"ai.surrender.own_share":       a.Surrender.OwnShare,
	}
	for key, p := range probabilities {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be between 0 and 1", key)
		}
	}

	if c.Match.MaxMatches < 0 {
		return fmt.Errorf("match.max_matches must be non-negative")
	}
	if c.Match.IdleTimeoutSeconds < 0 || c.Match.CleanupIntervalSeconds < 0 {
		return fmt.Errorf("match timeouts must be non-negative")
	}

	if c.Sim.Players < 2 || c.Sim.Players > 6 {
		return fmt.Errorf("sim.players must be between 2 and 6")
	}
	if c.Sim.MaxSteps <= 0 {
		return fmt.Errorf("sim.max_steps must be positive")
	}
	if c.Sim.Matches <= 0 {
		return fmt.Errorf("sim.matches must be positive")
	}

	return nil
}
