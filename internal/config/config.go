package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game       GameConfig       `mapstructure:"game"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// GameConfig holds the pursuit game options
type GameConfig struct {
	GridSize              int     `mapstructure:"grid_size"`
	NumHunters            int     `mapstructure:"num_hunters"`
	NumRabbits            int     `mapstructure:"num_rabbits"`
	TimestepReward        float64 `mapstructure:"timestep_reward"`
	CaptureReward         float64 `mapstructure:"capture_reward"`
	RabbitPolicy          string  `mapstructure:"rabbit_policy"`
	RemoveHunterOnCapture bool    `mapstructure:"remove_hunter_on_capture"`
}

// SimulationConfig holds settings for the episode driver
type SimulationConfig struct {
	Episodes       int   `mapstructure:"episodes"`
	MaxSteps       int   `mapstructure:"max_steps"`
	Seed           int64 `mapstructure:"seed"`
	ExperienceSize int   `mapstructure:"experience_size"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.grid_size", 5)
	v.SetDefault("game.num_hunters", 2)
	v.SetDefault("game.num_rabbits", 2)
	v.SetDefault("game.timestep_reward", -1.0)
	v.SetDefault("game.capture_reward", 1.0)
	v.SetDefault("game.rabbit_policy", "none")
	v.SetDefault("game.remove_hunter_on_capture", false)

	// Simulation defaults
	v.SetDefault("simulation.episodes", 10)
	v.SetDefault("simulation.max_steps", 200)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.experience_size", 10000)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/pursuit-rl")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("PRL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// If we have a specific config path and it doesn't exist, that's ok - use defaults
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.GridSize <= 0 {
		return fmt.Errorf("game.grid_size must be positive")
	}
	if c.Game.NumHunters <= 0 {
		return fmt.Errorf("game.num_hunters must be positive")
	}
	if c.Game.NumRabbits <= 0 {
		return fmt.Errorf("game.num_rabbits must be positive")
	}
	switch c.Game.RabbitPolicy {
	case "none", "random", "opposite":
	default:
		return fmt.Errorf("game.rabbit_policy must be one of none, random, opposite")
	}
	if c.Simulation.Episodes <= 0 {
		return fmt.Errorf("simulation.episodes must be positive")
	}
	if c.Simulation.MaxSteps <= 0 {
		return fmt.Errorf("simulation.max_steps must be positive")
	}
	if c.Simulation.ExperienceSize <= 0 {
		return fmt.Errorf("simulation.experience_size must be positive")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}
	return nil
}
