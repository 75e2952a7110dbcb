package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "MINOTAUR"
	configName = "minotaur"
)

type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Game   GameConfig   `mapstructure:"game"`
	Assets AssetsConfig `mapstructure:"assets"`
	Locale LocaleConfig `mapstructure:"locale"`
	Log    LogConfig    `mapstructure:"log"`
	Debug  DebugConfig  `mapstructure:"debug"`
}

type WindowConfig struct {
	Title      string  `mapstructure:"title"`
	Scale      float64 `mapstructure:"scale"`
	Fullscreen bool    `mapstructure:"fullscreen"`
}

type GameConfig struct {
	// Seed drives maze generation; 0 picks one from the clock.
	Seed int64 `mapstructure:"seed"`
}

type AssetsConfig struct {
	Dir string `mapstructure:"dir"`
}

type LocaleConfig struct {
	Dir  string `mapstructure:"dir"`
	Lang string `mapstructure:"lang"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DebugConfig struct {
	Minimap bool `mapstructure:"minimap"`
	FPS     bool `mapstructure:"fps"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "Minotaur")
	v.SetDefault("window.scale", 1.0)
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("game.seed", 0)
	v.SetDefault("assets.dir", "assets")
	v.SetDefault("locale.dir", "locales")
	v.SetDefault("locale.lang", "en")
	v.SetDefault("log.level", "info")
	v.SetDefault("debug.minimap", false)
	v.SetDefault("debug.fps", false)
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (default ./minotaur.yaml if present)")
	fs.Int64("seed", 0, "maze seed, 0 for a random one")
	fs.String("assets", "", "directory holding textures and screens")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.Bool("fullscreen", false, "start in fullscreen")
	fs.Bool("minimap", false, "show the minimap overlay")
	fs.Bool("fps", false, "show the FPS counter")
	return fs
}

var flagKeys = map[string]string{
	"seed":       "game.seed",
	"assets":     "assets.dir",
	"log-level":  "log.level",
	"fullscreen": "window.fullscreen",
	"minimap":    "debug.minimap",
	"fps":        "debug.fps",
}

// Load resolves the configuration from defaults, an optional config file, MINOTAUR_*
// environment variables and the command line, in increasing priority.
func Load(name string, args []string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	fs := newFlagSet(name)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, _ := fs.GetString("config")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		log.WithField("file", v.ConfigFileUsed()).Debug("config file loaded")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive, got %v", c.Window.Scale)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// LogLevel returns the configured level; Validate has already rejected bad values.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// SeedOrNow returns the configured seed, or a clock-derived one when it is 0.
func (c *Config) SeedOrNow() int64 {
	if c.Game.Seed != 0 {
		return c.Game.Seed
	}
	return time.Now().UnixNano()
}
