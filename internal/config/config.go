package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	InterfaceConsole = "console"
	InterfaceTUI     = "tui"

	// configFile is looked up relative to the XDG config directories.
	configFile = "othello/config.yml"
)

var (
	ErrInvalidInterface = errors.New("invalid interface")
	ErrInvalidDelay     = errors.New("ai delay must not be negative")
)

// Player presets a participant. Players without a name are asked for one at startup.
type Player struct {
	Name      string `yaml:"name"      env:"NAME"`
	Automated bool   `yaml:"automated" env:"AI"`
}

type Players struct {
	Dark  Player `yaml:"dark"  env-prefix:"OTHELLO_DARK_"`
	Light Player `yaml:"light" env-prefix:"OTHELLO_LIGHT_"`
}

// Config holds all settings of the game binary.
type Config struct {
	LogLevel  string        `yaml:"log-level" env:"OTHELLO_LOG_LEVEL" env-default:"warn"`
	Interface string        `yaml:"interface" env:"OTHELLO_INTERFACE" env-default:"console"`
	NoClear   bool          `yaml:"no-clear"  env:"OTHELLO_NO_CLEAR"`
	ShowHints bool          `yaml:"show-hints" env:"OTHELLO_SHOW_HINTS"`
	Seed      int64         `yaml:"seed"      env:"OTHELLO_SEED"`
	AIDelay   time.Duration `yaml:"ai-delay"  env:"OTHELLO_AI_DELAY" env-default:"500ms"`
	Players   Players       `yaml:"players"`
}

// Load reads the config file at path and applies environment overrides. With an empty
// path, othello/config.yml is searched in the XDG config directories; if there is none,
// only the environment is read.
func Load(path string) (*Config, error) {
	if path == "" {
		if found, err := xdg.SearchConfigFile(configFile); err == nil {
			path = found
		}
	}

	cfg := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(path, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks the values that cleanenv cannot check by itself.
func (c *Config) Validate() error {
	if c.Interface != InterfaceConsole && c.Interface != InterfaceTUI {
		return fmt.Errorf("%w: %q", ErrInvalidInterface, c.Interface)
	}

	if c.AIDelay < 0 {
		return ErrInvalidDelay
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// SeedOrNow returns the configured seed, or the current time when it is not set.
func (c *Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
