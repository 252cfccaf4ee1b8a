// Package config holds the process configuration.  It is constructed once at
// startup from environment variables, optionally overlaid with a TOML file,
// and passed by dependency injection into the registry and each provider.
// Core logic never reads ambient environment state.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Environment values for [Server.Environment].
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config is the full process configuration.
type Config struct {
	Server    Server    `toml:"server"`
	Providers Providers `toml:"providers"`
}

// Server holds transport settings.
type Server struct {
	Port        int    `toml:"port" validate:"gte=0,lte=65535"`
	Host        string `toml:"host"`
	Environment string `toml:"environment" validate:"oneof=development production test"`
}

// Providers holds per-platform provider settings.
type Providers struct {
	Farcaster Farcaster `toml:"farcaster"`
	Twitter   Twitter   `toml:"twitter"`
	Telegram  Telegram  `toml:"telegram"`
}

// Farcaster configures the Neynar-backed Farcaster provider.
type Farcaster struct {
	NeynarAPIKey string `toml:"neynar_api_key"`
	Enabled      bool   `toml:"enabled"`
}

// Twitter configures the Twitter provider stub.
type Twitter struct {
	APIKey    string `toml:"api_key"`
	APISecret string `toml:"api_secret"`
	Enabled   bool   `toml:"enabled"`
}

// Telegram configures the Telegram provider stub.
type Telegram struct {
	BotToken string `toml:"bot_token"`
	Enabled  bool   `toml:"enabled"`
}

// FromEnv builds the configuration from environment variables.  Farcaster
// defaults to enabled unless ENABLE_FARCASTER is set to something other than
// "true".  The stub platforms keep the inherited inverted flag check
// (enabled only when the variable is literally "false"); fixing it would
// silently enable providers for existing deployments that rely on the
// current behaviour.
func FromEnv() *Config {
	enableFarcaster := true
	if v, ok := os.LookupEnv("ENABLE_FARCASTER"); ok {
		enableFarcaster = v == "true"
	}
	port := 3000
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}
	host := os.Getenv("HOST")
	if host == "" {
		host = "0.0.0.0"
	}
	env := os.Getenv("NODE_ENV")
	if env == "" {
		env = EnvDevelopment
	}
	return &Config{
		Server: Server{
			Port:        port,
			Host:        host,
			Environment: env,
		},
		Providers: Providers{
			Farcaster: Farcaster{
				NeynarAPIKey: os.Getenv("NEYNAR_API_KEY"),
				Enabled:      enableFarcaster,
			},
			Twitter: Twitter{
				APIKey:    os.Getenv("TWITTER_API_KEY"),
				APISecret: os.Getenv("TWITTER_API_SECRET"),
				Enabled:   os.Getenv("ENABLE_TWITTER") == "false",
			},
			Telegram: Telegram{
				BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
				Enabled:  os.Getenv("ENABLE_TELEGRAM") == "false",
			},
		},
	}
}

// fileConfig mirrors Config with optional fields, so a TOML file can
// override individual settings without clobbering the environment-derived
// defaults.
type fileConfig struct {
	Server struct {
		Port        *int    `toml:"port"`
		Host        *string `toml:"host"`
		Environment *string `toml:"environment"`
	} `toml:"server"`
	Providers struct {
		Farcaster struct {
			NeynarAPIKey *string `toml:"neynar_api_key"`
			Enabled      *bool   `toml:"enabled"`
		} `toml:"farcaster"`
		Twitter struct {
			APIKey    *string `toml:"api_key"`
			APISecret *string `toml:"api_secret"`
			Enabled   *bool   `toml:"enabled"`
		} `toml:"twitter"`
		Telegram struct {
			BotToken *string `toml:"bot_token"`
			Enabled  *bool   `toml:"enabled"`
		} `toml:"telegram"`
	} `toml:"providers"`
}

// LoadFile overlays the TOML file at path onto c.  Only keys present in the
// file are overridden.
func (c *Config) LoadFile(path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("load config file: %w", err)
	}
	setIf(&c.Server.Port, fc.Server.Port)
	setIf(&c.Server.Host, fc.Server.Host)
	setIf(&c.Server.Environment, fc.Server.Environment)
	setIf(&c.Providers.Farcaster.NeynarAPIKey, fc.Providers.Farcaster.NeynarAPIKey)
	setIf(&c.Providers.Farcaster.Enabled, fc.Providers.Farcaster.Enabled)
	setIf(&c.Providers.Twitter.APIKey, fc.Providers.Twitter.APIKey)
	setIf(&c.Providers.Twitter.APISecret, fc.Providers.Twitter.APISecret)
	setIf(&c.Providers.Twitter.Enabled, fc.Providers.Twitter.Enabled)
	setIf(&c.Providers.Telegram.BotToken, fc.Providers.Telegram.BotToken)
	setIf(&c.Providers.Telegram.Enabled, fc.Providers.Telegram.Enabled)
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// IsDevelopment reports whether the process runs in development mode, which
// enables the optimistic availability override in the farcaster provider.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks invariants that would otherwise surface as confusing
// runtime behaviour.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
