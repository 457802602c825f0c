// Package config provides configuration loading and validation for the
// wyhash command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"

	"go.dw1.io/x/wyhash"
	"go.dw1.io/x/wyhash/cast"
)

// Sentinel validation errors.
var (
	ErrInvalidMaxKeySize = errors.New("invalid max key size")
	ErrInvalidSeed       = errors.New("invalid seed")
	ErrInvalidCount      = errors.New("rand count must be positive")
	ErrInvalidFormat     = errors.New("invalid output format")
	ErrInvalidLogLevel   = errors.New("invalid log level")
	ErrInvalidLogFormat  = errors.New("invalid log format")
)

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Unbounded is the max_key_size value that disables the key bound.
const Unbounded = "unbounded"

// Default configuration values.
const (
	DefaultSeed       = "0"
	DefaultMaxKeySize = "64KiB"
	DefaultRandCount  = 8
	DefaultFormat     = FormatText
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Config holds all configuration for the wyhash command.
type Config struct {
	Hash    HashConfig    `mapstructure:"hash"`
	Rand    RandConfig    `mapstructure:"rand"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// HashConfig holds hashing configuration. Seeds accept any integer
// literal and are reduced modulo 2^64, so "-1" selects 0xffffffffffffffff.
type HashConfig struct {
	Seed       string `mapstructure:"seed"`
	SecretSeed string `mapstructure:"secret_seed"`
	MaxKeySize string `mapstructure:"max_key_size"`
}

// RandConfig holds wyrand configuration.
type RandConfig struct {
	Seed  string `mapstructure:"seed"`
	Count int    `mapstructure:"count"`
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables. An empty
// configPath searches the working directory and $HOME/.config/wyhash for
// wyhash.yaml; a missing file there is not an error.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("wyhash")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viperCfg.AddConfigPath(filepath.Join(home, ".config", "wyhash"))
		}
	}

	viperCfg.SetEnvPrefix("WYHASH")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := config.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Hash:    HashConfig{Seed: DefaultSeed, MaxKeySize: DefaultMaxKeySize},
		Rand:    RandConfig{Seed: DefaultSeed, Count: DefaultRandCount},
		Output:  OutputConfig{Format: DefaultFormat},
		Logging: LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

func setDefaults(viperCfg *viper.Viper) {
	// Hash defaults.
	viperCfg.SetDefault("hash.seed", DefaultSeed)
	viperCfg.SetDefault("hash.secret_seed", "")
	viperCfg.SetDefault("hash.max_key_size", DefaultMaxKeySize)

	// Rand defaults.
	viperCfg.SetDefault("rand.seed", DefaultSeed)
	viperCfg.SetDefault("rand.count", DefaultRandCount)

	// Output defaults.
	viperCfg.SetDefault("output.format", DefaultFormat)
	viperCfg.SetDefault("output.no_color", false)

	// Logging defaults.
	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)
}

// Validate checks every field, resolving seeds and sizes once so later
// accessors cannot fail on a loaded config.
func (c *Config) Validate() error {
	if _, err := c.HashSeed(); err != nil {
		return err
	}

	if _, err := c.Secret(); err != nil {
		return err
	}

	if _, err := c.MaxKeyBytes(); err != nil {
		return err
	}

	if _, err := c.RandSeed(); err != nil {
		return err
	}

	if c.Rand.Count <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, c.Rand.Count)
	}

	switch c.Output.Format {
	case FormatText, FormatJSON, FormatTable:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

// HashSeed resolves hash.seed.
func (c *Config) HashSeed() (uint64, error) {
	return parseSeed("hash.seed", c.Hash.Seed)
}

// RandSeed resolves rand.seed.
func (c *Config) RandSeed() (uint64, error) {
	return parseSeed("rand.seed", c.Rand.Seed)
}

// Secret resolves hash.secret_seed. An empty value selects the default
// secret and returns nil.
func (c *Config) Secret() (*wyhash.Secret, error) {
	if strings.TrimSpace(c.Hash.SecretSeed) == "" {
		return nil, nil
	}

	seed, err := parseSeed("hash.secret_seed", c.Hash.SecretSeed)
	if err != nil {
		return nil, err
	}

	secret, err := wyhash.MakeSecret(seed)
	if err != nil {
		return nil, err
	}

	return &secret, nil
}

// MaxKeyBytes resolves hash.max_key_size to a [wyhash.Hasher] bound.
// [Unbounded] yields -1.
func (c *Config) MaxKeyBytes() (int, error) {
	raw := strings.TrimSpace(c.Hash.MaxKeySize)
	if strings.EqualFold(raw, Unbounded) {
		return -1, nil
	}

	size, err := humanize.ParseBytes(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidMaxKeySize, raw, err)
	}

	n, err := cast.Narrow[int](size)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidMaxKeySize, raw, err)
	}

	if n == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMaxKeySize, raw)
	}

	return n, nil
}

// Hasher builds the [wyhash.Hasher] described by the hash section.
func (c *Config) Hasher() (*wyhash.Hasher, error) {
	seed, err := c.HashSeed()
	if err != nil {
		return nil, err
	}

	secret, err := c.Secret()
	if err != nil {
		return nil, err
	}

	limit, err := c.MaxKeyBytes()
	if err != nil {
		return nil, err
	}

	return &wyhash.Hasher{Seed: seed, Secret: secret, MaxKeySize: limit}, nil
}

func parseSeed(key, raw string) (uint64, error) {
	seed, err := cast.ToUint64N(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %w", ErrInvalidSeed, key, raw, err)
	}

	return seed, nil
}
