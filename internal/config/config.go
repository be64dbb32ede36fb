package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PORTFOLIO_SERVER_ADDR
const EnvPrefix = "PORTFOLIO"

const defaultServerAddr = ":8080"

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `mapstructure:"server_addr"`
	StaticDir       string        `mapstructure:"static_dir"`
	ContentPath     string        `mapstructure:"content_path"`
	OutputDir       string        `mapstructure:"output_dir"`
	LogLevel        string        `mapstructure:"log_level"`
	Dev             bool          `mapstructure:"dev"`
	ShowExperience  bool          `mapstructure:"show_experience"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// SetDefaults registers the default for every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server_addr", defaultServerAddr)
	v.SetDefault("static_dir", "static")
	v.SetDefault("content_path", "")
	v.SetDefault("output_dir", "public")
	v.SetDefault("log_level", "info")
	v.SetDefault("dev", false)
	v.SetDefault("show_experience", false)
	v.SetDefault("read_timeout", 5*time.Second)
	v.SetDefault("write_timeout", 10*time.Second)
	v.SetDefault("shutdown_timeout", 10*time.Second)
}

// Load reads configuration from defaults, an optional config file and the
// environment. An explicit cfgFile must exist; otherwise ./portfolio.yaml
// is used when present.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("portfolio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Legacy deployment variable, honored when nothing else moved the address
	if addr := os.Getenv("SERVER_ADDR"); addr != "" && cfg.ServerAddr == defaultServerAddr {
		cfg.ServerAddr = addr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the server cannot start with
func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		return errors.New("server_addr must not be empty")
	}
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown_timeout must be positive")
	}
	return nil
}
