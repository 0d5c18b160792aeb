package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const DefaultDetoxifyURL = "http://localhost:8501"

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Classifier ClassifierConfig `mapstructure:"classifier" validate:"required"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	MetricsPort     int           `mapstructure:"metrics_port" validate:"min=1,max=65535"`
	BodyLimit       int           `mapstructure:"body_limit" validate:"gt=0"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	DocsEnabled     bool          `mapstructure:"docs_enabled"`
	CORS            CORSConfig    `mapstructure:"cors"`
}

// CORSConfig is disabled while AllowOrigins is empty.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
	AllowMethods []string `mapstructure:"allow_methods"`
	MaxAge       int      `mapstructure:"max_age" validate:"gte=0"`
}

type ClassifierConfig struct {
	Provider  string        `mapstructure:"provider" validate:"required"`
	BaseURL   string        `mapstructure:"base_url" validate:"omitempty,url"`
	Token     string        `mapstructure:"token"`
	APIKey    string        `mapstructure:"api_key"`
	Model     string        `mapstructure:"model"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Threshold float64       `mapstructure:"threshold" validate:"gte=0,lte=1"`
	Breaker   BreakerConfig `mapstructure:"breaker"`
}

type BreakerConfig struct {
	MaxFailures uint32        `mapstructure:"max_failures" validate:"gt=0"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Load reads config.yaml from configPath (or ./config, or the working directory) and applies
// environment overrides such as SERVER_PORT or CLASSIFIER_BASE_URL. A missing file is not an
// error: defaults and environment variables are enough to run.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaultValues(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	)); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Classifier.Provider = strings.ToLower(strings.TrimSpace(cfg.Classifier.Provider))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.body_limit", 8*1024*1024)
	v.SetDefault("server.read_timeout", 60*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.docs_enabled", true)
	v.SetDefault("server.cors.allow_origins", []string{})
	v.SetDefault("server.cors.allow_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("server.cors.max_age", 43200)

	v.SetDefault("classifier.provider", "detoxify")
	v.SetDefault("classifier.base_url", DefaultDetoxifyURL)
	v.SetDefault("classifier.token", "")
	v.SetDefault("classifier.api_key", "")
	v.SetDefault("classifier.model", "")
	v.SetDefault("classifier.timeout", 30*time.Second)
	v.SetDefault("classifier.threshold", 0.5)
	v.SetDefault("classifier.breaker.max_failures", 5)
	v.SetDefault("classifier.breaker.timeout", 30*time.Second)

	v.SetDefault("metrics.enabled", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}
