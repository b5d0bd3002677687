package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	sharedConfig "github.com/estatedesk/estatedesk/internal/shared/config"
)

const envPrefix = "ESTATEDESK"

type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server" yaml:"server"`
	Database sharedConfig.DatabaseConfig `mapstructure:"database" yaml:"database"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	Auth     sharedConfig.AuthConfig     `mapstructure:"auth" yaml:"auth"`
	Email    sharedConfig.EmailConfig    `mapstructure:"email" yaml:"email"`
	Redis    sharedConfig.RedisConfig    `mapstructure:"redis" yaml:"redis"`
	WhatsApp sharedConfig.WhatsAppConfig `mapstructure:"whatsapp" yaml:"whatsapp"`
	Business sharedConfig.BusinessConfig `mapstructure:"business" yaml:"business"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml from the usual search paths. When path is
// non-empty that file is used instead. ESTATEDESK_* variables override both,
// e.g. ESTATEDESK_DATABASE_PASSWORD.
func Load(path, env string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Defaults returns a Config populated only with default values.
func Defaults() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal defaults: %w", err)
	}
	return &config, nil
}

// WriteFile renders cfg as YAML to path, creating parent directories. An
// existing file is only replaced when overwrite is set.
func WriteFile(cfg *Config, path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Database defaults
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "estatedesk")
	v.SetDefault("database.path", "estatedesk.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 60)

	// Email defaults; an empty host disables sign-off mail
	v.SetDefault("email.smtp_host", "")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "")
	v.SetDefault("email.from_name", "EstateDesk")

	// Redis defaults; an empty host keeps dedup and rate limits in process
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// WhatsApp defaults
	v.SetDefault("whatsapp.api_base_url", "https://graph.facebook.com/v19.0")
	v.SetDefault("whatsapp.phone_number_id", "")
	v.SetDefault("whatsapp.access_token", "")
	v.SetDefault("whatsapp.verify_token", "")
	v.SetDefault("whatsapp.app_secret", "")
	v.SetDefault("whatsapp.timeout_seconds", 10)
	v.SetDefault("whatsapp.templates.status_update", "ticket_status_update")
	v.SetDefault("whatsapp.templates.ticket_update", "ticket_update")
	v.SetDefault("whatsapp.templates.ticket_assigned", "ticket_assigned")
	v.SetDefault("whatsapp.templates.job_card_link", "job_card_link")
	v.SetDefault("whatsapp.templates.language", "en")

	// Business defaults
	v.SetDefault("business.timezone", "Africa/Nairobi")
	v.SetDefault("business.public_base_url", "")
	v.SetDefault("business.reassign_limit", 3)
	v.SetDefault("business.duplicate_window_seconds", 60)
	v.SetDefault("business.category_timeout_seconds", 600)
	v.SetDefault("business.pin_attempts_per_hour", 10)
}
