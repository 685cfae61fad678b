// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"payline/pkg/db"
)

// AppConfig holds all application-wide configuration.
type AppConfig struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"db"`
	Secrets SecretsConfig `mapstructure:"secrets"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// SecretsConfig holds the three process-wide secrets the auth core is
// constructed from. They are configuration, not code: no package-level
// secret constants exist anywhere in the repo.
type SecretsConfig struct {
	PasswordSalt string `mapstructure:"password_salt"`
	CookieKey    string `mapstructure:"cookie_key"`
	WebhookKey   string `mapstructure:"webhook_key"`
}

// PostgresConfig converts the loaded DB section into the pkg/db form.
func (c *AppConfig) PostgresConfig() db.Config {
	return db.Config{
		Host:     c.DB.Host,
		Port:     c.DB.Port,
		User:     c.DB.User,
		Password: c.DB.Password,
		DBName:   c.DB.Name,
		SSLMode:  c.DB.SSLMode,
	}
}

// LoadConfig reads configuration from an optional config.yaml in the working
// directory, with environment-variable overrides (SERVER_PORT, DB_HOST,
// SECRETS_COOKIE_KEY, ...). Defaults suit local development.
func LoadConfig() (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "user")
	v.SetDefault("db.password", "password")
	v.SetDefault("db.name", "payline")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("secrets.password_salt", "dev-password-salt")
	v.SetDefault("secrets.cookie_key", "dev-cookie-key")
	v.SetDefault("secrets.webhook_key", "dev-webhook-key")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine: defaults plus environment apply.
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}
