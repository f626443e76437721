// Package config holds the runtime configuration shared by every command.
// Values are merged from defaults, the config file, a .env file, and the
// environment, with TGFSYN_ prefixed variables taking the usual viper form
// (TGFSYN_SYNOLOGY_HOST for synology.host). Bare legacy names like
// SYNOLOGY_HOST keep working as aliases.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort        = 5000
	defaultTimeout     = 30
	defaultStoragePath = "./files"
	defaultMaxFileSize = 50 << 20
)

var defaults = map[string]interface{}{
	"synology.host":          "",
	"synology.port":          defaultPort,
	"synology.username":      "",
	"synology.password":      "",
	"synology.https":         false,
	"synology.timeout":       defaultTimeout,
	"telegram.token":         "",
	"telegram.storage_path":  defaultStoragePath,
	"telegram.allowed_users": "",
	"telegram.admin_users":   "",
	"telegram.max_file_size": defaultMaxFileSize,
	"verbose":                false,
}

var legacyEnv = map[string]string{
	"synology.host":          "SYNOLOGY_HOST",
	"synology.port":          "SYNOLOGY_PORT",
	"synology.username":      "SYNOLOGY_USERNAME",
	"synology.password":      "SYNOLOGY_PASSWORD",
	"telegram.token":         "TELEGRAM_BOT_TOKEN",
	"telegram.storage_path":  "STORAGE_PATH",
	"telegram.allowed_users": "ALLOWED_USERS",
	"telegram.admin_users":   "ADMIN_USERS",
}

// Config is the full runtime configuration.
type Config struct {
	Synology Synology `mapstructure:"synology"`
	Telegram Telegram `mapstructure:"telegram"`
	Verbose  bool     `mapstructure:"verbose"`
}

// Synology holds the Download Station connection settings.
type Synology struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	HTTPS    bool   `mapstructure:"https"`
	Timeout  int    `mapstructure:"timeout"`
}

// Telegram holds the bot settings. User lists are comma separated ids, kept
// raw here and parsed where the access checks live.
type Telegram struct {
	Token        string `mapstructure:"token"`
	StoragePath  string `mapstructure:"storage_path"`
	AllowedUsers string `mapstructure:"allowed_users"`
	AdminUsers   string `mapstructure:"admin_users"`
	MaxFileSize  int64  `mapstructure:"max_file_size"`
}

var cfg Config

// Load merges all configuration sources into the package state. The config
// file, when one exists, must already be read into viper by the caller.
func Load() error {
	if err := godotenv.Load(); err == nil {
		log.Debug("Loaded environment from .env")
	}

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	viper.SetEnvPrefix("TGFSYN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for key, env := range legacyEnv {
		prefixed := "TGFSYN_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := viper.BindEnv(key, prefixed, env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}

	clamp()
	return nil
}

// C returns the configuration loaded by Load. Before Load it holds only
// zero values.
func C() Config {
	return cfg
}

func clamp() {
	if cfg.Synology.Port <= 0 || cfg.Synology.Port > 65535 {
		log.Warn("Ignoring out of range synology.port", "port", cfg.Synology.Port)
		cfg.Synology.Port = defaultPort
	}
	if cfg.Synology.Timeout <= 0 {
		cfg.Synology.Timeout = defaultTimeout
	}
	if cfg.Telegram.StoragePath == "" {
		cfg.Telegram.StoragePath = defaultStoragePath
	}
	if cfg.Telegram.MaxFileSize <= 0 {
		cfg.Telegram.MaxFileSize = defaultMaxFileSize
	}
	if cfg.Telegram.MaxFileSize > defaultMaxFileSize {
		log.Warn("Capping telegram.max_file_size at the bot download limit",
			"max_file_size", cfg.Telegram.MaxFileSize)
		cfg.Telegram.MaxFileSize = defaultMaxFileSize
	}
}

// Validate reports the connection settings that are still missing, in the
// order they should be fixed.
func (s Synology) Validate() error {
	var missing []string
	if s.Host == "" {
		missing = append(missing, "synology.host")
	}
	if s.Username == "" {
		missing = append(missing, "synology.username")
	}
	if s.Password == "" {
		missing = append(missing, "synology.password")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Validate reports whether the bot can start with these settings.
func (t Telegram) Validate() error {
	if t.Token == "" {
		return fmt.Errorf("missing required configuration: telegram.token")
	}
	return nil
}
