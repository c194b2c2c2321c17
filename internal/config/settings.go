package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FIREPLAN_STORE_BACKEND
const EnvPrefix = "FIREPLAN"

// Store backends
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Settings holds application settings for the binaries. Household data lives
// in snapshots, not here.
type Settings struct {
	Logging LoggingSettings `mapstructure:"logging"`
	Store   StoreSettings   `mapstructure:"store"`
	Server  ServerSettings  `mapstructure:"server"`
}

// LoggingSettings configures the zap logger
type LoggingSettings struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputFile string `mapstructure:"output_file"`
}

// StoreSettings selects and configures the profile store
type StoreSettings struct {
	Backend       string `mapstructure:"backend"`
	Dir           string `mapstructure:"dir"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
}

// ServerSettings configures the HTTP API
type ServerSettings struct {
	Address string `mapstructure:"address"`
}

// LoadSettings reads settings from an optional file, a .env file and
// FIREPLAN_* environment variables, in increasing order of precedence.
// An empty path searches for fireplan.yaml in the working directory and
// $HOME/.fireplan.
func LoadSettings(path string) (*Settings, error) {
	loadEnvFile()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("fireplan")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.fireplan")
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	applySettingsDefaults(&s)

	if err := validateSettings(&s); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &s, nil
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() *Settings {
	s := &Settings{}
	applySettingsDefaults(s)
	return s
}

// loadEnvFile loads the first .env found; a missing file is not an error
func loadEnvFile() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// setDefaults registers every key so AutomaticEnv can override it on Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_file", "")
	v.SetDefault("store.backend", BackendFile)
	v.SetDefault("store.dir", defaultStoreDir())
	v.SetDefault("store.redis_addr", "localhost:6379")
	v.SetDefault("store.redis_password", "")
	v.SetDefault("store.redis_db", 0)
	v.SetDefault("server.address", ":8080")
}

func applySettingsDefaults(s *Settings) {
	if s.Logging.Level == "" {
		s.Logging.Level = "info"
	}
	if s.Logging.Format == "" {
		s.Logging.Format = "console"
	}
	if s.Store.Backend == "" {
		s.Store.Backend = BackendFile
	}
	if s.Store.Dir == "" {
		s.Store.Dir = defaultStoreDir()
	}
	if s.Store.RedisAddr == "" {
		s.Store.RedisAddr = "localhost:6379"
	}
	if s.Server.Address == "" {
		s.Server.Address = ":8080"
	}
}

func defaultStoreDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home + "/.fireplan/profiles"
	}
	return ".fireplan/profiles"
}

func validateSettings(s *Settings) error {
	switch strings.ToLower(s.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", s.Logging.Level)
	}
	switch s.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", s.Logging.Format)
	}
	switch s.Store.Backend {
	case BackendFile, BackendRedis:
	default:
		return fmt.Errorf("unknown store backend %q", s.Store.Backend)
	}
	if s.Store.RedisDB < 0 {
		return fmt.Errorf("redis db cannot be negative")
	}
	return nil
}
