package config

import (
	"reflect"
	"strings"

	"breezechess/core/database"
	"breezechess/core/logger"
	"breezechess/core/server"
	"breezechess/core/storage"
	"breezechess/feature/pieces"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the puzzle gateway HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (S3, MinIO, LocalStack).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the puzzle database connection.
	Database database.Config `mapstructure:"database"`
	// Pieces holds configuration for the chess piece asset synchronizer.
	Pieces pieces.Config `mapstructure:"pieces"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. inside the container)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. STORAGE_BUCKET -> storage.bucket)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every key in Viper, using the
// 'default' tag as default value and the 'env' tag as a comma separated list
// of additional environment variable names for the key.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))

		if aliases := field.Tag.Get("env"); aliases != "" {
			names := []string{key, strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}
			for _, alias := range strings.Split(aliases, ",") {
				names = append(names, strings.TrimSpace(alias))
			}
			_ = v.BindEnv(names...)
		}
	}
}
