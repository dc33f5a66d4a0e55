package config

import (
	"reflect"
	"strings"

	"roster-sync/core/database"
	"roster-sync/core/logger"
	"roster-sync/core/metrics"
	"roster-sync/core/patientapi"
	"roster-sync/core/secrets"
	"roster-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the job.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Warehouse holds configuration for the roster warehouse connection.
	Warehouse database.Config `mapstructure:"warehouse"`
	// Storage holds configuration for the object storage bucket.
	Storage storage.Config `mapstructure:"storage"`
	// Secrets points at the warehouse credential bundle.
	Secrets secrets.Config `mapstructure:"secrets"`
	// API holds configuration for the remote patient API.
	API patientapi.Config `mapstructure:"api"`
	// Metrics holds configuration for the Pushgateway export.
	Metrics metrics.Config `mapstructure:"metrics"`
	// Report holds configuration for the run report archive.
	Report ReportConfig `mapstructure:"report"`
}

// ReportConfig controls archiving of the run report to object storage.
type ReportConfig struct {
	Enabled bool   `mapstructure:"enabled" default:"false"`
	Prefix  string `mapstructure:"prefix" default:"reports"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. API_BASE_URL -> api.base_url)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
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
	}
}
