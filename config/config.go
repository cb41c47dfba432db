package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration of the pokedex server and CLI.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	LogHTTP         bool
	ShutdownTimeout time.Duration
}

var defaults = map[string]interface{}{
	"http_port":        "8080",
	"log_http":         false,
	"shutdown_timeout": "10s",
	"db_driver":        DriverPostgres,
	"db_host":          "localhost",
	"db_port":          "5432",
	"db_user":          "pokedex",
	"db_password":      "",
	"db_name":          "pokedex",
	"db_ssl_mode":      "disable",
	"db_log":           false,
	"sqlite_path":      "pokedex.db",
}

// LoadEnvFiles loads .env style files into the process environment.
// Missing files are not an error; existing variables are never overwritten.
func LoadEnvFiles(files ...string) (bool, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	loaded := false
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, err
		}
		loaded = true
	}
	return loaded, nil
}

// Load reads the configuration from the environment with defaults applied.
func Load() (*Config, error) {
	v := newViper()

	timeout, err := time.ParseDuration(v.GetString("shutdown_timeout"))
	if err != nil {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be a duration such as 10s")
	}

	db := databaseConfigFrom(v)
	if db.Driver != DriverPostgres && db.Driver != DriverSQLite {
		return nil, errors.New("DB_DRIVER must be either postgres or sqlite")
	}

	return &Config{
		Server: ServerConfig{
			Port:            v.GetString("http_port"),
			LogHTTP:         v.GetBool("log_http"),
			ShutdownTimeout: timeout,
		},
		Database: db,
	}, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	// HTTP_PORT, DB_HOST, ... map onto the lower-case keys above
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}
