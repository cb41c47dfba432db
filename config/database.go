package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string
	Log        bool
}

// GetDatabaseConfig returns database configuration from environment variables
func GetDatabaseConfig() *DatabaseConfig {
	db := databaseConfigFrom(newViper())
	return &db
}

func databaseConfigFrom(v *viper.Viper) DatabaseConfig {
	return DatabaseConfig{
		Driver:     strings.ToLower(v.GetString("db_driver")),
		Host:       v.GetString("db_host"),
		Port:       v.GetString("db_port"),
		User:       v.GetString("db_user"),
		Password:   v.GetString("db_password"),
		DBName:     v.GetString("db_name"),
		SSLMode:    v.GetString("db_ssl_mode"),
		SQLitePath: v.GetString("sqlite_path"),
		Log:        v.GetBool("db_log"),
	}
}

// GetDSN returns the connection string for the configured driver
func (c *DatabaseConfig) GetDSN() string {
	if c.Driver == DriverSQLite {
		return SQLiteDSN(c.SQLitePath)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Redacted is GetDSN with the password masked, safe for logs
func (c *DatabaseConfig) Redacted() string {
	if c.Driver == DriverSQLite || c.Password == "" {
		return c.GetDSN()
	}
	masked := *c
	masked.Password = "****"
	return masked.GetDSN()
}

// SQLiteDSN builds a SQLite DSN with foreign keys enforced. path may be ":memory:".
func SQLiteDSN(path string) string {
	if path == ":memory:" {
		return "file::memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
