package database

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (postgres, mysql, sqlite).
	Driver string `mapstructure:"driver" default:"postgres"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost" env:"POSTGRES_HOST"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"5432"`
	// User is the database user.
	User string `mapstructure:"user" default:"postgres" env:"POSTGRES_USER"`
	// Password is the database password.
	Password string `mapstructure:"password" default:"" env:"POSTGRES_PASSWORD"`
	// Name is the database name. For sqlite it is the file path or ":memory:".
	Name string `mapstructure:"name" default:"postgres" env:"POSTGRES_DB"`
	// SSLMode is the postgres sslmode parameter.
	SSLMode string `mapstructure:"sslmode" default:"disable"`
	// TimeoutSeconds bounds connection setup and the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxOpenConns caps the pool shared by all requests.
	MaxOpenConns int `mapstructure:"max_open_conns" default:"20"`
}

// DSN builds the driver specific connection string.
func (c Config) DSN() string {
	timeout := c.timeout()

	switch c.Driver {
	case DriverMySQL:
		userInfo := url.UserPassword(c.User, c.Password).String()
		return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
			userInfo, c.Host, c.Port, c.Name, timeout, timeout, timeout)
	case DriverSQLite:
		return c.Name
	default:
		query := url.Values{}
		if c.SSLMode != "" {
			query.Set("sslmode", c.SSLMode)
		}
		query.Set("connect_timeout", strconv.Itoa(timeout))
		u := url.URL{
			Scheme:   "postgresql",
			User:     url.UserPassword(c.User, c.Password),
			Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
			Path:     "/" + c.Name,
			RawQuery: query.Encode(),
		}
		return u.String()
	}
}

func (c Config) timeout() int {
	if c.TimeoutSeconds <= 0 {
		return 30
	}
	return c.TimeoutSeconds
}
