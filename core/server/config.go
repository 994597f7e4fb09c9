package server

import "fmt"

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8000" env:"PORT"`
	// BodyLimitKB caps the size of request bodies.
	BodyLimitKB int `mapstructure:"body_limit_kb" default:"256"`
}

// Address returns the listen address in host:port form.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// BodyLimit returns the body limit in bytes, falling back to 256KB.
func (c Config) BodyLimit() int {
	if c.BodyLimitKB <= 0 {
		return 256 * 1024
	}
	return c.BodyLimitKB * 1024
}
