// Package config loads process configuration.
//
// Sources are layered, lowest precedence first:
//  1. defaults (New)
//  2. a .env file in the working directory, if present
//  3. a YAML file named by CONFIG_FILE, if set
//  4. the process environment
//
// The .env file is read as a layer of its own and never modifies the
// process environment.
package config

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// Config contains process configuration.
type Config struct {
	// HostName identifies this instance to the reverse proxy. Required.
	HostName string `koanf:"host_name"`

	// Port is the HTTP listen port.
	Port string `koanf:"port"`

	// ProxyPort is the port segment of the root path the proxy routes on.
	ProxyPort string `koanf:"proxy_port"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// ShutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// New returns a Config populated with defaults. HostName has no default.
func New() *Config {
	return &Config{
		Port:            "8080",
		ProxyPort:       "80",
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
	}
}

// RootPath is the path prefix under which the reverse proxy exposes this
// instance: /p/<HostName>/<ProxyPort>.
func (c *Config) RootPath() string {
	return "/p/" + c.HostName + "/" + c.ProxyPort
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return net.JoinHostPort("", c.Port)
}

func (c *Config) validate() error {
	c.HostName = strings.TrimSpace(c.HostName)
	if c.HostName == "" {
		return ErrMissingHostName
	}
	if strings.Contains(c.HostName, "/") {
		return fmt.Errorf("%w: HOST_NAME must not contain '/'", ErrInvalidConfig)
	}
	if c.Port == "" {
		return fmt.Errorf("%w: PORT must not be empty", ErrInvalidConfig)
	}
	if c.ProxyPort == "" {
		return fmt.Errorf("%w: PROXY_PORT must not be empty", ErrInvalidConfig)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: SHUTDOWN_TIMEOUT must be positive", ErrInvalidConfig)
	}
	return nil
}
