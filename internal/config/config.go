package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	gwerrors "github.com/abdigaliarsen/api-gateway/internal/errors"
)

const (
	ServiceName    = "api-gateway"
	ServiceTitle   = "API Gateway Service"
	ServiceVersion = "1.0.0"

	DefaultPort = 3000

	// PortEnv is the environment variable holding the listening port.
	PortEnv = "PORT"
)

// Duration lets TOML files spell timeouts as "15s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Config is the complete runtime configuration of the gateway.
type Config struct {
	// Host to bind; empty means all interfaces
	Host string `toml:"host"`

	Port int `toml:"port"`

	// UpstreamTimeout bounds each outbound call (0 = no timeout)
	UpstreamTimeout Duration `toml:"upstream_timeout"`

	LogJSON bool `toml:"log_json"`
	Verbose bool `toml:"verbose"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Port: DefaultPort}
}

// Load builds a Config from defaults, an optional TOML file at path, and
// the PORT variable as returned by getenv. A nil getenv reads nothing.
func Load(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, gwerrors.ConfigError(fmt.Sprintf("failed to read config file %s", path), err)
		}
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, gwerrors.ConfigError(fmt.Sprintf("failed to parse config file %s", path), err)
		}
	}

	if getenv != nil {
		if raw := getenv(PortEnv); raw != "" {
			port, err := strconv.Atoi(raw)
			if err != nil {
				return nil, gwerrors.ConfigError(fmt.Sprintf("invalid %s %q", PortEnv, raw), err)
			}
			cfg.Port = port
		}
	}

	return cfg, nil
}

// Validate checks the configuration for values the server cannot use.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return gwerrors.ConfigError(fmt.Sprintf("port %d out of range 1-65535", c.Port), nil)
	}
	if c.UpstreamTimeout.Duration < 0 {
		return gwerrors.ConfigError(fmt.Sprintf("upstream timeout %s must not be negative", c.UpstreamTimeout.Duration), nil)
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// BaseURL returns the URL users should point a browser at.
func (c *Config) BaseURL() string {
	host := c.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(c.Port))
}
