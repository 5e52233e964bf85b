package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Database holds libsql database configuration. The auth token is optional
// for local file: URLs.
type Database struct {
	URL       string `envconfig:"FOCUSTRACK_DATABASE_URL" required:"true"`
	AuthToken string `envconfig:"FOCUSTRACK_AUTH_TOKEN"`
}

// Server holds configuration for the API server.
type Server struct {
	Database Database
	Port     int `envconfig:"FOCUSTRACK_PORT" default:"8080"`
}

// Monitor holds configuration for the activity poller.
type Monitor struct {
	Database     Database
	PollInterval time.Duration `envconfig:"FOCUSTRACK_MONITOR_INTERVAL" default:"5s"`
}

// LoadDatabase loads database configuration from environment variables.
func LoadDatabase() (*Database, error) {
	var cfg Database
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadServer loads API server configuration from environment variables.
func LoadServer() (*Server, error) {
	var cfg Server
	if err := envconfig.Process("", &cfg.Database); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadMonitor loads activity poller configuration from environment variables.
func LoadMonitor() (*Monitor, error) {
	var cfg Monitor
	if err := envconfig.Process("", &cfg.Database); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
