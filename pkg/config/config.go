// Package config holds process-wide settings bound through viper, the way
// cmd/root.go's flag block binds every server setting to a viper key
// before the server starts.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Build-time metadata, set via -ldflags the way the teacher's build
// package reports Version/BuildMode/BuildTime for "tools bug" reports.
var (
	Version   = "dev"
	BuildMode = "dev"
	BuildTime = "unknown"
)

// Config is the resolved server configuration.
type Config struct {
	Host     string
	Port     int
	LogLevel string
}

// GetConfig reads the current viper-bound settings into a Config value.
// Called once at server startup, after cobra has parsed flags and bound
// them via viper.BindPFlag.
func GetConfig() Config {
	return Config{
		Host:     viper.GetString("host"),
		Port:     viper.GetInt("port"),
		LogLevel: viper.GetString("log.level"),
	}
}

// Addr returns the host:port pair the HTTP server should bind to.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
