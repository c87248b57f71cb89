package config

import "time"

const DefaultServerURL = "https://vdlchecklist-0pfo.onrender.com"

// Config holds runtime settings for the checklist CLI.
//
// RequestTimeout of zero means requests never time out on the client side.
// ResetToken is only ever set from the command line.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	StateDB        string
	LogLevel       string
	LogFormat      string
	ResetToken     string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = DefaultServerURL
	c.RequestTimeout = 0
	c.StateDB = "checklist.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig applies defaults, then the config file, then flags. Later
// sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
