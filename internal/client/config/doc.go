// Package config loads runtime configuration for the checklist client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the checklist backend
//	-t string   password reset token from a reset link
//	-d string   path of the local state database
//
// # File schema
//
// Durations use timex.Duration, so "30s" and integer nanoseconds both work:
//
//	{
//	  "server_url": "https://vdlchecklist-0pfo.onrender.com",
//	  "request_timeout": "30s",
//	  "state_db": "checklist.db",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// Environment variables are not read.
package config
