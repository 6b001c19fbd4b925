// Package config assembles process configuration once at startup.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultPort is used when PORT is unset or empty.
const DefaultPort = "3000"

// DocsPath is where the interactive API documentation is mounted.
const DocsPath = "/api-docs"

// Config holds the immutable runtime configuration. It is read from the
// environment exactly once; nothing mutates it afterwards.
type Config struct {
	// Port is the TCP port the HTTP server binds.
	Port string
	// BodyParsing enables eager request body parsing before route dispatch.
	BodyParsing bool
}

// Load reads configuration from the process environment. A .env file in the
// working directory is merged in first when present; a missing file is fine.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function. Split out from
// Load so tests can supply their own environment.
func FromEnv(getenv func(string) string) Config {
	port := getenv("PORT")
	if port == "" {
		port = DefaultPort
	}
	return Config{
		Port:        port,
		BodyParsing: parseBool(getenv("BODY_PARSING"), true),
	}
}

// Addr returns the listen address for http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func parseBool(v string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return def
	case "0", "false", "off", "no":
		return false
	default:
		return true
	}
}
