package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const defaultPort = "3000"
const defaultSessionTimeout = 30 * time.Second

type Config struct {
	LogOutput      string
	Port           string
	SessionTimeout time.Duration
}

func Load() (Config, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = defaultPort
	}

	timeout := defaultSessionTimeout
	if raw := strings.TrimSpace(os.Getenv("SESSION_TIMEOUT")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse SESSION_TIMEOUT: %w", err)
		}
		if parsed <= 0 {
			return Config{}, fmt.Errorf("SESSION_TIMEOUT must be positive, got %s", raw)
		}
		timeout = parsed
	}

	return Config{
		LogOutput:      strings.TrimSpace(os.Getenv("LOG_OUTPUT")),
		Port:           port,
		SessionTimeout: timeout,
	}, nil
}

// Addr is the listen address for the web runner.
func (c Config) Addr() string {
	return ":" + c.Port
}

// OpenLogOutput resolves LogOutput into a writer. The returned close func is never nil.
func (c Config) OpenLogOutput() (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(c.LogOutput) {
	case "", "off", "none":
		return io.Discard, noop, nil
	case "stderr":
		return os.Stderr, noop, nil
	case "stdout":
		return os.Stdout, noop, nil
	}

	f, err := os.OpenFile(c.LogOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("open log output %q: %w", c.LogOutput, err)
	}
	return f, f.Close, nil
}
