// Package config loads solver configuration from the environment, the
// same getEnv/getEnvInt/getEnvBool-plus-Load shape the teacher repo
// uses for its own Config, trimmed to the knobs a pure enumerator and
// its optional HTTP wrapper actually need.
package config

import "os"
import "strconv"

// Config holds every environment-tunable knob the CLI and the optional
// HTTP service read at startup.
type Config struct {
	// Workers is the search engine's worker-pool size (§5).
	Workers int
	// MaxPrint is the CLI's "print individual solutions if count <=
	// threshold" knob from §6's output rules.
	MaxPrint int
	// Color forces (true) or disables (false) ANSI color regardless of
	// whether stdout is a terminal; unset (default) autodetects.
	Color *bool
	// HTTPAddr is the optional service's listen address.
	HTTPAddr string
	// PromAddr is the Prometheus exporter's listen address.
	PromAddr string
	// TraceStdout turns on the stdout OpenTelemetry exporter.
	TraceStdout bool
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvBoolPtr(key string) *bool {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

// Load builds a Config from the process environment, falling back to
// defaults for anything unset.
func Load() Config {
	return Config{
		Workers:     getEnvInt("SOLVER_WORKERS", 4),
		MaxPrint:    getEnvInt("SOLVER_MAX_PRINT", 50),
		Color:       getEnvBoolPtr("SOLVER_COLOR"),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		PromAddr:    getEnv("PROM_ADDR", ":9090"),
		TraceStdout: getEnvBool("TRACE_STDOUT", false),
	}
}
