package atomforge

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

/*
===============================================================================
    Configuration
===============================================================================
*/

// Config represents the codec configuration
type Config struct {
	LogLevel string

	/* By enabling `StrictMode`, the decoder will reject binary inputs
	   containing (protocol, atom) pairs absent from the dictionary
	   instead of falling back to the synthetic proto<N>_atom<M> form. */
	StrictMode bool

	// MaxDepth bounds nested-stream recursion in the decoder
	MaxDepth int

	// do not access / write `_set`. It is used internally.
	_set bool
}

// intFromEnv retrieves `key` from the OS environment.
// if the key is not found, or cannot be expressed as an integer,
// `found` will be false.
func intFromEnv(key string) (val int, found bool) {
	valStr, found := os.LookupEnv(key)
	if !found {
		return
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		found = false
	}
	return
}

func intFromEnvDefault(key string, def int) (val int) {
	val, found := intFromEnv(key)
	if !found {
		val = def
	}
	return
}

func strFromEnvDefault(key string, def string) (val string) {
	val, found := os.LookupEnv(key)
	if !found {
		val = def
	}
	return
}

func boolFromEnv(key string) (val bool, found bool) {
	valStr, found := os.LookupEnv(key)
	if !found {
		return
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		found = false
	}
	return
}

func boolFromEnvDefault(key string, def bool) (val bool) {
	val, found := boolFromEnv(key)
	if !found {
		val = def
	}
	return
}

var config Config

// GetConfig returns the codec configuration.
// Will set from environment if not already set.
func GetConfig() Config {
	if !config._set {
		config.StrictMode = boolFromEnvDefault("ATOMFORGE_STRICTMODE", false)
		config.MaxDepth = intFromEnvDefault("ATOMFORGE_MAXDEPTH", 64)
		config.LogLevel = strings.ToLower(strFromEnvDefault("ATOMFORGE_LOGLEVEL", "info"))
		SetLoggingLevel(config.LogLevel)
		config._set = true
	}
	return config
}

// OverrideConfig replaces the active configuration. Intended for tests
// and for CLI flags that take precedence over the environment.
func OverrideConfig(c Config) {
	c._set = true
	config = c
}

// SetLoggingLevel adjusts the global zerolog level
func SetLoggingLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "none", "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
