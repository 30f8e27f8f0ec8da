// Package config resolves bytekit settings from the environment.
//
// Command-line flags override these values in cmd/bytekit.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/bytekit/go/bytekit/pkg/breaker"
	"github.com/provide-io/bytekit/go/bytekit/pkg/logging"
	"github.com/provide-io/bytekit/go/bytekit/pkg/score"
)

// Environment variables
const (
	EnvLogLevel    = "BYTEKIT_LOG_LEVEL"
	EnvScorePolicy = "BYTEKIT_SCORE_POLICY"
	EnvSpaceWeight = "BYTEKIT_SPACE_WEIGHT"
	EnvKeys        = "BYTEKIT_KEYS"
	EnvStrictText  = "BYTEKIT_STRICT_TEXT"
)

// Config holds resolved settings.
type Config struct {
	LogLevel    string
	ScorePolicy score.Policy
	SpaceWeight float64
	Keys        breaker.KeyRange
	TextPolicy  breaker.TextPolicy

	// Invalid environment values, reported once a logger exists.
	Warnings []string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:    "warn",
		ScorePolicy: score.Additive,
		SpaceWeight: score.DefaultSpaceWeight,
		Keys:        breaker.PrintableKeys,
		TextPolicy:  breaker.Permissive,
	}
}

// Load starts from Default and applies the environment. Invalid values
// keep the default and add a warning.
func Load() Config {
	c := Default()
	c.LogLevel = logging.GetLogLevel()

	if val := os.Getenv(EnvScorePolicy); val != "" {
		if p, err := score.ParsePolicy(val); err == nil {
			c.ScorePolicy = p
		} else {
			c.warn(EnvScorePolicy, val)
		}
	}

	if val := os.Getenv(EnvSpaceWeight); val != "" {
		if w, err := strconv.ParseFloat(val, 64); err == nil && w >= 0 {
			c.SpaceWeight = w
		} else {
			c.warn(EnvSpaceWeight, val)
		}
	}

	if val := os.Getenv(EnvKeys); val != "" {
		if r, err := breaker.ParseKeyRange(val); err == nil {
			c.Keys = r
		} else {
			c.warn(EnvKeys, val)
		}
	}

	if isEnvTrue(EnvStrictText) {
		c.TextPolicy = breaker.Strict
	}

	return c
}

func (c *Config) warn(key, val string) {
	c.Warnings = append(c.Warnings, key+"="+strconv.Quote(val))
}

// LogWarnings reports invalid environment values.
func (c Config) LogWarnings(logger hclog.Logger) {
	for _, w := range c.Warnings {
		logger.Warn("ignoring invalid environment value", "setting", w)
	}
}

// Scorer builds a scorer from the settings.
func (c Config) Scorer() *score.Scorer {
	return score.New(score.WithPolicy(c.ScorePolicy), score.WithSpaceWeight(c.SpaceWeight))
}

// BreakerOptions returns the key breaker options for the settings.
func (c Config) BreakerOptions(logger hclog.Logger) []breaker.Option {
	return []breaker.Option{
		breaker.WithKeyRange(c.Keys),
		breaker.WithScorer(c.Scorer()),
		breaker.WithTextPolicy(c.TextPolicy),
		breaker.WithLogger(logger.Named("breaker")),
	}
}

// Breaker builds a key breaker from the settings.
func (c Config) Breaker(logger hclog.Logger) *breaker.Breaker {
	return breaker.New(c.BreakerOptions(logger)...)
}

// isEnvTrue reports whether key holds a truthy value: anything
// strconv.ParseBool accepts as true, plus "on" and "yes" in any case.
func isEnvTrue(key string) bool {
	switch val := os.Getenv(key); strings.ToLower(val) {
	case "":
		return false
	case "on", "yes":
		return true
	default:
		on, err := strconv.ParseBool(val)
		return err == nil && on
	}
}
