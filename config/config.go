// Package config loads the TOML tuning file for a session.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nstehr/kickoff/agent"
	"github.com/nstehr/kickoff/behavior"
	"github.com/nstehr/kickoff/strategy"
)

// Config is the decoded tuning file. Missing keys keep their Default values.
type Config struct {
	LogLevel string           `toml:"log_level"`
	Runner   RunnerConfig     `toml:"runner"`
	Planner  PlannerConfig    `toml:"planner"`
	Posture  strategy.Posture `toml:"posture"`
}

// RunnerConfig tunes the behavior runner.
type RunnerConfig struct {
	MaxStepsPerTick int `toml:"max_steps_per_tick"`
}

// PlannerConfig tunes when the agent replans.
type PlannerConfig struct {
	Interval int `toml:"interval"` // ticks between routine replans
}

// Default returns the built-in configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Runner:   RunnerConfig{MaxStepsPerTick: behavior.DefaultMaxStepsPerTick},
		Planner:  PlannerConfig{Interval: agent.DefaultPlanInterval},
		Posture:  strategy.DefaultPosture(),
	}
}

// Load reads path over the defaults. Unknown keys are logged, not rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	warnUndecoded(md)
	cfg.Validate()
	return cfg, nil
}

// Parse decodes src over the defaults.
func Parse(src string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(src, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	warnUndecoded(md)
	cfg.Validate()
	return cfg, nil
}

// Validate clamps all values to their valid ranges.
func (c *Config) Validate() {
	if c.Runner.MaxStepsPerTick <= 0 {
		c.Runner.MaxStepsPerTick = behavior.DefaultMaxStepsPerTick
	}
	c.Runner.MaxStepsPerTick = clampInt(c.Runner.MaxStepsPerTick, 8, 1024)
	if c.Planner.Interval <= 0 {
		c.Planner.Interval = agent.DefaultPlanInterval
	}
	c.Planner.Interval = clampInt(c.Planner.Interval, 1, 600)
	c.Posture.Validate()
	if c.Posture.Name == "" {
		c.Posture.Name = "Custom"
	}
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// AgentOptions converts the runner and planner sections.
func (c Config) AgentOptions() agent.Options {
	return agent.Options{
		MaxStepsPerTick: c.Runner.MaxStepsPerTick,
		PlanInterval:    c.Planner.Interval,
	}
}

func warnUndecoded(md toml.MetaData) {
	for _, key := range md.Undecoded() {
		slog.Warn("unknown config key", "key", key.String())
	}
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
