// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"attache/internal/book"
)

// Config holds all attache configuration.
type Config struct {
	Chat   Chat   `yaml:"chat"`
	Window Window `yaml:"window"`
}

// Chat holds session wording.
type Chat struct {
	Greeting string `yaml:"greeting"`
	Prompt   string `yaml:"prompt"`
}

// Window holds birthday-window query settings.
type Window struct {
	Days            int             `yaml:"days"`              // lookahead, today inclusive
	WeekendToMonday bool            `yaml:"weekend_to_monday"` // fold Sat/Sun into Monday
	LeapPolicy      book.LeapPolicy `yaml:"leap_policy"`       // "error" | "feb28" | "mar01"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Chat: Chat{
			Greeting: "Welcome to the assistant bot!",
			Prompt:   "Enter a command: ",
		},
		Window: Window{
			Days:            book.DefaultWindowDays,
			WeekendToMonday: true,
			LeapPolicy:      book.LeapError,
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Window.Days < 1 {
		return fmt.Errorf("config: window.days must be at least 1, got %d", c.Window.Days)
	}
	if !c.Window.LeapPolicy.Valid() {
		return fmt.Errorf("config: window.leap_policy must be %q, %q, or %q, got %q",
			book.LeapError, book.LeapFeb28, book.LeapMar01, c.Window.LeapPolicy)
	}
	if c.Chat.Prompt == "" {
		return errors.New("config: chat.prompt cannot be empty")
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ATTACHE_GREETING, ATTACHE_PROMPT,
// ATTACHE_WINDOW_DAYS, ATTACHE_LEAP_POLICY.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ATTACHE_GREETING"); v != "" {
		c.Chat.Greeting = v
	}
	if v := os.Getenv("ATTACHE_PROMPT"); v != "" {
		c.Chat.Prompt = v
	}
	if v := os.Getenv("ATTACHE_WINDOW_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid ATTACHE_WINDOW_DAYS %q: %w", v, err)
		}
		c.Window.Days = n
	}
	if v := os.Getenv("ATTACHE_LEAP_POLICY"); v != "" {
		c.Window.LeapPolicy = book.LeapPolicy(v)
	}
	return nil
}

// WindowOptions converts the window settings into query options.
func (c *Config) WindowOptions() book.WindowOptions {
	return book.WindowOptions{
		Days:            c.Window.Days,
		WeekendToMonday: c.Window.WeekendToMonday,
		Leap:            c.Window.LeapPolicy,
	}
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Chat   *rawChat   `yaml:"chat"`
	Window *rawWindow `yaml:"window"`
}

type rawChat struct {
	Greeting *string `yaml:"greeting"`
	Prompt   *string `yaml:"prompt"`
}

type rawWindow struct {
	Days            *int             `yaml:"days"`
	WeekendToMonday *bool            `yaml:"weekend_to_monday"`
	LeapPolicy      *book.LeapPolicy `yaml:"leap_policy"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Chat != nil {
		if layer.Chat.Greeting != nil {
			c.Chat.Greeting = *layer.Chat.Greeting
		}
		if layer.Chat.Prompt != nil {
			c.Chat.Prompt = *layer.Chat.Prompt
		}
	}
	if layer.Window != nil {
		if layer.Window.Days != nil {
			c.Window.Days = *layer.Window.Days
		}
		if layer.Window.WeekendToMonday != nil {
			c.Window.WeekendToMonday = *layer.Window.WeekendToMonday
		}
		if layer.Window.LeapPolicy != nil {
			c.Window.LeapPolicy = *layer.Window.LeapPolicy
		}
	}
}
