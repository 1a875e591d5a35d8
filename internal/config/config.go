// Package config handles playback daemon configuration loading and
// management.
package config

import "time"

// Config holds all daemon settings.
type Config struct {
	Asset    AssetConfig    `yaml:"asset"`
	Playback PlaybackConfig `yaml:"playback"`
	Scroll   ScrollConfig   `yaml:"scroll"`
	Palette  PaletteConfig  `yaml:"palette"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AssetConfig locates the spline document to play.
type AssetConfig struct {
	Source       string        `yaml:"source"` // file path or http(s) URL
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
}

// PlaybackConfig holds playback parameters.
type PlaybackConfig struct {
	Speed      float64 `yaml:"speed"`
	Loop       bool    `yaml:"loop"`
	Resolution int     `yaml:"resolution"` // samples per Bezier arc
	TickRate   int     `yaml:"tick_rate"`  // update ticks per second
	Autoplay   bool    `yaml:"autoplay"`
}

// ScrollConfig holds scroll-driven playback settings.
type ScrollConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Easing    string  `yaml:"easing"`
	Smoothing float64 `yaml:"smoothing"`
}

// PaletteConfig holds glow material assignment settings. Colors maps track
// names to hex colors; unlisted tracks get gradient-derived hues.
type PaletteConfig struct {
	Colors    map[string]string `yaml:"colors"`
	Intensity float32           `yaml:"intensity"`
}

// MQTTConfig holds broker connection settings. An empty URL disables
// streaming entirely (headless playback).
type MQTTConfig struct {
	URL            string        `yaml:"url"`
	Username       string        `yaml:"username"`
	Password       string        `yaml:"password"`
	ClientID       string        `yaml:"client_id"`
	TopicPrefix    string        `yaml:"topic_prefix"`
	QoS            int           `yaml:"qos"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Asset: AssetConfig{
			Source:       "scene.oati.json",
			FetchTimeout: 10 * time.Second,
		},
		Playback: PlaybackConfig{
			Speed:      1.0,
			Loop:       true,
			Resolution: 20,
			TickRate:   30,
			Autoplay:   true,
		},
		Scroll: ScrollConfig{
			Enabled:   false,
			Easing:    "in-out-quad",
			Smoothing: 0.15,
		},
		Palette: PaletteConfig{
			Intensity: 1.0,
		},
		MQTT: MQTTConfig{
			URL:            "",
			ClientID:       "splinecast",
			TopicPrefix:    "splinecast",
			QoS:            1,
			ConnectTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
