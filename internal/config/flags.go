package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagAsset  = flag.String("asset", "", "Spline document source (file path or URL)")
	flagBroker = flag.String("broker", "", "MQTT broker URL")
	flagSpeed  = flag.Float64("speed", 0, "Playback speed multiplier")
	flagTick   = flag.Int("tick", 0, "Update ticks per second")
	flagNoLoop = flag.Bool("no-loop", false, "Stop at the end instead of looping")
	flagScroll = flag.Bool("scroll", false, "Drive playback from scroll control messages")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagAsset != "" {
		cfg.Asset.Source = *flagAsset
	}
	if *flagBroker != "" {
		cfg.MQTT.URL = *flagBroker
	}
	if *flagSpeed != 0 {
		cfg.Playback.Speed = *flagSpeed
	}
	if *flagTick > 0 {
		cfg.Playback.TickRate = *flagTick
	}
	if *flagNoLoop {
		cfg.Playback.Loop = false
	}
	if *flagScroll {
		cfg.Scroll.Enabled = true
	}
}
