// Package main is the entry point for the splinecast playback daemon.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/Faultbox/splinecast/internal/assets"
	"github.com/Faultbox/splinecast/internal/config"
	"github.com/Faultbox/splinecast/internal/logger"
	"github.com/Faultbox/splinecast/internal/palette"
	"github.com/Faultbox/splinecast/internal/scroll"
	"github.com/Faultbox/splinecast/internal/stream"
	"github.com/Faultbox/splinecast/pkg/oati"
	"github.com/Faultbox/splinecast/pkg/spline"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Splinecast ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Fetch and parse the scene document
	manager := assets.NewManager(cfg.Asset.FetchTimeout)
	defer manager.Close()

	data, err := manager.Load(ctx, cfg.Asset.Source)
	if err != nil {
		logger.Error("failed to load scene", zap.Error(err))
		os.Exit(1)
	}

	asset, err := oati.Parse(data)
	if err != nil {
		logger.Error("failed to parse scene", zap.Error(err))
		os.Exit(1)
	}

	player, err := spline.New(asset,
		spline.WithResolution(cfg.Playback.Resolution),
		spline.WithSpeed(cfg.Playback.Speed),
		spline.WithLoop(cfg.Playback.Loop),
	)
	if err != nil {
		logger.Error("failed to build player", zap.Error(err))
		os.Exit(1)
	}
	defer player.Dispose()

	logger.Info("scene loaded",
		zap.String("source", cfg.Asset.Source),
		zap.Int("tracks", len(player.Tracks())),
		zap.Float64("duration", player.Duration()),
		zap.Float64("fps", player.FrameRate()))

	// Colour the tracks
	pal, err := palette.FromConfig(cfg.Palette)
	if err != nil {
		logger.Error("invalid palette", zap.Error(err))
		os.Exit(1)
	}
	pal.Apply(player)

	// Scroll control replaces the clock when enabled
	var driver *scroll.Driver
	if cfg.Scroll.Enabled {
		driver = scroll.NewDriver(cfg.Scroll)
		if cfg.MQTT.URL == "" {
			logger.Warn("scroll control enabled without a broker, no scroll input will arrive")
		}
	} else if cfg.Playback.Autoplay {
		player.Play()
	}

	// Streaming is optional; an empty broker URL means headless playback
	var publisher *stream.Publisher
	var commands <-chan stream.Command
	if cfg.MQTT.URL != "" {
		control := stream.NewControl(cfg.MQTT.TopicPrefix, byte(cfg.MQTT.QoS))
		client, err := stream.Connect(cfg.MQTT, func(c mqtt.Client) {
			if err := control.Subscribe(c); err != nil {
				logger.Error("control subscription failed", zap.Error(err))
			}
		})
		if err != nil {
			logger.Error("broker connection failed", zap.Error(err))
			os.Exit(1)
		}
		defer client.Disconnect(250)

		publisher = stream.NewPublisher(client, cfg.MQTT.TopicPrefix, byte(cfg.MQTT.QoS))
		commands = control.Commands()
	}

	runner := stream.NewRunner(stream.RunnerConfig{
		Player:    player,
		Driver:    driver,
		Publisher: publisher,
		Commands:  commands,
		TickRate:  cfg.Playback.TickRate,
	})

	if err := runner.Run(ctx); err != nil {
		logger.Error("playback loop error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("splinecast closed normally")
}
