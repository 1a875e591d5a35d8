package stream

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/splinecast/internal/logger"
	"github.com/Faultbox/splinecast/internal/scroll"
	"github.com/Faultbox/splinecast/pkg/spline"
)

// DefaultTickRate is the playback loop frequency in ticks per second.
const DefaultTickRate = 30

// RunnerConfig wires the runner's collaborators. Driver, Publisher and
// Commands are all optional; leaving one nil disables that feature.
type RunnerConfig struct {
	Player    *spline.Player
	Driver    *scroll.Driver
	Publisher *Publisher
	Commands  <-chan Command
	TickRate  int
}

// Runner owns the playback loop. Every touch of the player happens on the
// Run goroutine: inbound commands are drained at the top of each tick, then
// the clock or the scroll driver advances the timeline, then changed
// geometry goes out. When a scroll driver is present it replaces the clock;
// scrubbed playback and timed playback never fight over the position.
type Runner struct {
	player *spline.Player
	driver *scroll.Driver
	pub    *Publisher
	cmds   <-chan Command
	tick   time.Duration

	lastScroll float64
}

// NewRunner builds a runner from its wiring.
func NewRunner(cfg RunnerConfig) *Runner {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Runner{
		player:     cfg.Player,
		driver:     cfg.Driver,
		pub:        cfg.Publisher,
		cmds:       cfg.Commands,
		tick:       time.Second / time.Duration(tickRate),
		lastScroll: math.NaN(),
	}
}

// Run drives playback until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	logger.Info("playback loop started",
		zap.Duration("tick", r.tick),
		zap.Bool("scroll", r.driver != nil),
		zap.Bool("streaming", r.pub != nil))

	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			logger.Info("playback loop stopped")
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			r.step(dt)
		}
	}
}

// step executes one playback tick.
func (r *Runner) step(dt float64) {
	r.drainCommands()

	if r.driver != nil {
		eased := r.driver.Step(dt)
		if eased != r.lastScroll {
			r.player.SetProgress(eased)
			r.lastScroll = eased
		}
	} else {
		r.player.Update(dt)
	}

	if r.pub != nil {
		r.pub.PublishDirty(r.player)
	}
}

func (r *Runner) drainCommands() {
	if r.cmds == nil {
		return
	}
	for {
		select {
		case cmd := <-r.cmds:
			r.apply(cmd)
		default:
			return
		}
	}
}

func (r *Runner) apply(cmd Command) {
	switch cmd.Action {
	case "play":
		r.player.Play()
	case "pause":
		r.player.Pause()
	case "stop":
		r.player.Stop()
	case "seek":
		r.player.SetProgress(cmd.Value)
	case "speed":
		r.player.SetSpeed(cmd.Value)
	case "loop":
		r.player.SetLoop(cmd.Value != 0)
	case "resolution":
		r.player.SetResolution(int(cmd.Value))
	case "scroll":
		if r.driver != nil {
			r.driver.SetTarget(cmd.Value)
		}
	default:
		logger.Warn("unknown control action", zap.String("action", cmd.Action))
	}
}
