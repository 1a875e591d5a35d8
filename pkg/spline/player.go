package spline

import (
	"errors"
	"math"

	"github.com/Faultbox/splinecast/pkg/oati"
)

// Player errors.
var (
	ErrNoTracks = errors.New("document has no spline tracks")
)

// PlayState is the playback state machine position. Stopped and Paused
// differ only in current time: Stop rewinds to zero, Pause holds in place.
type PlayState uint8

const (
	Stopped PlayState = iota
	Playing
	Paused
)

// String returns the state name.
func (s PlayState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Option configures a Player at construction.
type Option func(*Player)

// WithResolution sets the per-arc tessellation sample count.
func WithResolution(n int) Option {
	return func(p *Player) { p.resolution = n }
}

// WithSpeed sets the playback rate multiplier. Negative plays in reverse.
func WithSpeed(s float64) Option {
	return func(p *Player) { p.speed = s }
}

// WithLoop sets whether playback wraps at the end.
func WithLoop(loop bool) Option {
	return func(p *Player) { p.loop = loop }
}

// WithFrameRate overrides the document frame rate.
func WithFrameRate(fps float64) Option {
	return func(p *Player) { p.frameRate = fps }
}

// Player drives a set of keyframed spline tracks through time. All state
// transitions and buffer rebuilds happen synchronously inside the call that
// caused them; nothing runs in the background. A Player is not safe for
// concurrent use, callers serialize on one goroutine.
type Player struct {
	tracks []*Track
	byName map[string]*Track

	frameRate  float64
	duration   float64
	resolution int
	speed      float64
	loop       bool
	state      PlayState
	time       float64
}

// New builds a Player from a parsed document. Track frames are sorted by
// frame number, duration derives from the highest frame number across all
// tracks, and every track buffer is built at time zero before New returns so
// the first renderable shape exists ahead of playback.
func New(asset *oati.Asset, opts ...Option) (*Player, error) {
	if asset == nil || len(asset.Splines) == 0 {
		return nil, ErrNoTracks
	}

	p := &Player{
		byName:     make(map[string]*Track, len(asset.Splines)),
		frameRate:  asset.FrameRateOrDefault(),
		resolution: DefaultResolution,
		speed:      1,
		loop:       true,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.frameRate <= 0 {
		p.frameRate = oati.DefaultFrameRate
	}
	if p.resolution < 1 {
		p.resolution = DefaultResolution
	}

	maxFrame := 0
	for i := range asset.Splines {
		tr := newTrack(&asset.Splines[i], asset.Metadata.Closed)
		p.tracks = append(p.tracks, tr)
		if _, ok := p.byName[tr.Name]; !ok {
			p.byName[tr.Name] = tr
		}
		if m := tr.MaxFrame(); m > maxFrame {
			maxFrame = m
		}
	}
	p.duration = float64(maxFrame) / p.frameRate

	p.refreshAll()
	return p, nil
}

// Play starts or resumes playback from the current time.
func (p *Player) Play() {
	p.state = Playing
}

// Pause halts playback keeping the current time. No-op unless playing.
func (p *Player) Pause() {
	if p.state == Playing {
		p.state = Paused
	}
}

// Stop halts playback, rewinds to time zero and rebuilds every track there.
func (p *Player) Stop() {
	p.state = Stopped
	p.time = 0
	p.refreshAll()
}

// Update advances playback by dt seconds scaled by speed, then rebuilds all
// track buffers. No-op unless playing with a positive duration. When looping
// the time wraps modulo duration, so arbitrarily large steps re-enter at the
// remainder; otherwise the time clamps at the range edge and the player
// pauses there.
func (p *Player) Update(dt float64) {
	if p.state != Playing || p.duration <= 0 {
		return
	}

	p.time += dt * p.speed
	if p.loop {
		p.time = math.Mod(p.time, p.duration)
		if p.time < 0 {
			p.time += p.duration
		}
	} else if p.time >= p.duration {
		p.time = p.duration
		p.state = Paused
	} else if p.time < 0 {
		p.time = 0
		p.state = Paused
	}

	p.refreshAll()
}

// SetTime jumps to an absolute time in seconds, clamped to [0, duration],
// and rebuilds every track regardless of play state.
func (p *Player) SetTime(t float64) {
	p.time = clamp(t, 0, p.duration)
	p.refreshAll()
}

// SetProgress jumps to a normalized position, clamped to [0, 1].
func (p *Player) SetProgress(f float64) {
	p.SetTime(clamp(f, 0, 1) * p.duration)
}

// Progress returns the normalized playback position, 0 when the document has
// no duration.
func (p *Player) Progress() float64 {
	if p.duration <= 0 {
		return 0
	}
	return p.time / p.duration
}

// Time returns the current playback time in seconds.
func (p *Player) Time() float64 {
	return p.time
}

// Duration returns the animation length in seconds.
func (p *Player) Duration() float64 {
	return p.duration
}

// FrameRate returns the effective frames-per-second rate.
func (p *Player) FrameRate() float64 {
	return p.frameRate
}

// State returns the playback state.
func (p *Player) State() PlayState {
	return p.state
}

// Speed returns the playback rate multiplier.
func (p *Player) Speed() float64 {
	return p.speed
}

// SetSpeed sets the playback rate multiplier. Negative plays in reverse.
func (p *Player) SetSpeed(s float64) {
	p.speed = s
}

// Loop reports whether playback wraps at the end.
func (p *Player) Loop() bool {
	return p.loop
}

// SetLoop sets whether playback wraps at the end.
func (p *Player) SetLoop(loop bool) {
	p.loop = loop
}

// Resolution returns the per-arc tessellation sample count.
func (p *Player) Resolution() int {
	return p.resolution
}

// SetResolution changes the per-arc sample count and rebuilds every track at
// the current time. Values below 1 reset to the default.
func (p *Player) SetResolution(n int) {
	if n < 1 {
		n = DefaultResolution
	}
	p.resolution = n
	p.refreshAll()
}

// Track returns the track with the given name, or nil. When a document
// repeats a name, the first occurrence wins; later duplicates still animate
// but are reachable only through Tracks.
func (p *Player) Track(name string) *Track {
	return p.byName[name]
}

// Tracks returns the live track list in document order.
func (p *Player) Tracks() []*Track {
	return p.tracks
}

// SetTrackVisible toggles one track by name. Unknown names are ignored.
func (p *Player) SetTrackVisible(name string, visible bool) {
	if tr := p.byName[name]; tr != nil {
		tr.SetVisible(visible)
	}
}

// SetAllVisible toggles every track.
func (p *Player) SetAllVisible(visible bool) {
	for _, tr := range p.tracks {
		tr.SetVisible(visible)
	}
}

// SetTrackMaterial assigns a material reference to one track by name.
// Unknown names are ignored.
func (p *Player) SetTrackMaterial(name string, m Material) {
	if tr := p.byName[name]; tr != nil {
		tr.SetMaterial(m)
	}
}

// SetAllMaterials assigns one material reference to every track.
func (p *Player) SetAllMaterials(m Material) {
	for _, tr := range p.tracks {
		tr.SetMaterial(m)
	}
}

// AddAll inserts every track into the scene.
func (p *Player) AddAll(s Scene) {
	for _, tr := range p.tracks {
		s.AddTrack(tr)
	}
}

// RemoveAll removes every track from the scene.
func (p *Player) RemoveAll(s Scene) {
	for _, tr := range p.tracks {
		s.RemoveTrack(tr)
	}
}

// Dispose releases every derived buffer and empties the track list. The
// player is inert afterwards; playback calls become no-ops. A fresh document
// load produces a fresh instance, disposal is not reversible.
func (p *Player) Dispose() {
	for _, tr := range p.tracks {
		tr.buffer = nil
		tr.Frames = nil
	}
	p.tracks = nil
	p.byName = nil
	p.state = Stopped
	p.time = 0
	p.duration = 0
}

func (p *Player) refreshAll() {
	target := p.time * p.frameRate
	for _, tr := range p.tracks {
		tr.refresh(target, p.resolution)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
