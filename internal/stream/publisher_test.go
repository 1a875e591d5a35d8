package stream

import (
	"errors"
	"testing"
	"time"

	"github.com/eclipse/paho.mqtt.golang"

	"github.com/Faultbox/splinecast/pkg/oati"
	"github.com/Faultbox/splinecast/pkg/spline"
)

type fakeToken struct{ err error }

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Error() error                   { return t.err }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type published struct {
	topic   string
	payload []byte
}

// fakeClient records publishes. Only the methods the publisher touches are
// implemented; anything else panics through the embedded nil interface.
type fakeClient struct {
	mqtt.Client
	published  []published
	publishErr error
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	if c.publishErr != nil {
		return &fakeToken{err: c.publishErr}
	}
	c.published = append(c.published, published{topic: topic, payload: payload.([]byte)})
	return &fakeToken{}
}

func newTestPlayer(t *testing.T) *spline.Player {
	t.Helper()

	asset := &oati.Asset{
		Metadata: oati.Metadata{FrameRate: 30},
		Splines: []oati.Spline{
			{
				Name: "Path001",
				Frames: []oati.Frame{
					{Frame: 0, Points: []oati.Point{{X: 0}, {X: 1}}},
					{Frame: 30, Points: []oati.Point{{X: 10}, {X: 11}}},
				},
			},
			{
				Name: "Path002",
				Frames: []oati.Frame{
					{Frame: 0, Points: []oati.Point{{Y: 0}, {Y: 1}}},
					{Frame: 30, Points: []oati.Point{{Y: 10}, {Y: 11}}},
				},
			},
		},
	}

	p, err := spline.New(asset)
	if err != nil {
		t.Fatalf("building player: %v", err)
	}
	return p
}

func TestPublishDirtyInitialState(t *testing.T) {
	player := newTestPlayer(t)
	client := &fakeClient{}
	pub := NewPublisher(client, "splinecast", 1)

	if n := pub.PublishDirty(player); n != 2 {
		t.Fatalf("expected 2 frames published, got %d", n)
	}

	topics := map[string]bool{}
	for _, p := range client.published {
		topics[p.topic] = true
	}
	if !topics["splinecast/geometry/Path001"] || !topics["splinecast/geometry/Path002"] {
		t.Errorf("unexpected topics %v", topics)
	}

	// Nothing moved since, so nothing republishes.
	if n := pub.PublishDirty(player); n != 0 {
		t.Errorf("expected 0 frames on unchanged player, got %d", n)
	}
}

func TestPublishDirtyAfterSeek(t *testing.T) {
	player := newTestPlayer(t)
	client := &fakeClient{}
	pub := NewPublisher(client, "splinecast", 1)
	pub.PublishDirty(player)

	player.SetTime(0.5)
	if n := pub.PublishDirty(player); n != 2 {
		t.Errorf("expected 2 frames after seek, got %d", n)
	}
}

func TestPublishDirtySkipsHidden(t *testing.T) {
	player := newTestPlayer(t)
	client := &fakeClient{}
	pub := NewPublisher(client, "splinecast", 1)

	player.SetTrackVisible("Path002", false)
	if n := pub.PublishDirty(player); n != 1 {
		t.Fatalf("expected 1 frame with one track hidden, got %d", n)
	}
	if client.published[0].topic != "splinecast/geometry/Path001" {
		t.Errorf("unexpected topic %s", client.published[0].topic)
	}
}

func TestPublishDirtyRetriesFailures(t *testing.T) {
	player := newTestPlayer(t)
	client := &fakeClient{publishErr: errors.New("broker down")}
	pub := NewPublisher(client, "splinecast", 1)

	if n := pub.PublishDirty(player); n != 0 {
		t.Errorf("expected 0 frames on broker failure, got %d", n)
	}

	// Broker recovers; the same versions go out on the next call.
	client.publishErr = nil
	if n := pub.PublishDirty(player); n != 2 {
		t.Errorf("expected 2 frames after recovery, got %d", n)
	}
}

func TestPublishedPayloadDecodes(t *testing.T) {
	player := newTestPlayer(t)
	client := &fakeClient{}
	pub := NewPublisher(client, "splinecast", 1)
	pub.PublishDirty(player)

	var frame GeometryFrame
	if err := frame.UnmarshalBinary(client.published[0].payload); err != nil {
		t.Fatalf("decoding published payload: %v", err)
	}
	if frame.Name != "Path001" {
		t.Errorf("frame name = %q, want Path001", frame.Name)
	}
	if len(frame.Positions) != 6 {
		t.Fatalf("component count = %d, want 6", len(frame.Positions))
	}
	if frame.Positions[0] != 0 || frame.Positions[3] != 1 {
		t.Errorf("unexpected positions %v", frame.Positions)
	}
}
