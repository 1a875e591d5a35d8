package stream

import (
	"github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/Faultbox/splinecast/internal/logger"
	"github.com/Faultbox/splinecast/pkg/spline"
)

// Publisher streams track geometry to <prefix>/geometry/<track>. It tracks
// the buffer version last sent per track and publishes only what changed,
// so a paused player costs no broker traffic.
type Publisher struct {
	client mqtt.Client
	prefix string
	qos    byte
	sent   map[*spline.Track]uint64
}

// NewPublisher creates a geometry publisher.
func NewPublisher(client mqtt.Client, prefix string, qos byte) *Publisher {
	return &Publisher{
		client: client,
		prefix: prefix,
		qos:    qos,
		sent:   make(map[*spline.Track]uint64),
	}
}

// PublishDirty sends every visible track whose buffer changed since its last
// successful publish, and returns the number of frames sent. Failed sends
// stay dirty and retry on the next call.
func (p *Publisher) PublishDirty(player *spline.Player) int {
	n := 0
	for _, tr := range player.Tracks() {
		if !tr.Visible() {
			continue
		}
		v := tr.Version()
		if last, ok := p.sent[tr]; ok && last == v {
			continue
		}

		frame := GeometryFrame{Name: tr.Name, Positions: tr.Buffer()}
		payload, err := frame.MarshalBinary()
		if err != nil {
			logger.Error("encoding geometry frame",
				zap.String("track", tr.Name),
				zap.Error(err))
			continue
		}

		token := p.client.Publish(p.topicFor(tr.Name), p.qos, false, payload)
		token.Wait()
		if err := token.Error(); err != nil {
			logger.Error("publishing geometry frame",
				zap.String("track", tr.Name),
				zap.Error(err))
			continue
		}

		p.sent[tr] = v
		n++
	}
	return n
}

func (p *Publisher) topicFor(track string) string {
	return p.prefix + "/geometry/" + track
}
