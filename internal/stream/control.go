package stream

import (
	"encoding/json"
	"fmt"

	"github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/Faultbox/splinecast/internal/logger"
)

// Command is one inbound control message. Value is ignored by actions that
// take no argument.
//
//	{"action": "seek", "value": 0.5}
type Command struct {
	Action string  `json:"action"`
	Value  float64 `json:"value"`
}

// Control receives playback commands over MQTT and queues them for the
// runner. The broker invokes handlers on its own goroutines, so the handler
// only decodes and forwards; the runner applies commands on its tick.
type Control struct {
	topic string
	qos   byte
	cmds  chan Command
}

// NewControl creates a control receiver for <prefix>/control.
func NewControl(prefix string, qos byte) *Control {
	return &Control{
		topic: prefix + "/control",
		qos:   qos,
		cmds:  make(chan Command, 16),
	}
}

// Subscribe registers the control topic. Call it from the broker's
// on-connect callback so the subscription survives reconnects.
func (c *Control) Subscribe(client mqtt.Client) error {
	token := client.Subscribe(c.topic, c.qos, c.handleMessage)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribing to %s: %w", c.topic, err)
	}
	logger.Info("listening for control commands", zap.String("topic", c.topic))
	return nil
}

// Commands returns the inbound command queue.
func (c *Control) Commands() <-chan Command {
	return c.cmds
}

func (c *Control) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var cmd Command
	if err := json.Unmarshal(msg.Payload(), &cmd); err != nil {
		logger.Warn("discarding malformed control message",
			zap.String("topic", msg.Topic()),
			zap.Error(err))
		return
	}

	select {
	case c.cmds <- cmd:
	default:
		logger.Warn("control queue full, dropping command",
			zap.String("action", cmd.Action))
	}
}
