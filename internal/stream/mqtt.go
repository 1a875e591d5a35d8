package stream

import (
	"fmt"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/Faultbox/splinecast/internal/config"
	"github.com/Faultbox/splinecast/internal/logger"
)

// Connect dials the broker described by cfg and waits for the session to
// come up. onConnect runs on every successful (re)connect, which is where
// subscriptions belong so they survive reconnects.
func Connect(cfg config.MQTTConfig, onConnect mqtt.OnConnectHandler) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true)
	if onConnect != nil {
		opts.SetOnConnectHandler(onConnect)
	}
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("broker connection lost", zap.Error(err))
	})

	client := mqtt.NewClient(opts)

	token := client.Connect()
	if cfg.ConnectTimeout > 0 {
		if !token.WaitTimeout(cfg.ConnectTimeout) {
			return nil, fmt.Errorf("connecting to %s: timed out after %s", cfg.URL, cfg.ConnectTimeout)
		}
	} else {
		token.Wait()
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", cfg.URL, err)
	}

	logger.Info("connected to broker", zap.String("url", cfg.URL))
	return client, nil
}
