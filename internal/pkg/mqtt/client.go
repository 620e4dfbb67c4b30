package mqtt

import (
	"fmt"
	"log/slog"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

type Config struct {
	BrokerURL string
	ClientID  string
	Username  string
	Password  string
}

// Handler receives one raw message from a subscribed topic.
type Handler func(topic string, payload []byte)

// Client is a thin wrapper over the paho MQTT client used to consume the
// face-terminal feeds. Reconnection and resubscription are delegated to
// paho; handlers must tolerate redelivery.
type Client struct {
	inner  paho.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	opts := paho.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOrderMatters(true)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	opts.SetOnConnectHandler(func(paho.Client) {
		logger.Info("mqtt connected", "broker", cfg.BrokerURL)
	})
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		logger.Warn("mqtt connection lost", "error", err)
	})

	return &Client{
		inner:  paho.NewClient(opts),
		logger: logger,
	}
}

func (c *Client) Connect() error {
	token := c.inner.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt connect: %w", err)
	}
	return nil
}

// Subscribe registers a handler for one topic at QoS 1. The handler runs on
// paho's router goroutine; long work must be handed off to a queue.
func (c *Client) Subscribe(topic string, handler Handler) error {
	token := c.inner.Subscribe(topic, 1, func(_ paho.Client, msg paho.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt subscribe %q: %w", topic, err)
	}
	c.logger.Info("mqtt subscribed", "topic", topic)
	return nil
}

func (c *Client) Close() {
	c.inner.Disconnect(250)
}
