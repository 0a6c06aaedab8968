package mqtt

import (
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"

	"github.com/Mavwarf/mkicons/internal/assets"
	"github.com/Mavwarf/mkicons/internal/config"
	"github.com/Mavwarf/mkicons/internal/notice"
)

const timeout = 5 * time.Second

// Announce publishes the notice for results using the configured broker,
// retrying connect+publish up to cfg.Retries times.
func Announce(cfg config.MQTT, dir string, results []assets.Result) error {
	payload, err := notice.JSON(dir, results)
	if err != nil {
		return fmt.Errorf("mqtt: encoding notice: %w", err)
	}
	attempts := cfg.Retries
	if attempts == 0 {
		attempts = 1
	}
	return retry.Do(
		func() error {
			return Publish(cfg.Broker, cfg.ClientID, cfg.Topic, string(payload), cfg.QoS, cfg.Retain, cfg.Username, cfg.Password)
		},
		retry.Attempts(attempts),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logrus.WithError(err).Debugf("mqtt: attempt %d failed", n+1)
		}),
	)
}

// Publish connects to an MQTT broker, publishes a message to the given
// topic, and disconnects. Each invocation creates a fresh connection.
func Publish(broker, clientID, topic, message string, qos byte, retain bool, username, password string) error {
	opts := pahomqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(timeout)

	if username != "" {
		opts.SetUsername(username)
	}
	if password != "" {
		opts.SetPassword(password)
	}

	client := pahomqtt.NewClient(opts)
	tok := client.Connect()
	if !tok.WaitTimeout(timeout) {
		return fmt.Errorf("mqtt: connect timeout")
	}
	if tok.Error() != nil {
		return fmt.Errorf("mqtt: connect: %w", tok.Error())
	}
	defer client.Disconnect(250)

	pub := client.Publish(topic, qos, retain, message)
	if !pub.WaitTimeout(timeout) {
		return fmt.Errorf("mqtt: publish timeout")
	}
	if pub.Error() != nil {
		return fmt.Errorf("mqtt: publish: %w", pub.Error())
	}
	return nil
}
