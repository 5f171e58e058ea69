// Package publish shares the latest snapshot over MQTT, for home automation
// dashboards that sit next to the e-paper panel.
package publish

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/Tiliavir/paperdash/internal/model"
	"github.com/Tiliavir/paperdash/internal/timecalc"
)

// DefaultTopic is used when Options.Topic is empty.
const DefaultTopic = "paperdash/productivity"

// Options configures the MQTT connection.
type Options struct {
	Broker   string
	Topic    string
	ClientID string
	Username string
	Password string
	Timeout  time.Duration
}

// Publisher sends snapshots as retained JSON messages.
type Publisher struct {
	client  mqtt.Client
	topic   string
	timeout time.Duration
}

// Connect dials the broker.
func Connect(opts Options) (*Publisher, error) {
	if opts.Broker == "" {
		return nil, errors.New("mqtt broker not configured")
	}
	clientID := opts.ClientID
	if clientID == "" {
		clientID = "paperdash-" + uuid.NewString()
	}

	co := mqtt.NewClientOptions().
		AddBroker(opts.Broker).
		SetClientID(clientID).
		SetCleanSession(true).
		SetConnectTimeout(timeoutOrDefault(opts.Timeout))
	if opts.Username != "" {
		co.SetUsername(opts.Username)
		co.SetPassword(opts.Password)
	}

	client := mqtt.NewClient(co)
	tok := client.Connect()
	if !tok.WaitTimeout(timeoutOrDefault(opts.Timeout)) {
		return nil, fmt.Errorf("connecting to %s: timed out", opts.Broker)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", opts.Broker, err)
	}
	return New(client, opts.Topic, opts.Timeout), nil
}

// New wraps an already connected client.
func New(client mqtt.Client, topic string, timeout time.Duration) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{client: client, topic: topic, timeout: timeoutOrDefault(timeout)}
}

// Publish sends snap to the configured topic.
func (p *Publisher) Publish(snap model.MetricsSnapshot) error {
	payload, err := Payload(snap)
	if err != nil {
		return err
	}
	tok := p.client.Publish(p.topic, 1, true, payload)
	if !tok.WaitTimeout(p.timeout) {
		return fmt.Errorf("publishing to %s: timed out", p.topic)
	}
	if err := tok.Error(); err != nil {
		return fmt.Errorf("publishing to %s: %w", p.topic, err)
	}
	return nil
}

// Close disconnects, allowing in-flight messages a quarter second.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}

type payload struct {
	model.MetricsSnapshot
	TodayText    string `json:"today_text"`
	ThisWeekText string `json:"this_week_text"`
}

// Payload is the JSON document published for snap: the snapshot fields plus
// preformatted durations for display.
func Payload(snap model.MetricsSnapshot) ([]byte, error) {
	data, err := json.Marshal(payload{
		MetricsSnapshot: snap,
		TodayText:       timecalc.FormatMinutes(snap.Today),
		ThisWeekText:    timecalc.FormatMinutes(snap.ThisWeek),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return 10 * time.Second
	}
	return d
}
