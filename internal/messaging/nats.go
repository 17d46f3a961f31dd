// Package messaging publishes domain events. NATS is used when configured;
// otherwise events are dropped by NoopPublisher.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

const (
	SubjectAccountCreated       = "accounts.created"
	SubjectAccountUpdated       = "accounts.updated"
	SubjectAccountStatusChanged = "accounts.status_changed"
	SubjectProductCreated       = "products.created"
	SubjectProductUpdated       = "products.updated"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
	Close()
}

// Event is the envelope written on every subject.
type Event struct {
	Subject    string    `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

type NatsPublisher struct {
	nc  *nats.Conn
	log logrus.FieldLogger
}

// ConnectNats opens a connection that keeps reconnecting in the background.
func ConnectNats(url string, log logrus.FieldLogger) (*NatsPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("business-api"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.WithError(err).Warn("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.WithField("url", c.ConnectedUrl()).Info("nats reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	log.WithField("url", nc.ConnectedUrl()).Info("connected to nats")
	return &NatsPublisher{nc: nc, log: log}, nil
}

func (p *NatsPublisher) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.nc == nil || p.nc.IsClosed() {
		return nats.ErrConnectionClosed
	}

	data, err := json.Marshal(Event{Subject: subject, OccurredAt: time.Now().UTC(), Data: payload})
	if err != nil {
		return fmt.Errorf("encode %s event: %w", subject, err)
	}
	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *NatsPublisher) Close() {
	if p.nc == nil || p.nc.IsClosed() {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.log.WithError(err).Warn("nats drain failed")
		p.nc.Close()
	}
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }

func (NoopPublisher) Close() {}
