package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher emits LeadSubmittedEvent messages. Publishing is strictly
// best-effort: the visitor's submission already succeeded against the
// backend, so every failure here is logged and swallowed.
type Publisher struct {
	url string
	log *slog.Logger
}

// NewPublisher builds a Publisher for the given AMQP URL. An empty URL
// yields nil, which callers treat as "notifications disabled".
func NewPublisher(url string, log *slog.Logger) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url, log: log}
}

// LeadSubmitted publishes one event to the lead.submitted queue. A fresh
// connection per event keeps the publisher free of reconnect state; lead
// volume on a studio site is far below where that would matter.
func (p *Publisher) LeadSubmitted(ctx context.Context, ev LeadSubmittedEvent) {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("lead notify: dial failed", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("lead notify: channel open failed", "error", err)
		return
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so events survive broker restarts.
	if _, err := ch.QueueDeclare(leadQueueName, true, false, false, false, nil); err != nil {
		p.log.Warn("lead notify: queue declare failed", "error", err)
		return
	}

	body, err := json.Marshal(ev)
	if err != nil {
		p.log.Warn("lead notify: marshal failed", "error", err)
		return
	}

	err = ch.PublishWithContext(ctx, "", leadQueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.log.Warn("lead notify: publish failed", "error", err)
	}
}
