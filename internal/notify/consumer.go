package notify

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartLeadConsumer consumes lead.submitted events and appends each one to
// logs/leads.log as a single human-readable line, giving administrators a
// local trail of incoming requests even when the backend is unreachable.
// It runs a reconnect loop with capped backoff and never returns under
// normal operation; call it in its own goroutine.
func StartLeadConsumer(url string, log *slog.Logger) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Warn("lead consumer: dial failed", "error", err, "retry_in", backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn, log); err != nil {
			log.Warn("lead consumer: loop ended, reconnecting", "error", err)
			_ = conn.Close()
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection, log *slog.Logger) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(leadQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(leadQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := appendLeadLog(d.Body); err != nil {
			log.Warn("lead consumer: handle message failed", "error", err)
			// Reject without requeue to avoid a poison-message loop.
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func appendLeadLog(body []byte) error {
	var ev LeadSubmittedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(filepath.Join("logs", "leads.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] Lead submitted | lead_id=%d | name=%q | phone=%q | email=%q | location_id=%d | notes=%q\n",
		ev.CreatedAt, ev.LeadID, ev.FullName, ev.Phone, ev.Email, ev.LocationID, ev.Notes)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
