// Package events carries the domain notifications emitted after a write
// commits. Delivery is best effort.
package events

import (
	"context"
	"errors"
	"time"
)

const (
	EventTablesCreated      = "tables_created"
	EventCustomerWelcomed   = "customer_welcomed"
	EventOrderCreated       = "order_created"
	EventOrderStatusUpdated = "order_status_updated"
)

type Event struct {
	Type       string      `json:"event"`
	Data       interface{} `json:"data"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func New(eventType string, data interface{}) Event {
	return Event{Type: eventType, Data: data, OccurredAt: time.Now().UTC()}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Multi fans an event out to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards events.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
