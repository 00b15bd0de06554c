package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Event interface {
	EventName() string
	OccurredAt() time.Time
	EventID() uuid.UUID
	SchemaVer() int32
}

// Sentinel error for errors.Is checks.
var ErrInvalidEvent = errors.New("invalid event")

// Detailed reasons for logs and diagnostics.
var (
	ErrInvalidEventName     = errors.New("invalid event name")
	ErrInvalidEventProducer = errors.New("invalid event producer")
	ErrInvalidEventTime     = errors.New("invalid event time")
	ErrInvalidEventID       = errors.New("invalid event id")
	ErrInvalidEventSchema   = errors.New("invalid event schema version")
	ErrInvalidEventNil      = errors.New("nil event")
)

// BaseEvent contains common event metadata without business payload.
type BaseEvent struct {
	Name          string
	At            time.Time
	ID            uuid.UUID
	SchemaVersion int32
	Producer      string
}

var _ Event = BaseEvent{} // compile-time contract

// NewBaseEvent creates a baseline event (UTC + UUID + schema v1) stamped at at.
func NewBaseEvent(name, producer string, at time.Time) (BaseEvent, error) {
	name = strings.TrimSpace(name)
	producer = strings.TrimSpace(producer)

	if name == "" {
		return BaseEvent{}, fmt.Errorf("%w: %w", ErrInvalidEvent, ErrInvalidEventName)
	}
	if producer == "" {
		return BaseEvent{}, fmt.Errorf("%w: %w", ErrInvalidEvent, ErrInvalidEventProducer)
	}

	return BaseEvent{
		Name:          name,
		At:            at.UTC(),
		ID:            uuid.New(),
		SchemaVersion: 1,
		Producer:      producer,
	}, nil
}

// Validate performs strict event invariant checks.
// It returns ErrInvalidEvent with a wrapped specific reason.
func (e BaseEvent) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, ErrInvalidEventName)
	}
	if strings.TrimSpace(e.Producer) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, ErrInvalidEventProducer)
	}
	// At must be present and use time.UTC location (strict UTC contract).
	if e.At.IsZero() || e.At.Location() != time.UTC {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, ErrInvalidEventTime)
	}
	if e.ID == uuid.Nil {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, ErrInvalidEventID)
	}
	if e.SchemaVersion <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, ErrInvalidEventSchema)
	}
	return nil
}

func (e BaseEvent) EventName() string     { return e.Name }
func (e BaseEvent) OccurredAt() time.Time { return e.At }
func (e BaseEvent) EventID() uuid.UUID    { return e.ID }
func (e BaseEvent) SchemaVer() int32      { return e.SchemaVersion }
