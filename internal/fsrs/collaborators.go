package fsrs

import (
	"context"

	"github.com/google/uuid"
)

// CardStore is the persistence contract a host satisfies to load and save
// Card state. The engine never calls it — Schedule is a pure function of
// its arguments — but a host wiring this package into a service needs a
// shape to implement, and this is it.
type CardStore interface {
	Get(ctx context.Context, id string) (Card, error)
	Save(ctx context.Context, id string, card Card) error
}

// ReviewLogSink is the audit contract a host satisfies to persist
// ReviewLog entries produced by Schedule. Also never called by the engine
// itself.
type ReviewLogSink interface {
	Record(ctx context.Context, cardID string, log ReviewLog) error
}

// IDGenerator mints identifiers for new cards and review log entries. The
// engine has no notion of identity — a Card is addressed by whatever key
// a host's CardStore uses — so this exists purely for hosts that want a
// ready implementation rather than writing their own.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is an IDGenerator backed by google/uuid's random (v4)
// generator, for hosts that don't need a specific ID scheme.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}
