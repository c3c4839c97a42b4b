package app

import (
	"context"
	"errors"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/service/events"
	"courier-dispatch/internal/transport/kafka"
)

type eventHandler interface {
	Process(ctx context.Context, e events.Event) error
}

// makeOrdersKafka adapts the event processor into a kafka handler. Domain
// rejections can never succeed on redelivery, so they are marked permanent
// and the consumer commits past them.
func makeOrdersKafka(p eventHandler) kafka.HandleFunc {
	return func(ctx context.Context, event events.Event) error {
		err := p.Process(ctx, event)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, apperr.ErrInvalid),
			errors.Is(err, apperr.ErrNotFound),
			errors.Is(err, apperr.ErrMismatch):
			return kafka.Permanent(err)
		default:
			return err
		}
	}
}
