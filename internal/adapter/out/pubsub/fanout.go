// Package pubsub holds comment event publishers.
package pubsub

import (
	"context"
	"errors"

	"postboard/internal/model"
	"postboard/internal/service"
)

// Fanout hands every event to each publisher and joins their errors.
type Fanout []service.CommentEventPublisher

func (f Fanout) Publish(ctx context.Context, ev model.CommentEvent) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
