package usecase

import (
	"context"

	"YenDong/internal/domain/models"
	"YenDong/pkg/logger"
)

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, models.Event) error { return nil }
func (nopPublisher) Close() error { return nil }

// publish never fails the caller. A lost event is logged and counted.
func (d deps) publish(ctx context.Context, ev models.Event) {
	if err := d.pub.Publish(ctx, ev); err != nil {
		d.metrics.RecordPublishError(ev.Type)
		d.log.Warn("event publish failed",
			logger.String("type", ev.Type),
			logger.String("key", ev.Key),
			logger.Error(err),
		)
	}
}
