package usecase

import (
	"context"
	"strconv"

	"YenDong/internal/domain/models"
	drepo "YenDong/internal/domain/repository"
	"YenDong/pkg/logger"
)

// AlertService registers rate alerts. Input is expected to be validated already.
type AlertService struct {
	deps
	registry drepo.AlertRegistry
}

func NewAlertService(registry drepo.AlertRegistry, opts ...Option) *AlertService {
	d := newDeps(opts)
	d.log = d.log.With(logger.String("component", "alert_service"))
	return &AlertService{deps: d, registry: registry}
}

func (s *AlertService) Create(ctx context.Context, email string, targetRate float64, isAbove bool) models.Alert {
	a := s.registry.Create(email, targetRate, isAbove, s.clock())
	s.metrics.RecordAlertCreated()
	s.log.Info("alert created",
		logger.Int64("id", a.ID),
		logger.Float64("target_rate", a.TargetRate),
		logger.Bool("is_above", a.IsAbove),
	)
	s.publish(ctx, models.NewEvent(models.EventAlertCreated, strconv.FormatInt(a.ID, 10), a.Created, a))
	return a
}

// List returns alerts in insertion order.
func (s *AlertService) List(_ context.Context) []models.Alert {
	return s.registry.List()
}
