package catalog

import (
	"context"

	"campus-rewards/pkg/db/option"
	"campus-rewards/pkg/errutil"
	"campus-rewards/pkg/repository"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service is the read surface over the event and prize catalog.
type Service struct {
	db *gorm.DB

	events repository.Repository[Event]
	prizes repository.Repository[Prize]
}

type ServiceParams struct {
	fx.In
	DB *gorm.DB
}

func NewService(p ServiceParams) *Service {
	return &Service{
		db:     p.DB,
		events: repository.ProvideStore[Event](p.DB),
		prizes: repository.ProvideStore[Prize](p.DB),
	}
}

var insertionOrder = option.WithSortBy(option.QuerySortBy{
	SortBy:  "id",
	OrderBy: "asc",
	Allow:   map[string]bool{"id": true},
})

func (s *Service) GetEvent(ctx context.Context, id int64) (*Event, error) {
	if id <= 0 {
		return nil, errutil.BadRequest("event id must be positive")
	}

	event, err := s.events.FindOne(ctx, &Event{ID: id})
	if err != nil {
		zap.L().Error("failed to query event", zap.Int64("event_id", id), zap.Error(err))
		return nil, err
	}
	if event == nil {
		return nil, errutil.NotFound("event not found")
	}

	return event, nil
}

func (s *Service) GetPrize(ctx context.Context, id int64) (*Prize, error) {
	if id <= 0 {
		return nil, errutil.BadRequest("prize id must be positive")
	}

	prize, err := s.prizes.FindOne(ctx, &Prize{ID: id})
	if err != nil {
		zap.L().Error("failed to query prize", zap.Int64("prize_id", id), zap.Error(err))
		return nil, err
	}
	if prize == nil {
		return nil, errutil.NotFound("prize not found")
	}

	return prize, nil
}

// ListEvents returns all events in insertion order.
func (s *Service) ListEvents(ctx context.Context) ([]*Event, error) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	events, err := s.events.Find(ctx, &Event{}, insertionOrder)
	if err != nil {
		zap.L().Error("failed to list events", zap.Error(err))
		return nil, err
	}

	return events, nil
}

// ListPrizes returns all prizes in insertion order.
func (s *Service) ListPrizes(ctx context.Context) ([]*Prize, error) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	prizes, err := s.prizes.Find(ctx, &Prize{}, insertionOrder)
	if err != nil {
		zap.L().Error("failed to list prizes", zap.Error(err))
		return nil, err
	}

	return prizes, nil
}
