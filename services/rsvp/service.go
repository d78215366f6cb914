package rsvp

import (
	"context"

	"campus-rewards/pkg/errutil"
	"campus-rewards/pkg/repository"
	"campus-rewards/services/catalog"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service owns the capacity-bounded RSVP counter on events.
//
// RSVPs are an aggregate counter, not per-member records: every accepted
// call increments the count, so a member double-submitting is
// indistinguishable from two members. Known limitation carried over from
// the product behavior.
type Service struct {
	db *gorm.DB

	events repository.Repository[catalog.Event]
}

type ServiceParams struct {
	fx.In
	DB *gorm.DB
}

func NewService(p ServiceParams) *Service {
	return &Service{
		db:     p.DB,
		events: repository.ProvideStore[catalog.Event](p.DB),
	}
}

// Result reports an accepted RSVP.
type Result struct {
	Accepted bool  `json:"accepted"`
	NewCount int64 `json:"new_count"`
	Capacity int64 `json:"capacity"`
}

// AttemptRSVP takes one slot on the event, or fails with NotFound/Conflict.
// The capacity check and the increment are a single guarded UPDATE, so two
// racing attempts on the last slot can never both succeed.
func (s *Service) AttemptRSVP(ctx context.Context, eventID int64) (*Result, error) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	opts := []zap.Field{
		zap.String("trace_id", span.SpanContext().TraceID().String()),
		zap.Int64("event_id", eventID),
	}

	if eventID <= 0 {
		return nil, errutil.BadRequest("event id must be positive")
	}

	var out *Result
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&catalog.Event{}).
			Where("id = ? AND rsvp_count < max_capacity", eventID).
			Update("rsvp_count", gorm.Expr("rsvp_count + 1"))
		if res.Error != nil {
			return res.Error
		}

		event, err := s.events.WithTrx(tx).FindOne(ctx, &catalog.Event{ID: eventID})
		if err != nil {
			return err
		}
		if event == nil {
			return errutil.NotFound("event not found")
		}

		if res.RowsAffected == 0 {
			zap.L().With(opts...).Warn("rsvp rejected, event full",
				zap.Int64("capacity", event.MaxCapacity))
			return errutil.Conflict("event is full")
		}

		out = &Result{
			Accepted: true,
			NewCount: event.RSVPCount,
			Capacity: event.MaxCapacity,
		}
		return nil
	}); err != nil {
		return nil, err
	}

	zap.L().With(opts...).Info("rsvp accepted",
		zap.Int64("new_count", out.NewCount), zap.Int64("capacity", out.Capacity))

	return out, nil
}
