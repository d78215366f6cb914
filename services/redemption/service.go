package redemption

import (
	"context"

	"campus-rewards/pkg/db/option"
	"campus-rewards/pkg/errutil"
	"campus-rewards/pkg/repository"
	"campus-rewards/services/catalog"
	"campus-rewards/services/member"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service lists the prizes a member's balance qualifies for. Eligibility
// only: there is no redemption commit, so balances are never touched here.
type Service struct {
	db *gorm.DB

	members repository.Repository[member.Member]
	prizes  repository.Repository[catalog.Prize]
}

type ServiceParams struct {
	fx.In
	DB *gorm.DB
}

func NewService(p ServiceParams) *Service {
	return &Service{
		db:      p.DB,
		members: repository.ProvideStore[member.Member](p.DB),
		prizes:  repository.ProvideStore[catalog.Prize](p.DB),
	}
}

// EligiblePrizes returns every prize with points_required <= the member's
// balance, in catalog order.
func (s *Service) EligiblePrizes(ctx context.Context, memberID int64) ([]*catalog.Prize, error) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	if memberID <= 0 {
		return nil, errutil.BadRequest("member id must be positive")
	}

	m, err := s.members.FindOne(ctx, &member.Member{ID: memberID})
	if err != nil {
		zap.L().Error("failed to query member", zap.Int64("member_id", memberID), zap.Error(err))
		return nil, err
	}
	if m == nil {
		return nil, errutil.NotFound("member not found")
	}

	prizes, err := s.prizes.Find(ctx, &catalog.Prize{},
		option.ApplyOperator(option.Condition{
			Field:    "points_required",
			Operator: option.LTE,
			Value:    m.Points,
		}),
		option.WithSortBy(option.QuerySortBy{
			SortBy:  "id",
			OrderBy: "asc",
			Allow:   map[string]bool{"id": true},
		}),
	)
	if err != nil {
		zap.L().Error("failed to list eligible prizes", zap.Int64("member_id", memberID), zap.Error(err))
		return nil, err
	}

	return prizes, nil
}
