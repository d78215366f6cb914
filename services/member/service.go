package member

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

// Service is the read surface over members and their badge sets.
type Service struct {
	db *gorm.DB

	members repository.Repository[Member]
	badges  repository.Repository[Badge]
}

type ServiceParams struct {
	fx.In
	DB *gorm.DB
}

func NewService(p ServiceParams) *Service {
	return &Service{
		db:      p.DB,
		members: repository.ProvideStore[Member](p.DB),
		badges:  repository.ProvideStore[Badge](p.DB),
	}
}

var insertionOrder = option.WithSortBy(option.QuerySortBy{
	SortBy:  "id",
	OrderBy: "asc",
	Allow:   map[string]bool{"id": true},
})

func (s *Service) Get(ctx context.Context, id int64) (*Member, error) {
	if id <= 0 {
		return nil, errutil.BadRequest("member id must be positive")
	}

	m, err := s.members.FindOne(ctx, &Member{ID: id})
	if err != nil {
		zap.L().Error("failed to query member", zap.Int64("member_id", id), zap.Error(err))
		return nil, err
	}
	if m == nil {
		return nil, errutil.NotFound("member not found")
	}

	if err := s.attachBadges(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// List returns all members in insertion order, badge sets attached.
func (s *Service) List(ctx context.Context) ([]*Member, error) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	members, err := s.members.Find(ctx, &Member{}, insertionOrder)
	if err != nil {
		zap.L().Error("failed to list members", zap.Error(err))
		return nil, err
	}

	for _, m := range members {
		if err := s.attachBadges(ctx, m); err != nil {
			return nil, err
		}
	}

	return members, nil
}

func (s *Service) attachBadges(ctx context.Context, m *Member) error {
	badges, err := s.badges.Find(ctx, &Badge{MemberID: m.ID}, option.WithSortBy(option.QuerySortBy{
		SortBy:  "id",
		OrderBy: "asc",
		Allow:   map[string]bool{"id": true},
	}))
	if err != nil {
		zap.L().Error("failed to list badges", zap.Int64("member_id", m.ID), zap.Error(err))
		return err
	}

	names := make([]string, 0, len(badges))
	for _, b := range badges {
		names = append(names, b.Name)
	}
	m.Badges = names

	return nil
}
