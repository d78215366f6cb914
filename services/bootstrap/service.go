package bootstrap

import (
	"context"

	"campus-rewards/pkg/config"
	"campus-rewards/pkg/repository"
	"campus-rewards/services/catalog"
	"campus-rewards/services/member"
	"campus-rewards/services/rewards"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service prepares the schema and loads the sample catalog on first run.
type Service struct {
	db     *gorm.DB
	config *config.Config

	events  repository.Repository[catalog.Event]
	prizes  repository.Repository[catalog.Prize]
	members repository.Repository[member.Member]
	badges  repository.Repository[member.Badge]
}

type ServiceParams struct {
	fx.In
	DB     *gorm.DB
	Config *config.Config
}

func NewService(p ServiceParams) *Service {
	return &Service{
		db:     p.DB,
		config: p.Config,

		events:  repository.ProvideStore[catalog.Event](p.DB),
		prizes:  repository.ProvideStore[catalog.Prize](p.DB),
		members: repository.ProvideStore[member.Member](p.DB),
		badges:  repository.ProvideStore[member.Badge](p.DB),
	}
}

func (s *Service) Migrate() error {
	return s.db.AutoMigrate(
		&catalog.Event{},
		&catalog.Prize{},
		&member.Member{},
		&member.Badge{},
		&rewards.PointEntry{},
	)
}

// Seed loads the default events, prizes, and members when the store is
// empty. Each collection is seeded independently so a partially loaded
// store is topped up rather than duplicated.
func (s *Service) Seed(ctx context.Context) error {
	if !s.config.Seed.Enable {
		return nil
	}

	if count, err := s.events.Count(ctx, &catalog.Event{}); err != nil {
		return err
	} else if count == 0 {
		if err := s.events.BatchCreate(ctx, catalog.DefaultEvents()); err != nil {
			return err
		}
		zap.L().Info("[bootstrap] seeded events")
	}

	if count, err := s.prizes.Count(ctx, &catalog.Prize{}); err != nil {
		return err
	} else if count == 0 {
		if err := s.prizes.BatchCreate(ctx, catalog.DefaultPrizes()); err != nil {
			return err
		}
		zap.L().Info("[bootstrap] seeded prizes")
	}

	if count, err := s.members.Count(ctx, &member.Member{}); err != nil {
		return err
	} else if count == 0 {
		if err := s.members.BatchCreate(ctx, member.DefaultMembers()); err != nil {
			return err
		}
		if err := s.badges.BatchCreate(ctx, member.DefaultBadges()); err != nil {
			return err
		}
		zap.L().Info("[bootstrap] seeded members")
	}

	return nil
}
