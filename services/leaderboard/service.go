package leaderboard

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"campus-rewards/pkg/config"
	"campus-rewards/services/member"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const cacheKey = "leaderboard:rank"

// Service derives a points-descending ranking over all members. Pure
// read path; the optional redis cache only trades freshness for load,
// never correctness.
type Service struct {
	members *member.Service
	rdb     *redis.Client
	ttl     time.Duration

	group singleflight.Group
}

type ServiceParams struct {
	fx.In
	Members *member.Service
	Redis   *redis.Client `optional:"true"`
	Config  *config.Config
}

func NewService(p ServiceParams) *Service {
	ttl := p.Config.Leaderboard.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Second
	}

	return &Service{
		members: p.Members,
		rdb:     p.Redis,
		ttl:     ttl,
	}
}

// Rank returns every member sorted by points descending. The sort is
// stable over insertion order, so equal-point members keep their original
// relative order.
func (s *Service) Rank(ctx context.Context) ([]*member.Member, error) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var ranked []*member.Member
			if err := json.Unmarshal(cached, &ranked); err == nil {
				return ranked, nil
			}
		}
	}

	v, err, _ := s.group.Do(cacheKey, func() (any, error) {
		return s.compute(ctx)
	})
	if err != nil {
		return nil, err
	}

	return v.([]*member.Member), nil
}

func (s *Service) compute(ctx context.Context) ([]*member.Member, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]*member.Member, len(members))
	copy(ranked, members)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})

	if s.rdb != nil {
		if payload, err := json.Marshal(ranked); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, payload, s.ttl).Err(); err != nil {
				zap.L().Warn("failed to cache leaderboard", zap.Error(err))
			}
		}
	}

	return ranked, nil
}
