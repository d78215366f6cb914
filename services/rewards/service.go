package rewards

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campus-rewards/pkg/db/option"
	"campus-rewards/pkg/errutil"
	"campus-rewards/pkg/randsource"
	"campus-rewards/pkg/repository"
	"campus-rewards/services/member"

	"github.com/bwmarrin/snowflake"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Point award bounds for a single check-in, inclusive.
const (
	minAward = 10
	maxAward = 50
)

// Service converts check-ins into point awards and badge grants.
//
// The event id is accepted as context and recorded on the point entry but
// does not gate the award: there is no verification that the member
// RSVP'd or that the event is in progress. Known simplification.
type Service struct {
	db   *gorm.DB
	node *snowflake.Node
	rnd  randsource.Source

	members repository.Repository[member.Member]
	badges  repository.Repository[member.Badge]
	entries repository.Repository[PointEntry]

	rules []BadgeRule
}

type ServiceParams struct {
	fx.In
	DB   *gorm.DB
	Node *snowflake.Node
	Rnd  randsource.Source
}

func NewService(p ServiceParams) *Service {
	return &Service{
		db:   p.DB,
		node: p.Node,
		rnd:  p.Rnd,

		members: repository.ProvideStore[member.Member](p.DB),
		badges:  repository.ProvideStore[member.Badge](p.DB),
		entries: repository.ProvideStore[PointEntry](p.DB),

		rules: BadgeRules(),
	}
}

// Result reports a successful check-in.
type Result struct {
	Awarded       bool     `json:"awarded"`
	PointsEarned  int64    `json:"points_earned"`
	NewBalance    int64    `json:"new_balance"`
	BadgesGranted []string `json:"badges_granted"`
	ReferenceID   string   `json:"reference_id"`
}

// CheckIn awards a random number of points in [10, 50], writes a point
// entry, and evaluates the badge rule table. The read-modify-write on the
// member row runs in one locked transaction so two racing check-ins for
// the same member cannot lose an update. A failed check-in mutates nothing.
func (s *Service) CheckIn(ctx context.Context, memberID, eventID int64) (*Result, error) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	opts := []zap.Field{
		zap.String("trace_id", span.SpanContext().TraceID().String()),
		zap.Int64("member_id", memberID),
		zap.Int64("event_id", eventID),
	}

	if memberID <= 0 {
		return nil, errutil.BadRequest("member id must be positive")
	}

	awarded := int64(minAward + s.rnd.Intn(maxAward-minAward+1))

	var out *Result
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		tx = tx.Scopes(option.LockingUpdate)

		memberTx := s.members.WithTrx(tx)
		m, err := memberTx.FindOne(ctx, &member.Member{ID: memberID}, option.WithLockingUpdate())
		if err != nil {
			return err
		}
		if m == nil {
			return errutil.NotFound("member not found")
		}

		reference, err := GenerateReferenceCode()
		if err != nil {
			return err
		}

		meta, _ := json.Marshal(map[string]any{"event_id": eventID})
		entry := &PointEntry{
			ID:          s.node.Generate().String(),
			MemberID:    memberID,
			EventID:     eventID,
			Points:      awarded,
			ReferenceID: reference,
			Description: fmt.Sprintf("Check-in award +%d points", awarded),
			Metadata:    datatypes.JSON(meta),
		}
		if err := s.entries.WithTrx(tx).Create(ctx, entry); err != nil {
			return err
		}

		newBalance := m.Points + awarded
		if err := tx.Model(&member.Member{}).Where("id = ?", memberID).Updates(map[string]any{
			"points":     newBalance,
			"updated_at": time.Now(),
		}).Error; err != nil {
			return err
		}

		granted, err := s.evaluateBadges(ctx, tx, memberID, newBalance)
		if err != nil {
			return err
		}

		out = &Result{
			Awarded:       true,
			PointsEarned:  awarded,
			NewBalance:    newBalance,
			BadgesGranted: granted,
			ReferenceID:   reference,
		}
		return nil
	}); err != nil {
		zap.L().With(opts...).Error("check-in failed", zap.Error(err))
		return nil, err
	}

	zap.L().With(opts...).Info("check-in awarded",
		zap.Int64("points_earned", out.PointsEarned),
		zap.Int64("new_balance", out.NewBalance),
		zap.Strings("badges_granted", out.BadgesGranted))

	return out, nil
}

// evaluateBadges runs the rule table in order against the post-award
// state and grants any newly satisfied badge exactly once.
func (s *Service) evaluateBadges(ctx context.Context, tx *gorm.DB, memberID, balance int64) ([]string, error) {
	entriesTx := s.entries.WithTrx(tx)
	badgesTx := s.badges.WithTrx(tx)

	checkins, err := entriesTx.Count(ctx, &PointEntry{MemberID: memberID})
	if err != nil {
		return nil, err
	}

	owned, err := badgesTx.Find(ctx, &member.Badge{MemberID: memberID})
	if err != nil {
		return nil, err
	}
	held := make(map[string]bool, len(owned))
	for _, b := range owned {
		held[b.Name] = true
	}

	rc := RuleContext{CheckIns: checkins, Balance: balance}

	granted := make([]string, 0)
	for _, rule := range s.rules {
		if held[rule.Name] || !rule.Satisfied(rc) {
			continue
		}
		if err := badgesTx.Create(ctx, &member.Badge{MemberID: memberID, Name: rule.Name}); err != nil {
			return nil, err
		}
		granted = append(granted, rule.Name)
	}

	return granted, nil
}

// History lists a member's point entries, newest first.
func (s *Service) History(ctx context.Context, memberID int64) ([]*PointEntry, error) {
	if memberID <= 0 {
		return nil, errutil.BadRequest("member id must be positive")
	}

	m, err := s.members.FindOne(ctx, &member.Member{ID: memberID})
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errutil.NotFound("member not found")
	}

	return s.entries.Find(ctx, &PointEntry{MemberID: memberID}, option.WithSortBy(option.QuerySortBy{
		SortBy:  "created_at",
		OrderBy: "desc",
		Allow:   map[string]bool{"created_at": true},
	}))
}
