package member

import (
	"time"
)

// Member is a campus account holding a point balance and a badge set.
// Points and badges are mutated only by the rewards service inside a
// per-member locked transaction; Points never goes negative.
type Member struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	AvatarURL string    `gorm:"column:avatar_url" json:"avatar"`
	Points    int64     `gorm:"column:points;not null;default:0" json:"points"`

	// Badge names, loaded from the badges table on read.
	Badges []string `gorm:"-" json:"badges"`
}

// Badge is one earned badge. The unique index gives the set its
// grant-once semantics: a duplicate grant cannot be stored.
type Badge struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	MemberID  int64     `gorm:"column:member_id;not null;uniqueIndex:idx_member_badge" json:"member_id"`
	Name      string    `gorm:"column:name;not null;uniqueIndex:idx_member_badge" json:"name"`
}
