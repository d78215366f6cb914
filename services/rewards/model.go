package rewards

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// PointEntry records one point award so a member's balance is auditable.
type PointEntry struct {
	ID          string         `gorm:"column:id;primaryKey" json:"id"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"created_at"`
	MemberID    int64          `gorm:"column:member_id;index;not null" json:"member_id"`
	EventID     int64          `gorm:"column:event_id;index" json:"event_id"`
	Points      int64          `gorm:"column:points;not null" json:"points"`
	ReferenceID string         `gorm:"column:reference_id;uniqueIndex" json:"reference_id"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	Metadata    datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
}

// GenerateReferenceCode builds a CHK-YYYYMMDD-XXXXXX check-in reference.
func GenerateReferenceCode() (string, error) {
	datePart := time.Now().UTC().Format("20060102")

	r := make([]byte, 3)
	if _, err := rand.Read(r); err != nil {
		return "", err
	}
	randomPart := strings.ToUpper(fmt.Sprintf("%x", r))

	return fmt.Sprintf("CHK-%s-%s", datePart, randomPart), nil
}
