package catalog

import (
	"time"
)

// Category classifies an event for filtering on the client.
type Category string

const (
	Sports   Category = "sports"
	Music    Category = "music"
	Academic Category = "academic"
	Social   Category = "social"
	Wellness Category = "wellness"
)

// Event is a bookable campus event. RSVPCount is the only mutable field
// and is written exclusively by the rsvp service; 0 <= RSVPCount <= MaxCapacity.
type Event struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"-"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Slug        string    `gorm:"column:slug;index" json:"slug"`
	Category    Category  `gorm:"column:category;type:varchar(20);not null" json:"type"`
	StartsAt    time.Time `gorm:"column:starts_at" json:"date"`
	Location    string    `gorm:"column:location" json:"location"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	ImageURL    string    `gorm:"column:image_url" json:"image"`
	RSVPCount   int64     `gorm:"column:rsvp_count;not null;default:0" json:"rsvp_count"`
	MaxCapacity int64     `gorm:"column:max_capacity;not null" json:"max_capacity"`
}

// Remaining returns the number of open RSVP slots.
func (e *Event) Remaining() int64 {
	return e.MaxCapacity - e.RSVPCount
}

// Prize is a catalog reward. Immutable after creation.
type Prize struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"-"`
	Name           string    `gorm:"column:name;not null" json:"name"`
	PointsRequired int64     `gorm:"column:points_required;not null" json:"points_required"`
	Description    string    `gorm:"column:description;type:text" json:"description"`
	ImageURL       string    `gorm:"column:image_url" json:"image"`
}
