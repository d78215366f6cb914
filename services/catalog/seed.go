package catalog

import (
	"time"

	"github.com/gosimple/slug"
)

// DefaultEvents is the sample catalog loaded when the store is empty.
func DefaultEvents() []*Event {
	events := []*Event{
		{
			ID:          1,
			Title:       "LMU Basketball Game vs USC",
			Category:    Sports,
			StartsAt:    time.Date(2024, 2, 15, 19, 0, 0, 0, time.UTC),
			Location:    "Gersten Pavilion",
			Description: "Cheer on the Lions as they take on USC!",
			ImageURL:    "https://via.placeholder.com/300x200/8C1515/FFFFFF?text=LMU+Basketball",
			RSVPCount:   45,
			MaxCapacity: 100,
		},
		{
			ID:          2,
			Title:       "Spring Concert in the Sunken Garden",
			Category:    Music,
			StartsAt:    time.Date(2024, 2, 20, 18, 0, 0, 0, time.UTC),
			Location:    "Sunken Garden",
			Description: "Live music under the stars!",
			ImageURL:    "https://via.placeholder.com/300x200/8C1515/FFFFFF?text=Spring+Concert",
			RSVPCount:   78,
			MaxCapacity: 150,
		},
		{
			ID:          3,
			Title:       "Study Night at the Library",
			Category:    Academic,
			StartsAt:    time.Date(2024, 2, 18, 20, 0, 0, 0, time.UTC),
			Location:    "William H. Hannon Library",
			Description: "Group study session with snacks provided!",
			ImageURL:    "https://via.placeholder.com/300x200/8C1515/FFFFFF?text=Study+Night",
			RSVPCount:   23,
			MaxCapacity: 50,
		},
	}

	for _, e := range events {
		e.Slug = slug.Make(e.Title)
	}

	return events
}

// DefaultPrizes is the sample prize catalog loaded when the store is empty.
func DefaultPrizes() []*Prize {
	return []*Prize{
		{
			ID:             1,
			Name:           "LMU Hoodie",
			PointsRequired: 500,
			Description:    "Comfortable LMU branded hoodie",
			ImageURL:       "https://via.placeholder.com/200x200/8C1515/FFFFFF?text=Hoodie",
		},
		{
			ID:             2,
			Name:           "Campus Dining Credit",
			PointsRequired: 300,
			Description:    "$25 credit for campus dining",
			ImageURL:       "https://via.placeholder.com/200x200/8C1515/FFFFFF?text=Dining",
		},
		{
			ID:             3,
			Name:           "Bookstore Gift Card",
			PointsRequired: 750,
			Description:    "$50 gift card for the LMU bookstore",
			ImageURL:       "https://via.placeholder.com/200x200/8C1515/FFFFFF?text=Books",
		},
	}
}
