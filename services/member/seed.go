package member

// DefaultMembers is the sample roster loaded when the store is empty.
func DefaultMembers() []*Member {
	return []*Member{
		{
			ID:        1,
			Name:      "Alex Johnson",
			Email:     "alex.johnson@lmu.edu",
			AvatarURL: "https://via.placeholder.com/100x100/8C1515/FFFFFF?text=AJ",
			Points:    1250,
		},
		{
			ID:        2,
			Name:      "Sarah Chen",
			Email:     "sarah.chen@lmu.edu",
			AvatarURL: "https://via.placeholder.com/100x100/8C1515/FFFFFF?text=SC",
			Points:    980,
		},
	}
}

// DefaultBadges is the badge set matching DefaultMembers.
func DefaultBadges() []*Badge {
	return []*Badge{
		{MemberID: 1, Name: "First Event"},
		{MemberID: 1, Name: "Sports Fan"},
		{MemberID: 1, Name: "Social Butterfly"},
		{MemberID: 2, Name: "First Event"},
		{MemberID: 2, Name: "Music Lover"},
	}
}
