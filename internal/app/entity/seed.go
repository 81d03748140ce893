package entity

import "ukoradar/internal/app/model"

// ViewerID is the acting viewer's entity id within their own session.
const ViewerID = "me"

// SeedUsers returns the mock squad shown on a fresh session's radar.
func SeedUsers() []model.User {
	return []model.User{
		{
			ID:       "u1",
			Name:     "Juma",
			Avatar:   "https://picsum.photos/50/50?random=1",
			Status:   model.StatusReady,
			Position: model.Position{X: 20, Y: -30},
			Distance: 0.5,
		},
		{
			ID:       "u2",
			Name:     "Amani",
			Avatar:   "https://picsum.photos/50/50?random=2",
			Status:   model.StatusChilling,
			Position: model.Position{X: -45, Y: 10},
			Distance: 1.2,
		},
		{
			ID:       "u3",
			Name:     "Zuri",
			Avatar:   "https://picsum.photos/50/50?random=3",
			Status:   model.StatusHosting,
			Position: model.Position{X: 10, Y: 50},
			Distance: 0.8,
		},
		{
			ID:       "u4",
			Name:     "Kofi",
			Avatar:   "https://picsum.photos/50/50?random=4",
			Status:   model.StatusReady,
			Position: model.Position{X: -20, Y: -20},
			Distance: 0.3,
		},
	}
}

// SeedParties returns the mock parties broadcast on a fresh session's radar.
func SeedParties() []model.Party {
	chill, _ := model.NewPresetVibe(string(model.VibeChill))
	rager, _ := model.NewPresetVibe(string(model.VibeRager))
	gaming, _ := model.NewPresetVibe(string(model.VibeGaming))

	return []model.Party{
		{
			ID:          "p1",
			HostID:      "u3",
			Title:       "Rooftop Sundowner",
			Description: "Afrobeats and chill vibes on the roof. BYOB.",
			Vibe:        chill,
			StartTime:   "20:00",
			Capacity:    30,
			Attendees:   12,
			Position:    model.Position{X: 10, Y: 50},
			Distance:    0.8,
			CoverImage:  "https://picsum.photos/400/200?random=10",
			Icon:        "music",
			HypeScore:   85,
		},
		{
			ID:          "p2",
			HostID:      "u5",
			Title:       "Neon Basement Rave",
			Description: "Deep house all night. No entry after 11PM.",
			Vibe:        rager,
			StartTime:   "22:00",
			Capacity:    100,
			Attendees:   45,
			Position:    model.Position{X: -60, Y: -10},
			Distance:    2.5,
			CoverImage:  "https://picsum.photos/400/200?random=11",
			Icon:        "zap",
			EntryFee:    500,
			HypeScore:   95,
		},
		{
			ID:          "p3",
			HostID:      "u6",
			Title:       "FIFA Tournament",
			Description: "Winner takes the pot. Snacks provided.",
			Vibe:        gaming,
			StartTime:   "19:00",
			Capacity:    10,
			Attendees:   6,
			Position:    model.Position{X: 80, Y: 20},
			Distance:    3.1,
			CoverImage:  "https://picsum.photos/400/200?random=12",
			Icon:        "game",
			HypeScore:   40,
		},
	}
}
