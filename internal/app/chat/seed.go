package chat

import "time"

// SeedMessages returns the squad chatter preloaded into the "Rooftop
// Sundowner" conversation on a fresh session.
func SeedMessages() []Message {
	now := time.Now()

	return []Message{
		{
			ID:             "m1",
			ConversationID: "p1",
			SenderID:       "u3",
			SenderName:     "Zuri",
			Text:           "Where is everyone?",
			Timestamp:      now.Add(-2 * time.Minute),
		},
		{
			ID:             "m2",
			ConversationID: "p1",
			SenderID:       "u1",
			SenderName:     "Juma",
			Text:           "Just parked!",
			Timestamp:      now.Add(-time.Minute),
		},
	}
}
