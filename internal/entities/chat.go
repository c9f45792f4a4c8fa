package entities

import "time"

type ChatMessage struct {
	ID        string
	SessionID string
	SenderID  string
	Body      string
	SentAt    time.Time
}

type ChatSession struct {
	ID         string
	CustomerID string
	// empty until a dealer is assigned
	DealerID  string
	ProductID string
	Status    ChatStatus
	Messages  []ChatMessage

	CreatedAt time.Time
	UpdatedAt time.Time
	ClosedAt  time.Time
}

func (s ChatSession) IsParticipant(userID string) bool {
	return userID != "" && (userID == s.CustomerID || userID == s.DealerID)
}
