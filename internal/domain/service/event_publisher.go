package service

import (
	"context"
)

// RewardEvent represents a freshly granted reward, published for downstream
// consumers (analytics, pricing refresh). Publishing is best-effort: a
// publish failure never rolls back the grant.
type RewardEvent struct {
	RequestID    string  `json:"request_id,omitempty"` // For distributed tracing
	UserID       string  `json:"user_id"`
	AttractionID string  `json:"attraction_id"`
	Attraction   string  `json:"attraction"`
	RewardPoints int     `json:"reward_points"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	VisitedAt    string  `json:"visited_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRewardEvent publishes a reward-granted event for async processing
	PublishRewardEvent(ctx context.Context, event *RewardEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
