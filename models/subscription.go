package models

import "time"

// Subscription plan status values.
const (
	SubscriptionActive    = "active"
	SubscriptionExpired   = "expired"
	SubscriptionCancelled = "cancelled"
)

// Subscription represents a member's plan entitling them to book sessions.
type Subscription struct {
	ID        string    `bson:"id" json:"id"`
	MemberID  string    `bson:"memberId" json:"memberId"`
	Plan      string    `bson:"plan" json:"plan"` // e.g., "monthly", "quarterly", "annual"
	Status    string    `bson:"status" json:"status"`
	StartDate time.Time `bson:"startDate" json:"startDate"`
	EndDate   time.Time `bson:"endDate" json:"endDate"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CoversAt reports whether the subscription entitles booking at the given
// instant. Cancelled plans never cover, regardless of dates.
func (s Subscription) CoversAt(t time.Time) bool {
	if s.Status == SubscriptionCancelled {
		return false
	}
	return !t.Before(s.StartDate) && t.Before(s.EndDate)
}
