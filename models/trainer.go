package models

import "time"

// Trainer represents a studio trainer who can be booked for sessions.
type Trainer struct {
	ID          string    `bson:"id" json:"id"`
	FirstName   string    `bson:"firstName" json:"firstName"`
	LastName    string    `bson:"lastName" json:"lastName"`
	Email       string    `bson:"email" json:"email"`
	PhoneNumber string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Specialties []string  `bson:"specialties,omitempty" json:"specialties,omitempty"` // e.g., "yoga", "strength"
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
