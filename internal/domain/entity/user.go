package entity

import (
	"time"
)

const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// User is a site visitor account.
type User struct {
	ID           int64     `json:"id" firestore:"id"`
	FirstName    string    `json:"firstName,omitempty" firestore:"firstName,omitempty"`
	LastName     string    `json:"lastName,omitempty" firestore:"lastName,omitempty"`
	Email        string    `json:"email" firestore:"email"`
	Provider     string    `json:"provider" firestore:"provider"`
	RegisteredAt time.Time `json:"registeredAt" firestore:"registeredAt"`
}
