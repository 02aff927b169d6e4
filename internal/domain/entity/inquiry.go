package entity

import (
	"time"
)

// Inquiry is a contact-form message about a specific property.
type Inquiry struct {
	ID            int64     `json:"id" firestore:"id"`
	PropertyID    int64     `json:"propertyId" firestore:"propertyId"`
	PropertyTitle string    `json:"propertyTitle" firestore:"propertyTitle"`
	Name          string    `json:"name" firestore:"name"`
	Email         string    `json:"email" firestore:"email"`
	Phone         string    `json:"phone" firestore:"phone"`
	Message       string    `json:"message" firestore:"message"`
	SubmittedAt   time.Time `json:"submittedAt" firestore:"submittedAt"`
}
