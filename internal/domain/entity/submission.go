package entity

import (
	"time"
)

const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

const (
	PriceTypeSale = "sale"
	PriceTypeRent = "rent"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Submission is a property listing request awaiting moderation. Numeric-looking
// attributes (price, bedrooms, area, ...) are kept as strings; they arrive that
// way from the intake form and are parsed where arithmetic is needed.
type Submission struct {
	ID           int64  `json:"id" firestore:"id"`
	Title        string `json:"title" firestore:"title"`
	Description  string `json:"description" firestore:"description"`
	Price        string `json:"price" firestore:"price"`
	PriceType    string `json:"priceType" firestore:"priceType"`
	PropertyType string `json:"propertyType" firestore:"propertyType"`
	City         string `json:"city" firestore:"city"`
	Address      string `json:"address" firestore:"address"`
	Bedrooms     string `json:"bedrooms" firestore:"bedrooms"`
	Bathrooms    string `json:"bathrooms" firestore:"bathrooms"`
	Area         string `json:"area" firestore:"area"`
	YearBuilt    string `json:"yearBuilt" firestore:"yearBuilt"`
	Floor        string `json:"floor" firestore:"floor"`
	TotalFloors  string `json:"totalFloors" firestore:"totalFloors"`

	SelectedAmenities []string `json:"selectedAmenities" firestore:"selectedAmenities"`
	Images            []string `json:"images,omitempty" firestore:"images,omitempty"`

	OwnerName  string `json:"ownerName" firestore:"ownerName"`
	OwnerEmail string `json:"ownerEmail" firestore:"ownerEmail"`
	OwnerPhone string `json:"ownerPhone" firestore:"ownerPhone"`

	SubmittedAt time.Time `json:"submittedAt" firestore:"submittedAt"`
	Status      string    `json:"status" firestore:"status"`

	// Workflow ladder fields, set once the owner picks a plan and pays.
	SelectedPlan  string `json:"selectedPlan,omitempty" firestore:"selectedPlan,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty" firestore:"paymentStatus,omitempty"`
	WorkflowStep  int    `json:"workflowStep,omitempty" firestore:"workflowStep,omitempty"`
}
