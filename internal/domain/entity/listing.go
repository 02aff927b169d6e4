package entity

import (
	"fmt"
	"strings"
)

const (
	ListingStatusActive = "active"
)

const (
	PlanBasic    = "basic"
	PlanFeatured = "featured"
	PlanPremium  = "premium"
)

// Listing is a property visible on the public site. Price is the display
// string ("€1200/month"), not a numeric value; use ParseDisplayPrice before
// doing arithmetic on it.
type Listing struct {
	ID        int64  `json:"id" firestore:"id"`
	Title     string `json:"title" firestore:"title"`
	Owner     string `json:"owner" firestore:"owner"`
	Type      string `json:"type" firestore:"type"`
	Price     string `json:"price" firestore:"price"`
	Views     int    `json:"views" firestore:"views"`
	Inquiries int    `json:"inquiries" firestore:"inquiries"`
	Status    string `json:"status" firestore:"status"`
	ListedAt  string `json:"listedAt" firestore:"listedAt"`
	Plan      string `json:"plan,omitempty" firestore:"plan,omitempty"`

	Location     string   `json:"location,omitempty" firestore:"location,omitempty"`
	Beds         int      `json:"beds" firestore:"beds"`
	Baths        int      `json:"baths" firestore:"baths"`
	Area         string   `json:"area,omitempty" firestore:"area,omitempty"`
	Image        string   `json:"image,omitempty" firestore:"image,omitempty"`
	Featured     bool     `json:"featured" firestore:"featured"`
	Certified    bool     `json:"certified" firestore:"certified"`
	Description  string   `json:"description,omitempty" firestore:"description,omitempty"`
	PropertyType string   `json:"propertyType,omitempty" firestore:"propertyType,omitempty"`
	City         string   `json:"city,omitempty" firestore:"city,omitempty"`
	Address      string   `json:"address,omitempty" firestore:"address,omitempty"`
	Amenities    []string `json:"amenities,omitempty" firestore:"amenities,omitempty"`
	YearBuilt    int      `json:"yearBuilt,omitempty" firestore:"yearBuilt,omitempty"`
	Floor        string   `json:"floor,omitempty" firestore:"floor,omitempty"`
	TotalFloors  string   `json:"totalFloors,omitempty" firestore:"totalFloors,omitempty"`
	Images       []string `json:"images,omitempty" firestore:"images,omitempty"`
	OwnerEmail   string   `json:"ownerEmail,omitempty" firestore:"ownerEmail,omitempty"`
	OwnerPhone   string   `json:"ownerPhone,omitempty" firestore:"ownerPhone,omitempty"`
}

// FormatDisplayPrice builds the display price from a plain decimal string:
// "€{price}" with a "/month" suffix for rentals.
func FormatDisplayPrice(price, priceType string) string {
	if priceType == PriceTypeRent {
		return fmt.Sprintf("€%s/month", price)
	}
	return fmt.Sprintf("€%s", price)
}

// ParseDisplayPrice strips the currency symbol, thousands separators and any
// "/month" suffix, returning the plain decimal string.
func ParseDisplayPrice(display string) string {
	s := strings.ReplaceAll(display, "€", "")
	s = strings.ReplaceAll(s, ",", "")
	if i := strings.Index(s, "/"); i >= 0 {
		s = s[:i]
	}
	return s
}
