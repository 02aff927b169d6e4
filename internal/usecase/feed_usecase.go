package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"piramida/internal/domain/entity"
	"piramida/internal/domain/repository"
	"piramida/pkg/errors"
)

// Fallbacks applied when a record predates a field or a submission never
// carried it.
const (
	defaultOwnerName  = "Sami Spahiu"
	defaultOwnerEmail = "info@piramidagroup.com"
	defaultOwnerPhone = "+383 44 613 293"
	placeholderImage  = "/placeholder.svg?height=300&width=400"
	defaultYearBuilt  = 2020
)

// Sentinels accepted by the public filters.
const (
	AllCities = "All Cities"
	AllTypes  = "All Types"
)

type FeedUseCase struct {
	listingRepo    repository.ListingRepository
	submissionRepo repository.SubmissionRepository
}

func NewFeedUseCase(listingRepo repository.ListingRepository, submissionRepo repository.SubmissionRepository) *FeedUseCase {
	return &FeedUseCase{
		listingRepo:    listingRepo,
		submissionRepo: submissionRepo,
	}
}

// FeedFilter holds the conjunctive public-page filters. Zero values mean
// "no constraint" (MaxPrice 0 disables the price ceiling).
type FeedFilter struct {
	ListingType  string // "sale", "rent" or "all"
	City         string
	PropertyType string
	Query        string
	MinPrice     int
	MaxPrice     int
}

func projectListing(listing *entity.Listing) entity.Property {
	location := listing.Location
	if location == "" {
		location = listing.City
	}
	city := listing.City
	if city == "" {
		city = listing.Location
	}
	description := listing.Description
	if description == "" {
		description = fmt.Sprintf("Beautiful %s in %s", strings.ToLower(listing.Title), location)
	}
	amenities := listing.Amenities
	if len(amenities) == 0 {
		amenities = []string{"Parking", "Balcony", "Central Heating"}
	}
	yearBuilt := listing.YearBuilt
	if yearBuilt == 0 {
		yearBuilt = defaultYearBuilt
	}
	propertyType := listing.PropertyType
	if propertyType == "" {
		propertyType = "Apartment"
	}
	images := listing.Images
	if len(images) == 0 {
		images = []string{listing.Image}
	}
	ownerEmail := listing.OwnerEmail
	if ownerEmail == "" {
		ownerEmail = defaultOwnerEmail
	}
	ownerPhone := listing.OwnerPhone
	if ownerPhone == "" {
		ownerPhone = defaultOwnerPhone
	}

	return entity.Property{
		ID:           listing.ID,
		Title:        listing.Title,
		Price:        entity.ParseDisplayPrice(listing.Price),
		Type:         listing.Type,
		Location:     location,
		Beds:         listing.Beds,
		Baths:        listing.Baths,
		Area:         listing.Area,
		Image:        listing.Image,
		Featured:     listing.Featured,
		Certified:    listing.Certified,
		Description:  description,
		Amenities:    amenities,
		YearBuilt:    yearBuilt,
		PropertyType: propertyType,
		City:         city,
		Images:       images,
		Address:      listing.Address,
		Floor:        listing.Floor,
		TotalFloors:  listing.TotalFloors,
		OwnerName:    listing.Owner,
		OwnerEmail:   ownerEmail,
		OwnerPhone:   ownerPhone,
	}
}

func projectSubmission(sub *entity.Submission) entity.Property {
	beds, _ := strconv.Atoi(sub.Bedrooms)
	baths, _ := strconv.Atoi(sub.Bathrooms)
	yearBuilt, err := strconv.Atoi(sub.YearBuilt)
	if err != nil || yearBuilt == 0 {
		yearBuilt = defaultYearBuilt
	}

	image := placeholderImage
	if len(sub.Images) > 0 {
		image = sub.Images[0]
	}
	amenities := sub.SelectedAmenities
	if amenities == nil {
		amenities = []string{}
	}
	images := sub.Images
	if images == nil {
		images = []string{}
	}

	return entity.Property{
		ID:           sub.ID,
		Title:        sub.Title,
		Price:        sub.Price,
		Type:         sub.PriceType,
		Location:     sub.City,
		Beds:         beds,
		Baths:        baths,
		Area:         fmt.Sprintf("%sm²", sub.Area),
		Image:        image,
		Featured:     false,
		Certified:    true,
		Description:  sub.Description,
		Amenities:    amenities,
		YearBuilt:    yearBuilt,
		PropertyType: sub.PropertyType,
		City:         sub.City,
		Images:       images,
		Address:      sub.Address,
		Floor:        sub.Floor,
		TotalFloors:  sub.TotalFloors,
		OwnerName:    sub.OwnerName,
		OwnerEmail:   sub.OwnerEmail,
		OwnerPhone:   sub.OwnerPhone,
	}
}

// Reconcile merges active listings and approved submissions into one
// display-ready sequence: listings first, then approved submissions, keeping
// only the first occurrence of each identifier. The projection is stable and
// idempotent; no sort is applied.
func Reconcile(listings []*entity.Listing, submissions []*entity.Submission) []entity.Property {
	combined := make([]entity.Property, 0, len(listings)+len(submissions))
	for _, listing := range listings {
		combined = append(combined, projectListing(listing))
	}
	for _, sub := range submissions {
		if sub.Status != entity.SubmissionStatusApproved {
			continue
		}
		combined = append(combined, projectSubmission(sub))
	}

	seen := make(map[int64]bool, len(combined))
	unique := combined[:0]
	for _, property := range combined {
		if seen[property.ID] {
			continue
		}
		seen[property.ID] = true
		unique = append(unique, property)
	}
	return unique
}

// MatchesFilter applies the page filters conjunctively.
func MatchesFilter(property entity.Property, filter FeedFilter) bool {
	if filter.ListingType != "" && filter.ListingType != "all" && property.Type != filter.ListingType {
		return false
	}
	if filter.City != "" && filter.City != AllCities && property.City != filter.City {
		return false
	}
	if filter.PropertyType != "" && filter.PropertyType != AllTypes && property.PropertyType != filter.PropertyType {
		return false
	}
	if filter.Query != "" {
		query := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(property.Title), query) &&
			!strings.Contains(strings.ToLower(property.Location), query) {
			return false
		}
	}

	price, _ := strconv.Atoi(entity.ParseDisplayPrice(property.Price))
	if price < filter.MinPrice {
		return false
	}
	if filter.MaxPrice > 0 && price > filter.MaxPrice {
		return false
	}
	return true
}

// ListProperties returns the reconciled public feed, filtered.
func (uc *FeedUseCase) ListProperties(ctx context.Context, filter FeedFilter) ([]entity.Property, error) {
	listings, err := uc.listingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	submissions, err := uc.submissionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	properties := Reconcile(listings, submissions)
	filtered := make([]entity.Property, 0, len(properties))
	for _, property := range properties {
		if MatchesFilter(property, filter) {
			filtered = append(filtered, property)
		}
	}
	return filtered, nil
}

// GetProperty resolves a property detail page: active listings first, then
// submissions.
func (uc *FeedUseCase) GetProperty(ctx context.Context, id int64) (*entity.Property, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err == nil {
		property := projectListing(listing)
		return &property, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	sub, err := uc.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Property", err)
	}
	property := projectSubmission(sub)
	return &property, nil
}
