package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"piramida/internal/domain/entity"
	"piramida/internal/domain/repository"
	"piramida/internal/infrastructure/sync"
	"piramida/pkg/errors"
	"piramida/pkg/logger"
)

type ModerationUseCase struct {
	submissionRepo repository.SubmissionRepository
	listingRepo    repository.ListingRepository
	notifier       *sync.Notifier
}

func NewModerationUseCase(
	submissionRepo repository.SubmissionRepository,
	listingRepo repository.ListingRepository,
	notifier *sync.Notifier,
) *ModerationUseCase {
	return &ModerationUseCase{
		submissionRepo: submissionRepo,
		listingRepo:    listingRepo,
		notifier:       notifier,
	}
}

func listedToday() string {
	return time.Now().Format("2006-01-02")
}

// listingFromSubmission denormalizes an approved submission into its public
// listing. The listing keeps the submission's identifier so the feed dedup
// shadows the submission projection and repeated creation attempts are no-ops.
func listingFromSubmission(sub *entity.Submission, plan string, views, inquiries int, featured, certified bool) *entity.Listing {
	beds, _ := strconv.Atoi(sub.Bedrooms)
	baths, _ := strconv.Atoi(sub.Bathrooms)
	yearBuilt, err := strconv.Atoi(sub.YearBuilt)
	if err != nil || yearBuilt == 0 {
		yearBuilt = time.Now().Year()
	}

	image := placeholderImage
	if len(sub.Images) > 0 {
		image = sub.Images[0]
	}
	images := sub.Images
	if len(images) == 0 {
		images = []string{placeholderImage}
	}

	return &entity.Listing{
		ID:           sub.ID,
		Title:        sub.Title,
		Owner:        sub.OwnerName,
		Type:         sub.PriceType,
		Price:        entity.FormatDisplayPrice(sub.Price, sub.PriceType),
		Views:        views,
		Inquiries:    inquiries,
		Status:       entity.ListingStatusActive,
		ListedAt:     listedToday(),
		Plan:         plan,
		Location:     sub.City,
		Beds:         beds,
		Baths:        baths,
		Area:         fmt.Sprintf("%sm²", sub.Area),
		Image:        image,
		Featured:     featured,
		Certified:    certified,
		Description:  sub.Description,
		PropertyType: sub.PropertyType,
		City:         sub.City,
		Address:      sub.Address,
		Amenities:    sub.SelectedAmenities,
		YearBuilt:    yearBuilt,
		Floor:        sub.Floor,
		TotalFloors:  sub.TotalFloors,
		Images:       images,
		OwnerEmail:   sub.OwnerEmail,
		OwnerPhone:   sub.OwnerPhone,
	}
}

// ensureListing creates the listing derived from a submission unless one with
// the submission's identifier already exists. Both the moderation approve path
// and the workflow payment path go through here, so triggering both never
// double-creates.
func (uc *ModerationUseCase) ensureListing(ctx context.Context, listing *entity.Listing) error {
	if _, err := uc.listingRepo.GetByID(ctx, listing.ID); err == nil {
		logger.Info("Listing %d already exists, skipping creation", listing.ID)
		return nil
	} else if !errors.Is(err, "NOT_FOUND") {
		return err
	}
	return uc.listingRepo.Create(ctx, listing)
}

// ApproveSubmission marks a pending submission approved and publishes its
// listing with the featured plan. Unknown identifiers are silent no-ops.
func (uc *ModerationUseCase) ApproveSubmission(ctx context.Context, id int64) (*entity.Listing, error) {
	sub, err := uc.submissionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			logger.Warn("Approve requested for unknown submission %d", id)
			return nil, nil
		}
		return nil, err
	}
	if sub.Status == entity.SubmissionStatusRejected {
		logger.Warn("Approve requested for rejected submission %d", id)
		return nil, nil
	}

	sub.Status = entity.SubmissionStatusApproved
	if err := uc.submissionRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	listing := listingFromSubmission(sub, entity.PlanFeatured, rand.Intn(100), rand.Intn(20), true, true)
	if err := uc.ensureListing(ctx, listing); err != nil {
		return nil, err
	}

	logger.Info("Submission %d approved, listing live", id)
	uc.notifier.Publish(sync.CollectionSubmissions)
	uc.notifier.Publish(sync.CollectionListings)
	return listing, nil
}

// RejectSubmission marks a submission rejected. No listing is ever created
// and the submission stays in the collection. Unknown identifiers are silent
// no-ops.
func (uc *ModerationUseCase) RejectSubmission(ctx context.Context, id int64) error {
	sub, err := uc.submissionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			logger.Warn("Reject requested for unknown submission %d", id)
			return nil
		}
		return err
	}

	sub.Status = entity.SubmissionStatusRejected
	if err := uc.submissionRepo.Update(ctx, sub); err != nil {
		return err
	}

	logger.Info("Submission %d rejected", id)
	uc.notifier.Publish(sync.CollectionSubmissions)
	return nil
}

type CreateListingInput struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Price             string   `json:"price"`
	PriceType         string   `json:"priceType"`
	PropertyType      string   `json:"propertyType"`
	City              string   `json:"city"`
	Address           string   `json:"address"`
	Bedrooms          string   `json:"bedrooms"`
	Bathrooms         string   `json:"bathrooms"`
	Area              string   `json:"area"`
	YearBuilt         string   `json:"yearBuilt"`
	Floor             string   `json:"floor"`
	TotalFloors       string   `json:"totalFloors"`
	SelectedAmenities []string `json:"selectedAmenities"`
	Images            []string `json:"images"`
	OwnerName         string   `json:"ownerName"`
	OwnerEmail        string   `json:"ownerEmail"`
	OwnerPhone        string   `json:"ownerPhone"`
}

// CreateListing lets an admin publish a property directly, bypassing
// moderation. A mirrored, pre-approved submission is written alongside the
// listing so the entry shows up in both administrative views.
func (uc *ModerationUseCase) CreateListing(ctx context.Context, input CreateListingInput) (*entity.Listing, error) {
	fieldErrors := make(map[string]string)
	if input.Title == "" {
		fieldErrors["title"] = "Property title is required"
	}
	if input.Price == "" {
		fieldErrors["price"] = "Price is required"
	}
	if input.PropertyType == "" {
		fieldErrors["propertyType"] = "Property type is required"
	}
	if len(fieldErrors) > 0 {
		return nil, errors.Validation(fieldErrors)
	}

	priceType := input.PriceType
	if priceType == "" {
		priceType = entity.PriceTypeSale
	}

	sub := &entity.Submission{
		ID:                entity.NewID(),
		Title:             input.Title,
		Description:       input.Description,
		Price:             input.Price,
		PriceType:         priceType,
		PropertyType:      input.PropertyType,
		City:              input.City,
		Address:           input.Address,
		Bedrooms:          input.Bedrooms,
		Bathrooms:         input.Bathrooms,
		Area:              input.Area,
		YearBuilt:         input.YearBuilt,
		Floor:             input.Floor,
		TotalFloors:       input.TotalFloors,
		SelectedAmenities: input.SelectedAmenities,
		Images:            input.Images,
		OwnerName:         input.OwnerName,
		OwnerEmail:        input.OwnerEmail,
		OwnerPhone:        input.OwnerPhone,
		SubmittedAt:       time.Now(),
		Status:            entity.SubmissionStatusApproved,
	}
	if err := uc.submissionRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	listing := listingFromSubmission(sub, entity.PlanFeatured, 0, 0, true, true)
	if err := uc.ensureListing(ctx, listing); err != nil {
		return nil, err
	}

	logger.Info("Listing %d created directly by admin", listing.ID)
	uc.notifier.Publish(sync.CollectionSubmissions)
	uc.notifier.Publish(sync.CollectionListings)
	return listing, nil
}

// UpdateListing commits an edited listing and mirrors the edit back into the
// same-identifier submission when one exists, translating display fields back
// to form values.
func (uc *ModerationUseCase) UpdateListing(ctx context.Context, listing *entity.Listing) error {
	if _, err := uc.listingRepo.GetByID(ctx, listing.ID); err != nil {
		return err
	}
	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return err
	}

	sub, err := uc.submissionRepo.GetByID(ctx, listing.ID)
	if err == nil {
		sub.Title = listing.Title
		sub.Description = listing.Description
		sub.Price = entity.ParseDisplayPrice(listing.Price)
		sub.PriceType = listing.Type
		sub.PropertyType = listing.PropertyType
		sub.City = listing.City
		sub.Address = listing.Address
		sub.Bedrooms = strconv.Itoa(listing.Beds)
		sub.Bathrooms = strconv.Itoa(listing.Baths)
		sub.Area = strings.TrimSuffix(listing.Area, "m²")
		sub.YearBuilt = strconv.Itoa(listing.YearBuilt)
		sub.Floor = listing.Floor
		sub.TotalFloors = listing.TotalFloors
		sub.SelectedAmenities = listing.Amenities
		sub.OwnerName = listing.Owner
		if listing.OwnerEmail != "" {
			sub.OwnerEmail = listing.OwnerEmail
		}
		if listing.OwnerPhone != "" {
			sub.OwnerPhone = listing.OwnerPhone
		}
		if err := uc.submissionRepo.Update(ctx, sub); err != nil {
			return err
		}
		uc.notifier.Publish(sync.CollectionSubmissions)
	} else if !errors.Is(err, "NOT_FOUND") {
		return err
	}

	logger.Info("Listing %d updated", listing.ID)
	uc.notifier.Publish(sync.CollectionListings)
	return nil
}

// DuplicateListing copies a listing under a fresh identifier with reset
// counters. Unknown identifiers are silent no-ops.
func (uc *ModerationUseCase) DuplicateListing(ctx context.Context, id int64) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			logger.Warn("Duplicate requested for unknown listing %d", id)
			return nil, nil
		}
		return nil, err
	}

	duplicate := *listing
	duplicate.ID = entity.NewID()
	duplicate.Title = fmt.Sprintf("%s (Copy)", listing.Title)
	duplicate.Views = 0
	duplicate.Inquiries = 0
	duplicate.ListedAt = listedToday()

	if err := uc.listingRepo.Create(ctx, &duplicate); err != nil {
		return nil, err
	}

	logger.Info("Listing %d duplicated as %d", id, duplicate.ID)
	uc.notifier.Publish(sync.CollectionListings)
	return &duplicate, nil
}

// DeleteListing removes a listing permanently.
func (uc *ModerationUseCase) DeleteListing(ctx context.Context, id int64) error {
	if err := uc.listingRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("Listing %d deleted", id)
	uc.notifier.Publish(sync.CollectionListings)
	return nil
}

// ListListings returns every active listing for the admin dashboard.
func (uc *ModerationUseCase) ListListings(ctx context.Context) ([]*entity.Listing, error) {
	return uc.listingRepo.List(ctx)
}
