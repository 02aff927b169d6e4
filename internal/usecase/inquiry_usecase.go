package usecase

import (
	"context"
	"strings"
	"time"

	"piramida/internal/domain/entity"
	"piramida/internal/domain/repository"
	"piramida/internal/infrastructure/sync"
	"piramida/pkg/errors"
	"piramida/pkg/logger"
)

type InquiryUseCase struct {
	inquiryRepo repository.InquiryRepository
	listingRepo repository.ListingRepository
	feed        *FeedUseCase
	notifier    *sync.Notifier
}

func NewInquiryUseCase(
	inquiryRepo repository.InquiryRepository,
	listingRepo repository.ListingRepository,
	feed *FeedUseCase,
	notifier *sync.Notifier,
) *InquiryUseCase {
	return &InquiryUseCase{
		inquiryRepo: inquiryRepo,
		listingRepo: listingRepo,
		feed:        feed,
		notifier:    notifier,
	}
}

type CreateInquiryInput struct {
	PropertyID int64  `json:"propertyId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
}

// CreateInquiry records a buyer question about a property and bumps the
// listing's inquiry counter when the property is an active listing.
func (uc *InquiryUseCase) CreateInquiry(ctx context.Context, input CreateInquiryInput) (*entity.Inquiry, error) {
	fieldErrors := make(map[string]string)
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors["name"] = "Name is required"
	}
	if strings.TrimSpace(input.Email) == "" {
		fieldErrors["email"] = "Email is required"
	} else if !emailPattern.MatchString(input.Email) {
		fieldErrors["email"] = "Please enter a valid email address"
	}
	if strings.TrimSpace(input.Message) == "" {
		fieldErrors["message"] = "Message is required"
	}
	if len(fieldErrors) > 0 {
		return nil, errors.Validation(fieldErrors)
	}

	property, err := uc.feed.GetProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}

	inquiry := &entity.Inquiry{
		ID:            entity.NewID(),
		PropertyID:    property.ID,
		PropertyTitle: property.Title,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Message:       input.Message,
		SubmittedAt:   time.Now(),
	}
	if err := uc.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	// The counter lives on the listing; properties still in the submission
	// stage have nothing to bump.
	if err := uc.listingRepo.IncrementInquiries(ctx, property.ID); err != nil && !errors.Is(err, "NOT_FOUND") {
		logger.Warn("Failed to bump inquiry counter for listing %d: %v", property.ID, err)
	}

	logger.Info("Inquiry %d received for property %d", inquiry.ID, property.ID)
	uc.notifier.Publish(sync.CollectionInquiries)
	uc.notifier.Publish(sync.CollectionListings)
	return inquiry, nil
}

// ListInquiries returns every recorded inquiry for the admin dashboard.
func (uc *InquiryUseCase) ListInquiries(ctx context.Context) ([]*entity.Inquiry, error) {
	return uc.inquiryRepo.List(ctx)
}

// RecordView bumps the view counter of a listing. Submissions shown through
// the feed fallback have no counter; those views are dropped.
func (uc *InquiryUseCase) RecordView(ctx context.Context, propertyID int64) error {
	if err := uc.listingRepo.IncrementViews(ctx, propertyID); err != nil && !errors.Is(err, "NOT_FOUND") {
		return err
	}
	return nil
}
