package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"piramida/internal/domain/entity"
	"piramida/internal/domain/repository"
	"piramida/internal/infrastructure/sync"
	"piramida/pkg/errors"
	"piramida/pkg/logger"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SubmissionUseCase struct {
	submissionRepo repository.SubmissionRepository
	notifier       *sync.Notifier
}

func NewSubmissionUseCase(submissionRepo repository.SubmissionRepository, notifier *sync.Notifier) *SubmissionUseCase {
	return &SubmissionUseCase{
		submissionRepo: submissionRepo,
		notifier:       notifier,
	}
}

type SubmitPropertyInput struct {
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

func validateSubmission(input SubmitPropertyInput) map[string]string {
	fieldErrors := make(map[string]string)

	if strings.TrimSpace(input.Title) == "" {
		fieldErrors["title"] = "Property title is required"
	}
	if strings.TrimSpace(input.Description) == "" {
		fieldErrors["description"] = "Description is required"
	}
	if strings.TrimSpace(input.Price) == "" {
		fieldErrors["price"] = "Price is required"
	}
	if input.PropertyType == "" {
		fieldErrors["propertyType"] = "Property type is required"
	}
	if input.City == "" {
		fieldErrors["city"] = "City is required"
	}
	if strings.TrimSpace(input.Address) == "" {
		fieldErrors["address"] = "Address is required"
	}
	if strings.TrimSpace(input.Area) == "" {
		fieldErrors["area"] = "Area is required"
	}
	if strings.TrimSpace(input.OwnerName) == "" {
		fieldErrors["ownerName"] = "Owner name is required"
	}
	if strings.TrimSpace(input.OwnerEmail) == "" {
		fieldErrors["ownerEmail"] = "Email is required"
	} else if !emailPattern.MatchString(input.OwnerEmail) {
		fieldErrors["ownerEmail"] = "Please enter a valid email address"
	}
	if strings.TrimSpace(input.OwnerPhone) == "" {
		fieldErrors["ownerPhone"] = "Phone number is required"
	}

	return fieldErrors
}

// SubmitProperty validates the intake form and appends a pending submission.
func (uc *SubmissionUseCase) SubmitProperty(ctx context.Context, input SubmitPropertyInput) (*entity.Submission, error) {
	if fieldErrors := validateSubmission(input); len(fieldErrors) > 0 {
		return nil, errors.Validation(fieldErrors)
	}

	priceType := input.PriceType
	if priceType == "" {
		priceType = entity.PriceTypeSale
	}

	submission := &entity.Submission{
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
		Status:            entity.SubmissionStatusPending,
	}

	if err := uc.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	logger.Info("Property submitted: %d (%s)", submission.ID, submission.Title)
	uc.notifier.Publish(sync.CollectionSubmissions)

	return submission, nil
}

// ListPending returns the submissions awaiting moderation.
func (uc *SubmissionUseCase) ListPending(ctx context.Context) ([]*entity.Submission, error) {
	return uc.submissionRepo.ListByStatus(ctx, entity.SubmissionStatusPending)
}

// ListAll returns every submission, including approved and rejected ones;
// rejected submissions are kept forever.
func (uc *SubmissionUseCase) ListAll(ctx context.Context) ([]*entity.Submission, error) {
	return uc.submissionRepo.List(ctx)
}
