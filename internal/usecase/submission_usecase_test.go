package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "piramida/internal/adapter/repository"
	"piramida/internal/domain/entity"
	"piramida/internal/infrastructure/sync"
	"piramida/pkg/errors"
)

func newSubmissionFixture() *SubmissionUseCase {
	return NewSubmissionUseCase(adapterrepo.NewMemorySubmissionRepository(), sync.NewNotifier())
}

func TestSubmitPropertyCreatesPendingRecord(t *testing.T) {
	uc := newSubmissionFixture()

	sub := submitTestProperty(t, uc, "City Apartment", "1000", entity.PriceTypeRent)

	assert.NotZero(t, sub.ID)
	assert.Equal(t, entity.SubmissionStatusPending, sub.Status)
	assert.False(t, sub.SubmittedAt.IsZero())

	pending, err := uc.ListPending(context.Background())
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestSubmitPropertyDefaultsPriceTypeToSale(t *testing.T) {
	uc := newSubmissionFixture()

	sub := submitTestProperty(t, uc, "House", "90000", "")
	assert.Equal(t, entity.PriceTypeSale, sub.PriceType)
}

func TestSubmitPropertyValidation(t *testing.T) {
	uc := newSubmissionFixture()

	_, err := uc.SubmitProperty(context.Background(), SubmitPropertyInput{
		OwnerEmail: "not-an-email",
	})
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Equal(t, "Property title is required", appErr.Fields["title"])
	assert.Equal(t, "Please enter a valid email address", appErr.Fields["ownerEmail"])
	assert.Equal(t, "City is required", appErr.Fields["city"])

	pending, listErr := uc.ListPending(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, pending)
}
