package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "piramida/internal/adapter/repository"
	"piramida/internal/domain/entity"
	"piramida/internal/infrastructure/sync"
)

func newInquiryFixture() (*SubmissionUseCase, *ModerationUseCase, *InquiryUseCase) {
	submissionRepo := adapterrepo.NewMemorySubmissionRepository()
	listingRepo := adapterrepo.NewMemoryListingRepository()
	inquiryRepo := adapterrepo.NewMemoryInquiryRepository()
	notifier := sync.NewNotifier()

	submissionUC := NewSubmissionUseCase(submissionRepo, notifier)
	moderationUC := NewModerationUseCase(submissionRepo, listingRepo, notifier)
	feedUC := NewFeedUseCase(listingRepo, submissionRepo)
	inquiryUC := NewInquiryUseCase(inquiryRepo, listingRepo, feedUC, notifier)
	return submissionUC, moderationUC, inquiryUC
}

func TestCreateInquiryBumpsListingCounter(t *testing.T) {
	submissionUC, moderationUC, inquiryUC := newInquiryFixture()
	ctx := context.Background()

	sub := submitTestProperty(t, submissionUC, "City Apartment", "1000", entity.PriceTypeRent)
	_, err := moderationUC.ApproveSubmission(ctx, sub.ID)
	require.NoError(t, err)

	before, err := moderationUC.ListListings(ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)

	inquiry, err := inquiryUC.CreateInquiry(ctx, CreateInquiryInput{
		PropertyID: sub.ID,
		Name:       "Blerta Gashi",
		Email:      "blerta@example.com",
		Message:    "Is this still available?",
	})
	require.NoError(t, err)
	assert.Equal(t, "City Apartment", inquiry.PropertyTitle)
	assert.NotZero(t, inquiry.ID)

	after, err := moderationUC.ListListings(ctx)
	require.NoError(t, err)
	assert.Equal(t, before[0].Inquiries+1, after[0].Inquiries)

	inquiries, err := inquiryUC.ListInquiries(ctx)
	require.NoError(t, err)
	assert.Len(t, inquiries, 1)
}

func TestCreateInquiryForSubmissionOnlyProperty(t *testing.T) {
	submissionUC, _, inquiryUC := newInquiryFixture()
	ctx := context.Background()

	sub := submitTestProperty(t, submissionUC, "Sunny Flat", "650", entity.PriceTypeRent)

	// No listing exists yet; the inquiry resolves the property through the
	// submission fallback and there is no counter to bump.
	inquiry, err := inquiryUC.CreateInquiry(ctx, CreateInquiryInput{
		PropertyID: sub.ID,
		Name:       "Blerta Gashi",
		Email:      "blerta@example.com",
		Message:    "Is this still available?",
	})
	require.NoError(t, err)
	assert.Equal(t, sub.ID, inquiry.PropertyID)
}

func TestCreateInquiryValidation(t *testing.T) {
	_, _, inquiryUC := newInquiryFixture()

	_, err := inquiryUC.CreateInquiry(context.Background(), CreateInquiryInput{
		Email: "bad-email",
	})
	assert.Error(t, err)
}

func TestCreateInquiryUnknownProperty(t *testing.T) {
	_, _, inquiryUC := newInquiryFixture()

	_, err := inquiryUC.CreateInquiry(context.Background(), CreateInquiryInput{
		PropertyID: 123456,
		Name:       "Blerta Gashi",
		Email:      "blerta@example.com",
		Message:    "Hello",
	})
	assert.Error(t, err)
}
