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

func newModerationFixture() (*SubmissionUseCase, *ModerationUseCase, *FeedUseCase) {
	submissionRepo := adapterrepo.NewMemorySubmissionRepository()
	listingRepo := adapterrepo.NewMemoryListingRepository()
	notifier := sync.NewNotifier()

	submissionUC := NewSubmissionUseCase(submissionRepo, notifier)
	moderationUC := NewModerationUseCase(submissionRepo, listingRepo, notifier)
	feedUC := NewFeedUseCase(listingRepo, submissionRepo)
	return submissionUC, moderationUC, feedUC
}

func TestApproveSubmissionPublishesListing(t *testing.T) {
	submissionUC, moderationUC, feedUC := newModerationFixture()
	ctx := context.Background()

	sub := submitTestProperty(t, submissionUC, "City Apartment", "1000", entity.PriceTypeRent)

	listing, err := moderationUC.ApproveSubmission(ctx, sub.ID)
	require.NoError(t, err)
	require.NotNil(t, listing)

	// The listing keeps the submission's identifier and the display price.
	assert.Equal(t, sub.ID, listing.ID)
	assert.Equal(t, "€1000/month", listing.Price)
	assert.Equal(t, entity.ListingStatusActive, listing.Status)
	assert.True(t, listing.Featured)
	assert.True(t, listing.Certified)
	assert.Equal(t, entity.PlanFeatured, listing.Plan)

	// The feed shows exactly one property for the pair.
	properties, err := feedUC.ListProperties(ctx, FeedFilter{})
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, sub.ID, properties[0].ID)
}

func TestApproveSubmissionIdempotent(t *testing.T) {
	submissionUC, moderationUC, _ := newModerationFixture()
	ctx := context.Background()

	sub := submitTestProperty(t, submissionUC, "City Apartment", "1000", entity.PriceTypeRent)

	first, err := moderationUC.ApproveSubmission(ctx, sub.ID)
	require.NoError(t, err)
	second, err := moderationUC.ApproveSubmission(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	listings, err := moderationUC.ListListings(ctx)
	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestApproveUnknownSubmissionIsNoOp(t *testing.T) {
	_, moderationUC, _ := newModerationFixture()

	listing, err := moderationUC.ApproveSubmission(context.Background(), 999999)
	require.NoError(t, err)
	assert.Nil(t, listing)
}

func TestRejectSubmissionNeverCreatesListing(t *testing.T) {
	submissionUC, moderationUC, feedUC := newModerationFixture()
	ctx := context.Background()

	sub := submitTestProperty(t, submissionUC, "Old House", "40000", entity.PriceTypeSale)

	require.NoError(t, moderationUC.RejectSubmission(ctx, sub.ID))

	listings, err := moderationUC.ListListings(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)

	properties, err := feedUC.ListProperties(ctx, FeedFilter{})
	require.NoError(t, err)
	assert.Empty(t, properties)

	// The rejected record is kept, and approval after rejection is refused.
	all, err := submissionUC.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entity.SubmissionStatusRejected, all[0].Status)

	listing, err := moderationUC.ApproveSubmission(ctx, sub.ID)
	require.NoError(t, err)
	assert.Nil(t, listing)
}

func TestRejectUnknownSubmissionIsNoOp(t *testing.T) {
	_, moderationUC, _ := newModerationFixture()
	assert.NoError(t, moderationUC.RejectSubmission(context.Background(), 123456))
}

func TestCreateListingMirrorsSubmission(t *testing.T) {
	submissionUC, moderationUC, _ := newModerationFixture()
	ctx := context.Background()

	listing, err := moderationUC.CreateListing(ctx, CreateListingInput{
		Title:        "Penthouse Suite",
		Price:        "250000",
		PriceType:    entity.PriceTypeSale,
		PropertyType: "Apartment",
		City:         "Prishtina",
		Bedrooms:     "3",
		Bathrooms:    "2",
		Area:         "140",
	})
	require.NoError(t, err)
	assert.Equal(t, "€250000", listing.Price)
	assert.Zero(t, listing.Views)
	assert.Zero(t, listing.Inquiries)

	all, err := submissionUC.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, listing.ID, all[0].ID)
	assert.Equal(t, entity.SubmissionStatusApproved, all[0].Status)
}

func TestCreateListingValidation(t *testing.T) {
	_, moderationUC, _ := newModerationFixture()

	_, err := moderationUC.CreateListing(context.Background(), CreateListingInput{})
	assert.Error(t, err)
}

func TestUpdateListingMirrorsBackToSubmission(t *testing.T) {
	submissionUC, moderationUC, _ := newModerationFixture()
	ctx := context.Background()

	sub := submitTestProperty(t, submissionUC, "City Apartment", "1000", entity.PriceTypeRent)
	listing, err := moderationUC.ApproveSubmission(ctx, sub.ID)
	require.NoError(t, err)

	listing.Title = "Renovated City Apartment"
	listing.Price = "€1200/month"
	listing.Beds = 3
	listing.Area = "95m²"
	require.NoError(t, moderationUC.UpdateListing(ctx, listing))

	all, err := submissionUC.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Renovated City Apartment", all[0].Title)
	assert.Equal(t, "1200", all[0].Price)
	assert.Equal(t, "3", all[0].Bedrooms)
	assert.Equal(t, "95", all[0].Area)
}

func TestDuplicateListing(t *testing.T) {
	submissionUC, moderationUC, _ := newModerationFixture()
	ctx := context.Background()

	sub := submitTestProperty(t, submissionUC, "City Apartment", "1000", entity.PriceTypeRent)
	original, err := moderationUC.ApproveSubmission(ctx, sub.ID)
	require.NoError(t, err)

	duplicate, err := moderationUC.DuplicateListing(ctx, original.ID)
	require.NoError(t, err)
	require.NotNil(t, duplicate)

	assert.NotEqual(t, original.ID, duplicate.ID)
	assert.Equal(t, "City Apartment (Copy)", duplicate.Title)
	assert.Zero(t, duplicate.Views)
	assert.Zero(t, duplicate.Inquiries)

	listings, err := moderationUC.ListListings(ctx)
	require.NoError(t, err)
	assert.Len(t, listings, 2)
}

func TestDuplicateUnknownListingIsNoOp(t *testing.T) {
	_, moderationUC, _ := newModerationFixture()

	duplicate, err := moderationUC.DuplicateListing(context.Background(), 77777)
	require.NoError(t, err)
	assert.Nil(t, duplicate)
}

func TestDeleteListing(t *testing.T) {
	submissionUC, moderationUC, _ := newModerationFixture()
	ctx := context.Background()

	sub := submitTestProperty(t, submissionUC, "City Apartment", "1000", entity.PriceTypeRent)
	listing, err := moderationUC.ApproveSubmission(ctx, sub.ID)
	require.NoError(t, err)

	require.NoError(t, moderationUC.DeleteListing(ctx, listing.ID))

	listings, err := moderationUC.ListListings(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)
}
