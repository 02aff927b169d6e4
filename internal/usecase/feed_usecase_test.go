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

func submitTestProperty(t *testing.T, uc *SubmissionUseCase, title, price, priceType string) *entity.Submission {
	t.Helper()
	sub, err := uc.SubmitProperty(context.Background(), SubmitPropertyInput{
		Title:        title,
		Description:  "Spacious and bright",
		Price:        price,
		PriceType:    priceType,
		PropertyType: "Apartment",
		City:         "Prishtina",
		Address:      "Rr. Agim Ramadani 15",
		Bedrooms:     "2",
		Bathrooms:    "1",
		Area:         "85",
		OwnerName:    "Arben Krasniqi",
		OwnerEmail:   "arben@example.com",
		OwnerPhone:   "+383 44 123 456",
	})
	require.NoError(t, err)
	return sub
}

func TestReconcileListingShadowsSubmission(t *testing.T) {
	listing := &entity.Listing{
		ID:    100,
		Title: "City Apartment",
		Price: "€1000/month",
		Type:  entity.PriceTypeRent,
		City:  "Prishtina",
	}
	sub := &entity.Submission{
		ID:        100,
		Title:     "City Apartment",
		Price:     "1000",
		PriceType: entity.PriceTypeRent,
		City:      "Prishtina",
		Status:    entity.SubmissionStatusApproved,
	}

	properties := Reconcile([]*entity.Listing{listing}, []*entity.Submission{sub})

	require.Len(t, properties, 1)
	// The listing projection wins on an ID collision.
	assert.Equal(t, "1000", properties[0].Price)
	assert.Equal(t, int64(100), properties[0].ID)
}

func TestReconcileSkipsPendingAndRejected(t *testing.T) {
	subs := []*entity.Submission{
		{ID: 1, Title: "Pending", Status: entity.SubmissionStatusPending},
		{ID: 2, Title: "Rejected", Status: entity.SubmissionStatusRejected},
		{ID: 3, Title: "Approved", Status: entity.SubmissionStatusApproved},
	}

	properties := Reconcile(nil, subs)

	require.Len(t, properties, 1)
	assert.Equal(t, int64(3), properties[0].ID)
}

func TestReconcileIdempotent(t *testing.T) {
	listings := []*entity.Listing{
		{ID: 1, Title: "A", Price: "€100"},
		{ID: 2, Title: "B", Price: "€200"},
	}
	subs := []*entity.Submission{
		{ID: 2, Title: "B", Price: "200", Status: entity.SubmissionStatusApproved},
		{ID: 3, Title: "C", Price: "300", Status: entity.SubmissionStatusApproved},
	}

	first := Reconcile(listings, subs)
	second := Reconcile(listings, subs)

	assert.Equal(t, first, second)
	require.Len(t, first, 3)
}

func TestMatchesFilterConjunctive(t *testing.T) {
	property := entity.Property{
		Title:        "Modern Apartment",
		Type:         entity.PriceTypeRent,
		Location:     "Prishtina",
		City:         "Prishtina",
		PropertyType: "Apartment",
		Price:        "800",
	}

	assert.True(t, MatchesFilter(property, FeedFilter{}))
	assert.True(t, MatchesFilter(property, FeedFilter{ListingType: "rent", City: "Prishtina"}))
	assert.True(t, MatchesFilter(property, FeedFilter{City: AllCities, PropertyType: AllTypes}))
	assert.False(t, MatchesFilter(property, FeedFilter{ListingType: "sale"}))
	assert.False(t, MatchesFilter(property, FeedFilter{City: "Peja"}))
	assert.False(t, MatchesFilter(property, FeedFilter{PropertyType: "House"}))

	assert.True(t, MatchesFilter(property, FeedFilter{Query: "modern"}))
	assert.True(t, MatchesFilter(property, FeedFilter{Query: "prisht"}))
	assert.False(t, MatchesFilter(property, FeedFilter{Query: "villa"}))

	assert.True(t, MatchesFilter(property, FeedFilter{MinPrice: 500, MaxPrice: 1000}))
	assert.False(t, MatchesFilter(property, FeedFilter{MinPrice: 900}))
	assert.False(t, MatchesFilter(property, FeedFilter{MaxPrice: 700}))
	// MaxPrice zero means no ceiling.
	assert.True(t, MatchesFilter(property, FeedFilter{MaxPrice: 0}))
}

func TestGetPropertyFallsBackToSubmission(t *testing.T) {
	submissionRepo := adapterrepo.NewMemorySubmissionRepository()
	listingRepo := adapterrepo.NewMemoryListingRepository()
	notifier := sync.NewNotifier()

	submissionUC := NewSubmissionUseCase(submissionRepo, notifier)
	feedUC := NewFeedUseCase(listingRepo, submissionRepo)

	sub := submitTestProperty(t, submissionUC, "Sunny Flat", "650", entity.PriceTypeRent)

	property, err := feedUC.GetProperty(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunny Flat", property.Title)
	assert.Equal(t, "85m²", property.Area)

	_, err = feedUC.GetProperty(context.Background(), 424242)
	assert.Error(t, err)
}
