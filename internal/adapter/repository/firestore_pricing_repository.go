package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"piramida/internal/domain/entity"
	"piramida/internal/domain/repository"
	"piramida/internal/infrastructure/sync"
	"piramida/pkg/errors"
)

// The pricing settings live in a single well-known document.
const pricingDocID = "current"

type firestorePricingRepository struct {
	client *firestore.Client
}

func NewFirestorePricingRepository(client *firestore.Client) repository.PricingRepository {
	return &firestorePricingRepository{
		client: client,
	}
}

func (r *firestorePricingRepository) Get(ctx context.Context) (*entity.PricingSettings, error) {
	doc, err := r.client.Collection(sync.CollectionPricing).Doc(pricingDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Pricing settings", err)
		}
		return nil, errors.Internal("Failed to get pricing settings", err)
	}

	var settings entity.PricingSettings
	if err := doc.DataTo(&settings); err != nil {
		return nil, errors.Internal("Failed to parse pricing settings", err)
	}
	return &settings, nil
}

func (r *firestorePricingRepository) Set(ctx context.Context, settings *entity.PricingSettings) error {
	_, err := r.client.Collection(sync.CollectionPricing).Doc(pricingDocID).Set(ctx, settings)
	if err != nil {
		return errors.Internal("Failed to save pricing settings", err)
	}
	return nil
}
