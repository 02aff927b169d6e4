package repository

import (
	"context"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"piramida/internal/domain/entity"
	"piramida/internal/domain/repository"
	"piramida/internal/infrastructure/sync"
	"piramida/pkg/errors"
)

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) doc(id int64) *firestore.DocumentRef {
	return r.client.Collection(sync.CollectionListings).Doc(strconv.FormatInt(id, 10))
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	_, err := r.doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create listing", err)
	}
	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, id int64) (*entity.Listing, error) {
	doc, err := r.doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	var listing entity.Listing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse listing data", err)
	}
	return &listing, nil
}

func (r *firestoreListingRepository) List(ctx context.Context) ([]*entity.Listing, error) {
	iter := r.client.Collection(sync.CollectionListings).
		OrderBy("listedAt", firestore.Asc).
		Documents(ctx)

	var listings []*entity.Listing
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate listings", err)
		}
		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			return nil, errors.Internal("Failed to parse listing data", err)
		}
		listings = append(listings, &listing)
	}
	return listings, nil
}

func (r *firestoreListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	_, err := r.doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to update listing", err)
	}
	return nil
}

func (r *firestoreListingRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete listing", err)
	}
	return nil
}

func (r *firestoreListingRepository) IncrementViews(ctx context.Context, id int64) error {
	return r.increment(ctx, id, "views")
}

func (r *firestoreListingRepository) IncrementInquiries(ctx context.Context, id int64) error {
	return r.increment(ctx, id, "inquiries")
}

func (r *firestoreListingRepository) increment(ctx context.Context, id int64, field string) error {
	_, err := r.doc(id).Update(ctx, []firestore.Update{
		{Path: field, Value: firestore.Increment(1)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Listing", err)
		}
		return errors.Internal("Failed to update listing counter", err)
	}
	return nil
}
