package repository

import (
	"context"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"piramida/internal/domain/entity"
	"piramida/internal/domain/repository"
	"piramida/internal/infrastructure/sync"
	"piramida/pkg/errors"
)

type firestoreInquiryRepository struct {
	client *firestore.Client
}

func NewFirestoreInquiryRepository(client *firestore.Client) repository.InquiryRepository {
	return &firestoreInquiryRepository{
		client: client,
	}
}

func (r *firestoreInquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	docID := strconv.FormatInt(inquiry.ID, 10)
	_, err := r.client.Collection(sync.CollectionInquiries).Doc(docID).Set(ctx, inquiry)
	if err != nil {
		return errors.Internal("Failed to create inquiry", err)
	}
	return nil
}

func (r *firestoreInquiryRepository) List(ctx context.Context) ([]*entity.Inquiry, error) {
	iter := r.client.Collection(sync.CollectionInquiries).
		OrderBy("submittedAt", firestore.Desc).
		Documents(ctx)

	var inquiries []*entity.Inquiry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate inquiries", err)
		}
		var inquiry entity.Inquiry
		if err := doc.DataTo(&inquiry); err != nil {
			return nil, errors.Internal("Failed to parse inquiry data", err)
		}
		inquiries = append(inquiries, &inquiry)
	}
	return inquiries, nil
}
