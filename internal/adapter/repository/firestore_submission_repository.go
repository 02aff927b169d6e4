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

type firestoreSubmissionRepository struct {
	client *firestore.Client
}

func NewFirestoreSubmissionRepository(client *firestore.Client) repository.SubmissionRepository {
	return &firestoreSubmissionRepository{
		client: client,
	}
}

func (r *firestoreSubmissionRepository) doc(id int64) *firestore.DocumentRef {
	return r.client.Collection(sync.CollectionSubmissions).Doc(strconv.FormatInt(id, 10))
}

func (r *firestoreSubmissionRepository) Create(ctx context.Context, submission *entity.Submission) error {
	_, err := r.doc(submission.ID).Set(ctx, submission)
	if err != nil {
		return errors.Internal("Failed to create submission", err)
	}
	return nil
}

func (r *firestoreSubmissionRepository) GetByID(ctx context.Context, id int64) (*entity.Submission, error) {
	doc, err := r.doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Submission", err)
		}
		return nil, errors.Internal("Failed to get submission", err)
	}

	var submission entity.Submission
	if err := doc.DataTo(&submission); err != nil {
		return nil, errors.Internal("Failed to parse submission data", err)
	}
	return &submission, nil
}

func (r *firestoreSubmissionRepository) List(ctx context.Context) ([]*entity.Submission, error) {
	iter := r.client.Collection(sync.CollectionSubmissions).
		OrderBy("submittedAt", firestore.Asc).
		Documents(ctx)

	var submissions []*entity.Submission
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate submissions", err)
		}
		var submission entity.Submission
		if err := doc.DataTo(&submission); err != nil {
			return nil, errors.Internal("Failed to parse submission data", err)
		}
		submissions = append(submissions, &submission)
	}
	return submissions, nil
}

func (r *firestoreSubmissionRepository) ListByStatus(ctx context.Context, submissionStatus string) ([]*entity.Submission, error) {
	iter := r.client.Collection(sync.CollectionSubmissions).
		Where("status", "==", submissionStatus).
		Documents(ctx)

	var submissions []*entity.Submission
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate submissions", err)
		}
		var submission entity.Submission
		if err := doc.DataTo(&submission); err != nil {
			return nil, errors.Internal("Failed to parse submission data", err)
		}
		submissions = append(submissions, &submission)
	}
	return submissions, nil
}

func (r *firestoreSubmissionRepository) Update(ctx context.Context, submission *entity.Submission) error {
	_, err := r.doc(submission.ID).Set(ctx, submission)
	if err != nil {
		return errors.Internal("Failed to update submission", err)
	}
	return nil
}
