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

type firestoreAdminRepository struct {
	client *firestore.Client
}

func NewFirestoreAdminRepository(client *firestore.Client) repository.AdminRepository {
	return &firestoreAdminRepository{
		client: client,
	}
}

func (r *firestoreAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	docID := strconv.FormatInt(admin.ID, 10)
	_, err := r.client.Collection(sync.CollectionAdmins).Doc(docID).Set(ctx, admin)
	if err != nil {
		return errors.Internal("Failed to create admin account", err)
	}
	return nil
}

func (r *firestoreAdminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	iter := r.client.Collection(sync.CollectionAdmins).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Admin", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query admin accounts", err)
	}

	var admin entity.Admin
	if err := doc.DataTo(&admin); err != nil {
		return nil, errors.Internal("Failed to parse admin data", err)
	}
	return &admin, nil
}

func (r *firestoreAdminRepository) List(ctx context.Context) ([]*entity.Admin, error) {
	iter := r.client.Collection(sync.CollectionAdmins).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)

	var admins []*entity.Admin
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate admin accounts", err)
		}
		var admin entity.Admin
		if err := doc.DataTo(&admin); err != nil {
			return nil, errors.Internal("Failed to parse admin data", err)
		}
		admins = append(admins, &admin)
	}
	return admins, nil
}

func (r *firestoreAdminRepository) Delete(ctx context.Context, id int64) error {
	docID := strconv.FormatInt(id, 10)
	_, err := r.client.Collection(sync.CollectionAdmins).Doc(docID).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Admin", err)
		}
		return errors.Internal("Failed to delete admin account", err)
	}
	return nil
}
