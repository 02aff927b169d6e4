package repository

import (
	"context"

	"piramida/internal/domain/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id int64) (*entity.Listing, error)
	List(ctx context.Context) ([]*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
	IncrementInquiries(ctx context.Context, id int64) error
}
