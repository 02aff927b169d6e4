package repository

import (
	"context"

	"piramida/internal/domain/entity"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	List(ctx context.Context) ([]*entity.Inquiry, error)
}
