package repository

import (
	"context"

	"piramida/internal/domain/entity"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *entity.Submission) error
	GetByID(ctx context.Context, id int64) (*entity.Submission, error)
	List(ctx context.Context) ([]*entity.Submission, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Submission, error)
	Update(ctx context.Context, submission *entity.Submission) error
}
