package repository

import (
	"context"

	"piramida/internal/domain/entity"
)

type PricingRepository interface {
	Get(ctx context.Context) (*entity.PricingSettings, error)
	Set(ctx context.Context, settings *entity.PricingSettings) error
}
