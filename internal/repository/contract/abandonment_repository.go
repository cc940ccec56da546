package contract

import (
	"context"

	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/repository/specification"
)

type AbandonmentRepository interface {
	Create(ctx context.Context, abandonment *entity.FormAbandonment) error
	Update(ctx context.Context, abandonment *entity.FormAbandonment) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FormAbandonment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FormAbandonment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
