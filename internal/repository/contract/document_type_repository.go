package contract

import (
	"context"

	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/repository/specification"
)

type DocumentTypeRepository interface {
	Create(ctx context.Context, docType *entity.DocumentType) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DocumentType, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentType, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
