package contract

import (
	"context"

	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubmissionRepository interface {
	// Upsert creates or updates the row keyed by email.
	Upsert(ctx context.Context, submission *entity.FormSubmission) error
	Update(ctx context.Context, submission *entity.FormSubmission) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FormSubmission, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FormSubmission, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
