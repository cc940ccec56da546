package contract

import (
	"context"

	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CandidateRepository interface {
	Create(ctx context.Context, candidate *entity.Candidate) error
	Update(ctx context.Context, candidate *entity.Candidate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Candidate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Candidate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
