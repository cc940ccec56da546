package contract

import (
	"context"

	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CandidateDocumentRepository interface {
	Create(ctx context.Context, doc *entity.CandidateDocument) error
	Update(ctx context.Context, doc *entity.CandidateDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	AssignCandidate(ctx context.Context, submissionId, candidateId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CandidateDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CandidateDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
