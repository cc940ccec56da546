package unitofwork

import (
	"context"

	"sbl-onboarding-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SubmissionRepository() contract.SubmissionRepository
	CandidateRepository() contract.CandidateRepository
	DocumentTypeRepository() contract.DocumentTypeRepository
	CandidateDocumentRepository() contract.CandidateDocumentRepository
	AbandonmentRepository() contract.AbandonmentRepository
}
