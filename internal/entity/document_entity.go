package entity

import (
	"time"

	"github.com/google/uuid"

	"sbl-onboarding-be/pkg/completion"
)

// DocumentType is one entry of the required-document policy, seeded by
// cmd/seed. DisplayOrder drives presentation only.
type DocumentType struct {
	Id           uuid.UUID
	Code         string
	DisplayName  string
	IsRequired   bool
	DisplayOrder int
	CreatedAt    time.Time
}

// CandidateDocument is a single uploaded file for a document type. It is
// created against the submission during onboarding; the migration links it
// to the promoted candidate afterwards.
type CandidateDocument struct {
	Id               uuid.UUID
	SubmissionId     uuid.UUID
	CandidateId      *uuid.UUID
	DocumentTypeCode string

	FileURL     string
	FileName    string
	ContentType string
	SizeBytes   int64

	Status      completion.DocumentStatus
	ReviewNotes string
	ReviewedAt  *time.Time
	UploadedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt *time.Time
}
