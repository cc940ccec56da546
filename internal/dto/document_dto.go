package dto

import (
	"time"

	"sbl-onboarding-be/pkg/completion"

	"github.com/google/uuid"
)

type DocumentTypeResponse struct {
	Code         string `json:"code"`
	DisplayName  string `json:"display_name"`
	IsRequired   bool   `json:"is_required"`
	DisplayOrder int    `json:"display_order"`
}

type UploadDocumentResponse struct {
	Id               uuid.UUID `json:"id"`
	DocumentTypeCode string    `json:"document_type_code"`
	FileURL          string    `json:"file_url"`
	FileName         string    `json:"file_name"`
	Status           string    `json:"status"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

type UploadAssetResponse struct {
	Kind     string `json:"kind"`
	FieldKey string `json:"field_key"`
	FileURL  string `json:"file_url"`
}

type DocumentResponse struct {
	Id               uuid.UUID  `json:"id"`
	DocumentTypeCode string     `json:"document_type_code"`
	FileURL          string     `json:"file_url"`
	FileName         string     `json:"file_name"`
	ContentType      string     `json:"content_type"`
	SizeBytes        int64      `json:"size_bytes"`
	Status           string     `json:"status"`
	ReviewNotes      *string    `json:"review_notes,omitempty"`
	UploadedAt       time.Time  `json:"uploaded_at"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
}

type CompletionSummaryResponse struct {
	completion.Summary
	Documents []DocumentResponse `json:"documents"`
}
