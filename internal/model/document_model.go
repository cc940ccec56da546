package model

import (
	"time"

	"github.com/google/uuid"
)

type DocumentType struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	DisplayName  string    `gorm:"type:varchar(255);not null"`
	IsRequired   bool      `gorm:"default:true"`
	DisplayOrder int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (DocumentType) TableName() string {
	return "document_types"
}

type CandidateDocument struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubmissionId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CandidateId      *uuid.UUID `gorm:"type:uuid;index"`
	DocumentTypeCode string     `gorm:"type:varchar(100);not null;index"`

	FileURL     string `gorm:"type:text"`
	FileName    string `gorm:"type:varchar(255)"`
	ContentType string `gorm:"type:varchar(100)"`
	SizeBytes   int64

	Status      string `gorm:"type:varchar(50);not null;default:'pending'"`
	ReviewNotes string `gorm:"type:text"`
	ReviewedAt  *time.Time
	UploadedAt  *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (CandidateDocument) TableName() string {
	return "candidate_documents"
}
