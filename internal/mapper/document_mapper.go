package mapper

import (
	"time"

	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/model"
	"sbl-onboarding-be/pkg/completion"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) TypeToEntity(t *model.DocumentType) *entity.DocumentType {
	if t == nil {
		return nil
	}
	return &entity.DocumentType{
		Id:           t.Id,
		Code:         t.Code,
		DisplayName:  t.DisplayName,
		IsRequired:   t.IsRequired,
		DisplayOrder: t.DisplayOrder,
		CreatedAt:    t.CreatedAt,
	}
}

func (m *DocumentMapper) TypeToModel(t *entity.DocumentType) *model.DocumentType {
	if t == nil {
		return nil
	}
	return &model.DocumentType{
		Id:           t.Id,
		Code:         t.Code,
		DisplayName:  t.DisplayName,
		IsRequired:   t.IsRequired,
		DisplayOrder: t.DisplayOrder,
		CreatedAt:    t.CreatedAt,
	}
}

func (m *DocumentMapper) TypesToEntities(types []*model.DocumentType) []*entity.DocumentType {
	entities := make([]*entity.DocumentType, len(types))
	for i, t := range types {
		entities[i] = m.TypeToEntity(t)
	}
	return entities
}

func (m *DocumentMapper) ToEntity(d *model.CandidateDocument) *entity.CandidateDocument {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.CandidateDocument{
		Id:               d.Id,
		SubmissionId:     d.SubmissionId,
		CandidateId:      d.CandidateId,
		DocumentTypeCode: d.DocumentTypeCode,
		FileURL:          d.FileURL,
		FileName:         d.FileName,
		ContentType:      d.ContentType,
		SizeBytes:        d.SizeBytes,
		Status:           completion.DocumentStatus(d.Status),
		ReviewNotes:      d.ReviewNotes,
		ReviewedAt:       d.ReviewedAt,
		UploadedAt:       d.UploadedAt,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.CandidateDocument) *model.CandidateDocument {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.CandidateDocument{
		Id:               d.Id,
		SubmissionId:     d.SubmissionId,
		CandidateId:      d.CandidateId,
		DocumentTypeCode: d.DocumentTypeCode,
		FileURL:          d.FileURL,
		FileName:         d.FileName,
		ContentType:      d.ContentType,
		SizeBytes:        d.SizeBytes,
		Status:           string(d.Status),
		ReviewNotes:      d.ReviewNotes,
		ReviewedAt:       d.ReviewedAt,
		UploadedAt:       d.UploadedAt,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *DocumentMapper) ToEntities(docs []*model.CandidateDocument) []*entity.CandidateDocument {
	entities := make([]*entity.CandidateDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
