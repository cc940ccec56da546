package implementation

import (
	"context"
	"errors"

	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/mapper"
	"sbl-onboarding-be/internal/model"
	"sbl-onboarding-be/internal/repository/contract"
	"sbl-onboarding-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CandidateDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewCandidateDocumentRepository(db *gorm.DB) contract.CandidateDocumentRepository {
	return &CandidateDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *CandidateDocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CandidateDocumentRepositoryImpl) Create(ctx context.Context, doc *entity.CandidateDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *CandidateDocumentRepositoryImpl) Update(ctx context.Context, doc *entity.CandidateDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *CandidateDocumentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CandidateDocument{}, id).Error
}

// AssignCandidate links every document of a submission to its promoted
// candidate in a single statement.
func (r *CandidateDocumentRepositoryImpl) AssignCandidate(ctx context.Context, submissionId, candidateId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.CandidateDocument{}).
		Where("submission_id = ?", submissionId).
		Update("candidate_id", candidateId).Error
}

func (r *CandidateDocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CandidateDocument, error) {
	var m model.CandidateDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CandidateDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CandidateDocument, error) {
	var models []*model.CandidateDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CandidateDocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CandidateDocument{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
