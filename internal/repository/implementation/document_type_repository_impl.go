package implementation

import (
	"context"
	"errors"

	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/mapper"
	"sbl-onboarding-be/internal/model"
	"sbl-onboarding-be/internal/repository/contract"
	"sbl-onboarding-be/internal/repository/specification"

	"gorm.io/gorm"
)

type DocumentTypeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewDocumentTypeRepository(db *gorm.DB) contract.DocumentTypeRepository {
	return &DocumentTypeRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *DocumentTypeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DocumentTypeRepositoryImpl) Create(ctx context.Context, docType *entity.DocumentType) error {
	m := r.mapper.TypeToModel(docType)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*docType = *r.mapper.TypeToEntity(m)
	return nil
}

func (r *DocumentTypeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DocumentType, error) {
	var m model.DocumentType
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TypeToEntity(&m), nil
}

func (r *DocumentTypeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentType, error) {
	var models []*model.DocumentType
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TypesToEntities(models), nil
}

func (r *DocumentTypeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.DocumentType{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
