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

type AbandonmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AbandonmentMapper
}

func NewAbandonmentRepository(db *gorm.DB) contract.AbandonmentRepository {
	return &AbandonmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAbandonmentMapper(),
	}
}

func (r *AbandonmentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AbandonmentRepositoryImpl) Create(ctx context.Context, abandonment *entity.FormAbandonment) error {
	m := r.mapper.ToModel(abandonment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*abandonment = *r.mapper.ToEntity(m)
	return nil
}

func (r *AbandonmentRepositoryImpl) Update(ctx context.Context, abandonment *entity.FormAbandonment) error {
	m := r.mapper.ToModel(abandonment)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*abandonment = *r.mapper.ToEntity(m)
	return nil
}

func (r *AbandonmentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FormAbandonment, error) {
	var m model.FormAbandonment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AbandonmentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FormAbandonment, error) {
	var models []*model.FormAbandonment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AbandonmentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.FormAbandonment{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
