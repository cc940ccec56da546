package mapper

import (
	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/model"
)

type AbandonmentMapper struct{}

func NewAbandonmentMapper() *AbandonmentMapper {
	return &AbandonmentMapper{}
}

func (m *AbandonmentMapper) ToEntity(a *model.FormAbandonment) *entity.FormAbandonment {
	if a == nil {
		return nil
	}
	return &entity.FormAbandonment{
		Id:              a.Id,
		SubmissionId:    a.SubmissionId,
		Email:           a.Email,
		Phone:           a.Phone,
		FullName:        a.FullName,
		AbandonedAtStep: a.AbandonedAtStep,
		FollowupSent:    a.FollowupSent,
		FollowupType:    a.FollowupType,
		FollowupSentAt:  a.FollowupSentAt,
		CreatedAt:       a.CreatedAt,
	}
}

func (m *AbandonmentMapper) ToModel(a *entity.FormAbandonment) *model.FormAbandonment {
	if a == nil {
		return nil
	}
	return &model.FormAbandonment{
		Id:              a.Id,
		SubmissionId:    a.SubmissionId,
		Email:           a.Email,
		Phone:           a.Phone,
		FullName:        a.FullName,
		AbandonedAtStep: a.AbandonedAtStep,
		FollowupSent:    a.FollowupSent,
		FollowupType:    a.FollowupType,
		FollowupSentAt:  a.FollowupSentAt,
		CreatedAt:       a.CreatedAt,
	}
}

func (m *AbandonmentMapper) ToEntities(rows []*model.FormAbandonment) []*entity.FormAbandonment {
	entities := make([]*entity.FormAbandonment, len(rows))
	for i, a := range rows {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
