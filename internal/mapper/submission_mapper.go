package mapper

import (
	"encoding/json"
	"time"

	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/model"

	"gorm.io/datatypes"
)

type SubmissionMapper struct{}

func NewSubmissionMapper() *SubmissionMapper {
	return &SubmissionMapper{}
}

func (m *SubmissionMapper) ToEntity(s *model.FormSubmission) *entity.FormSubmission {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	var addressHistory []map[string]interface{}
	if len(s.AddressHistory) > 0 {
		_ = json.Unmarshal(s.AddressHistory, &addressHistory)
	}

	completedSteps := make([]int, 0)
	if len(s.CompletedSteps) > 0 {
		_ = json.Unmarshal(s.CompletedSteps, &completedSteps)
	}

	fields := make(map[string]interface{})
	if len(s.Fields) > 0 {
		_ = json.Unmarshal(s.Fields, &fields)
	}

	return &entity.FormSubmission{
		Id:                         s.Id,
		Email:                      s.Email,
		Language:                   s.Language,
		FullName:                   s.FullName,
		Phone:                      s.Phone,
		SelectedDepot:              s.SelectedDepot,
		DepotCode:                  s.DepotCode,
		BirthDate:                  s.BirthDate,
		BirthCity:                  s.BirthCity,
		MotherName:                 s.MotherName,
		MotherSurname:              s.MotherSurname,
		NextOfKinName:              s.NextOfKinName,
		NextOfKinRelationship:      s.NextOfKinRelationship,
		NextOfKinPhone:             s.NextOfKinPhone,
		AddressHistory:             addressHistory,
		NationalInsuranceNumber:    s.NationalInsuranceNumber,
		UtrNumber:                  s.UtrNumber,
		EmploymentStatus:           s.EmploymentStatus,
		VatNumber:                  s.VatNumber,
		ProfilePhotoURL:            s.ProfilePhotoURL,
		DrivingLicenceFrontURL:     s.DrivingLicenceFrontURL,
		DrivingLicenceBackURL:      s.DrivingLicenceBackURL,
		BankAccountNumber:          s.BankAccountNumber,
		BankSortCode:               s.BankSortCode,
		PaymentDeclarationAccepted: s.PaymentDeclarationAccepted,
		CurrentStep:                s.CurrentStep,
		CompletedSteps:             completedSteps,
		Fields:                     fields,
		IsCompleted:                s.IsCompleted,
		CompletedAt:                s.CompletedAt,
		IsAbandoned:                s.IsAbandoned,
		AbandonedAt:                s.AbandonedAt,
		LastActivity:               s.LastActivity,
		UserAgent:                  s.UserAgent,
		IpAddress:                  s.IpAddress,
		UtmSource:                  s.UtmSource,
		UtmMedium:                  s.UtmMedium,
		UtmCampaign:                s.UtmCampaign,
		CreatedAt:                  s.CreatedAt,
		UpdatedAt:                  updatedAt,
	}
}

func (m *SubmissionMapper) ToModel(s *entity.FormSubmission) *model.FormSubmission {
	if s == nil {
		return nil
	}

	addressHistory, _ := json.Marshal(s.AddressHistory)
	completedSteps, _ := json.Marshal(s.CompletedSteps)
	fields, _ := json.Marshal(s.Fields)

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.FormSubmission{
		Id:                         s.Id,
		Email:                      s.Email,
		Language:                   s.Language,
		FullName:                   s.FullName,
		Phone:                      s.Phone,
		SelectedDepot:              s.SelectedDepot,
		DepotCode:                  s.DepotCode,
		BirthDate:                  s.BirthDate,
		BirthCity:                  s.BirthCity,
		MotherName:                 s.MotherName,
		MotherSurname:              s.MotherSurname,
		NextOfKinName:              s.NextOfKinName,
		NextOfKinRelationship:      s.NextOfKinRelationship,
		NextOfKinPhone:             s.NextOfKinPhone,
		AddressHistory:             datatypes.JSON(addressHistory),
		NationalInsuranceNumber:    s.NationalInsuranceNumber,
		UtrNumber:                  s.UtrNumber,
		EmploymentStatus:           s.EmploymentStatus,
		VatNumber:                  s.VatNumber,
		ProfilePhotoURL:            s.ProfilePhotoURL,
		DrivingLicenceFrontURL:     s.DrivingLicenceFrontURL,
		DrivingLicenceBackURL:      s.DrivingLicenceBackURL,
		BankAccountNumber:          s.BankAccountNumber,
		BankSortCode:               s.BankSortCode,
		PaymentDeclarationAccepted: s.PaymentDeclarationAccepted,
		CurrentStep:                s.CurrentStep,
		CompletedSteps:             datatypes.JSON(completedSteps),
		Fields:                     datatypes.JSON(fields),
		IsCompleted:                s.IsCompleted,
		CompletedAt:                s.CompletedAt,
		IsAbandoned:                s.IsAbandoned,
		AbandonedAt:                s.AbandonedAt,
		LastActivity:               s.LastActivity,
		UserAgent:                  s.UserAgent,
		IpAddress:                  s.IpAddress,
		UtmSource:                  s.UtmSource,
		UtmMedium:                  s.UtmMedium,
		UtmCampaign:                s.UtmCampaign,
		CreatedAt:                  s.CreatedAt,
		UpdatedAt:                  updatedAt,
	}
}

func (m *SubmissionMapper) ToEntities(submissions []*model.FormSubmission) []*entity.FormSubmission {
	entities := make([]*entity.FormSubmission, len(submissions))
	for i, s := range submissions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
