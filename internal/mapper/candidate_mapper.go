package mapper

import (
	"time"

	"sbl-onboarding-be/internal/entity"
	"sbl-onboarding-be/internal/model"
)

type CandidateMapper struct{}

func NewCandidateMapper() *CandidateMapper {
	return &CandidateMapper{}
}

func (m *CandidateMapper) ToEntity(c *model.Candidate) *entity.Candidate {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Candidate{
		Id:                      c.Id,
		Email:                   c.Email,
		FullName:                c.FullName,
		Phone:                   c.Phone,
		Language:                c.Language,
		SelectedDepot:           c.SelectedDepot,
		DepotCode:               c.DepotCode,
		BirthDate:               c.BirthDate,
		BirthCity:               c.BirthCity,
		MotherName:              c.MotherName,
		MotherSurname:           c.MotherSurname,
		NextOfKinName:           c.NextOfKinName,
		NextOfKinRelationship:   c.NextOfKinRelationship,
		NextOfKinPhone:          c.NextOfKinPhone,
		NationalInsuranceNumber: c.NationalInsuranceNumber,
		UtrNumber:               c.UtrNumber,
		EmploymentStatus:        c.EmploymentStatus,
		VatNumber:               c.VatNumber,
		ProfilePhotoURL:         c.ProfilePhotoURL,
		DrivingLicenceFrontURL:  c.DrivingLicenceFrontURL,
		DrivingLicenceBackURL:   c.DrivingLicenceBackURL,
		BankAccountNumber:       c.BankAccountNumber,
		BankSortCode:            c.BankSortCode,
		Status:                  entity.CandidateStatus(c.Status),
		OnboardingCompletedAt:   c.OnboardingCompletedAt,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               updatedAt,
	}
}

func (m *CandidateMapper) ToModel(c *entity.Candidate) *model.Candidate {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Candidate{
		Id:                      c.Id,
		Email:                   c.Email,
		FullName:                c.FullName,
		Phone:                   c.Phone,
		Language:                c.Language,
		SelectedDepot:           c.SelectedDepot,
		DepotCode:               c.DepotCode,
		BirthDate:               c.BirthDate,
		BirthCity:               c.BirthCity,
		MotherName:              c.MotherName,
		MotherSurname:           c.MotherSurname,
		NextOfKinName:           c.NextOfKinName,
		NextOfKinRelationship:   c.NextOfKinRelationship,
		NextOfKinPhone:          c.NextOfKinPhone,
		NationalInsuranceNumber: c.NationalInsuranceNumber,
		UtrNumber:               c.UtrNumber,
		EmploymentStatus:        c.EmploymentStatus,
		VatNumber:               c.VatNumber,
		ProfilePhotoURL:         c.ProfilePhotoURL,
		DrivingLicenceFrontURL:  c.DrivingLicenceFrontURL,
		DrivingLicenceBackURL:   c.DrivingLicenceBackURL,
		BankAccountNumber:       c.BankAccountNumber,
		BankSortCode:            c.BankSortCode,
		Status:                  string(c.Status),
		OnboardingCompletedAt:   c.OnboardingCompletedAt,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               updatedAt,
	}
}

func (m *CandidateMapper) ToEntities(candidates []*model.Candidate) []*entity.Candidate {
	entities := make([]*entity.Candidate, len(candidates))
	for i, c := range candidates {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
