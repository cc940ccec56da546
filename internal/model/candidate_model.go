package model

import (
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	Id    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email string    `gorm:"type:varchar(255);uniqueIndex;not null"`

	FullName      string `gorm:"type:varchar(255);not null"`
	Phone         string `gorm:"type:varchar(50)"`
	Language      string `gorm:"type:varchar(10)"`
	SelectedDepot string `gorm:"type:varchar(255)"`
	DepotCode     string `gorm:"type:varchar(50)"`

	BirthDate             *string `gorm:"type:varchar(10)"`
	BirthCity             string  `gorm:"type:varchar(255)"`
	MotherName            string  `gorm:"type:varchar(255)"`
	MotherSurname         string  `gorm:"type:varchar(255)"`
	NextOfKinName         string  `gorm:"type:varchar(255)"`
	NextOfKinRelationship string  `gorm:"type:varchar(100)"`
	NextOfKinPhone        string  `gorm:"type:varchar(50)"`

	NationalInsuranceNumber string `gorm:"type:varchar(20)"`
	UtrNumber               string `gorm:"type:varchar(20)"`
	EmploymentStatus        string `gorm:"type:varchar(50)"`
	VatNumber               string `gorm:"type:varchar(20)"`

	ProfilePhotoURL        string `gorm:"type:text"`
	DrivingLicenceFrontURL string `gorm:"type:text"`
	DrivingLicenceBackURL  string `gorm:"type:text"`

	BankAccountNumber string `gorm:"type:varchar(20)"`
	BankSortCode      string `gorm:"type:varchar(10)"`

	Status                string `gorm:"type:varchar(50);not null;default:'onboarding'"`
	OnboardingCompletedAt *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Candidate) TableName() string {
	return "candidates"
}
