package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type FormSubmission struct {
	Id    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email string    `gorm:"type:varchar(255);uniqueIndex;not null"`

	Language      string `gorm:"type:varchar(10)"`
	FullName      string `gorm:"type:varchar(255)"`
	Phone         string `gorm:"type:varchar(50)"`
	SelectedDepot string `gorm:"type:varchar(255)"`
	DepotCode     string `gorm:"type:varchar(50)"`

	BirthDate             *string `gorm:"type:varchar(10)"`
	BirthCity             string  `gorm:"type:varchar(255)"`
	MotherName            string  `gorm:"type:varchar(255)"`
	MotherSurname         string  `gorm:"type:varchar(255)"`
	NextOfKinName         string  `gorm:"type:varchar(255)"`
	NextOfKinRelationship string  `gorm:"type:varchar(100)"`
	NextOfKinPhone        string  `gorm:"type:varchar(50)"`

	AddressHistory datatypes.JSON `gorm:"type:jsonb"`

	NationalInsuranceNumber string `gorm:"type:varchar(20)"`
	UtrNumber               string `gorm:"type:varchar(20)"`
	EmploymentStatus        string `gorm:"type:varchar(50)"`
	VatNumber               string `gorm:"type:varchar(20)"`

	ProfilePhotoURL        string `gorm:"type:text"`
	DrivingLicenceFrontURL string `gorm:"type:text"`
	DrivingLicenceBackURL  string `gorm:"type:text"`

	BankAccountNumber          string `gorm:"type:varchar(20)"`
	BankSortCode               string `gorm:"type:varchar(10)"`
	PaymentDeclarationAccepted bool   `gorm:"default:false"`

	CurrentStep    int            `gorm:"not null;default:1"`
	CompletedSteps datatypes.JSON `gorm:"type:jsonb"`
	Fields         datatypes.JSON `gorm:"type:jsonb"`

	IsCompleted bool `gorm:"default:false;index"`
	CompletedAt *time.Time
	IsAbandoned bool `gorm:"default:false;index"`
	AbandonedAt *time.Time

	LastActivity time.Time `gorm:"index"`
	UserAgent    string    `gorm:"type:text"`
	IpAddress    string    `gorm:"type:varchar(45)"`
	UtmSource    string    `gorm:"type:varchar(255)"`
	UtmMedium    string    `gorm:"type:varchar(255)"`
	UtmCampaign  string    `gorm:"type:varchar(255)"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (FormSubmission) TableName() string {
	return "form_submissions"
}
