package entity

import (
	"time"

	"github.com/google/uuid"
)

// FormSubmission is the flat remote record of an in-flight application,
// keyed uniquely by email. Step data lands both in the typed columns below
// and in the additive Fields map; the migration command later promotes
// completed submissions into the normalized Candidate schema.
type FormSubmission struct {
	Id    uuid.UUID
	Email string

	Language      string
	FullName      string
	Phone         string
	SelectedDepot string
	DepotCode     string

	BirthDate             *string
	BirthCity             string
	MotherName            string
	MotherSurname         string
	NextOfKinName         string
	NextOfKinRelationship string
	NextOfKinPhone        string

	AddressHistory []map[string]interface{}

	NationalInsuranceNumber string
	UtrNumber               string
	EmploymentStatus        string
	VatNumber               string

	ProfilePhotoURL        string
	DrivingLicenceFrontURL string
	DrivingLicenceBackURL  string

	BankAccountNumber          string
	BankSortCode               string
	PaymentDeclarationAccepted bool

	CurrentStep    int
	CompletedSteps []int
	Fields         map[string]interface{}

	IsCompleted bool
	CompletedAt *time.Time
	IsAbandoned bool
	AbandonedAt *time.Time

	LastActivity time.Time
	UserAgent    string
	IpAddress    string
	UtmSource    string
	UtmMedium    string
	UtmCampaign  string

	CreatedAt time.Time
	UpdatedAt *time.Time
}
