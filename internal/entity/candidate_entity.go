package entity

import (
	"time"

	"github.com/google/uuid"
)

type CandidateStatus string

const (
	CandidateStatusOnboarding CandidateStatus = "onboarding"
	CandidateStatusComplete   CandidateStatus = "complete"
)

// Candidate is the normalized record a completed FormSubmission is promoted
// into. Documents hang off it as CandidateDocument rows.
type Candidate struct {
	Id    uuid.UUID
	Email string

	FullName      string
	Phone         string
	Language      string
	SelectedDepot string
	DepotCode     string

	BirthDate             *string
	BirthCity             string
	MotherName            string
	MotherSurname         string
	NextOfKinName         string
	NextOfKinRelationship string
	NextOfKinPhone        string

	NationalInsuranceNumber string
	UtrNumber               string
	EmploymentStatus        string
	VatNumber               string

	ProfilePhotoURL        string
	DrivingLicenceFrontURL string
	DrivingLicenceBackURL  string

	BankAccountNumber string
	BankSortCode      string

	Status                CandidateStatus
	OnboardingCompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt *time.Time
}
