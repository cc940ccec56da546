package constant

// Step is one page of the linear onboarding sequence. The flow is a closed,
// ordered enumeration: forward navigation moves exactly one step at a time.
type Step int

const (
	StepWelcome Step = iota + 1
	StepDepot
	StepContact
	StepPersonalInfo
	StepAddressHistory
	StepAdditionalInfo
	StepProfilePhoto
	StepDrivingLicence
	StepBankDetails
	StepDocumentGuide
	StepDocumentsUpload

	TotalSteps = int(StepDocumentsUpload)
)

var stepNames = map[Step]string{
	StepWelcome:         "welcome",
	StepDepot:           "depot",
	StepContact:         "contact",
	StepPersonalInfo:    "personal_info",
	StepAddressHistory:  "address_history",
	StepAdditionalInfo:  "additional_info",
	StepProfilePhoto:    "profile_photo",
	StepDrivingLicence:  "driving_licence",
	StepBankDetails:     "bank_details",
	StepDocumentGuide:   "document_guide",
	StepDocumentsUpload: "documents_upload",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether s falls inside the flow.
func (s Step) IsValid() bool {
	return s >= StepWelcome && int(s) <= TotalSteps
}

// Document type codes. Seeded into document_types by cmd/seed; the VAT
// certificate is the only optional one.
const (
	DocRightToWork       = "right_to_work"
	DocProofOfAddress    = "proof_of_address"
	DocNationalInsurance = "national_insurance"
	DocBankStatement     = "bank_statement"
	DocVatCertificate    = "vat_certificate"
)

var DocumentLabels = map[string]string{
	DocRightToWork:       "Right to Work in UK",
	DocProofOfAddress:    "Proof of Address",
	DocNationalInsurance: "National Insurance Document",
	DocBankStatement:     "Bank Statement",
	DocVatCertificate:    "VAT Certificate (optional)",
}

// Supported form languages.
const (
	LanguagePtBR    = "pt-BR"
	LanguageEN      = "en"
	LanguageBG      = "bg"
	LanguageRO      = "ro"
	DefaultLanguage = LanguageEN
)

var SupportedLanguages = []string{LanguagePtBR, LanguageEN, LanguageBG, LanguageRO}

// Object storage layout for candidate files.
const (
	StorageBucket              = "form-documents"
	StoragePathProfilePhotos   = "profile-photos"
	StoragePathDrivingLicences = "driving-licences"
	StoragePathDocuments       = "documents"

	MaxUploadSizeBytes = 10 * 1024 * 1024
)

var AllowedUploadContentTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"application/pdf",
}
