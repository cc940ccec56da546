package completion

import "time"

// DocumentStatus tracks a candidate document through its lifecycle.
// "pending" means no file has been attached yet; review outcomes are
// "approved" and "rejected". A rejected document returns to "uploaded"
// when the candidate re-uploads it.
type DocumentStatus string

const (
	StatusPending  DocumentStatus = "pending"
	StatusUploaded DocumentStatus = "uploaded"
	StatusApproved DocumentStatus = "approved"
	StatusRejected DocumentStatus = "rejected"
)

// RequiredDocumentType is one entry of the document policy.
type RequiredDocumentType struct {
	Code         string
	DisplayName  string
	IsRequired   bool
	DisplayOrder int
}

// DocumentRecord is a single upload of a given document type.
type DocumentRecord struct {
	DocumentTypeCode string
	Status           DocumentStatus
	UploadedAt       *time.Time
	ReviewNotes      string
}

// Summary is the derived completion report. It is never persisted;
// it is recomputed from the current record set on demand.
type Summary struct {
	TotalRequired        int      `json:"total_required"`
	TotalUploaded        int      `json:"total_uploaded"`
	TotalApproved        int      `json:"total_approved"`
	TotalRejected        int      `json:"total_rejected"`
	TotalPending         int      `json:"total_pending"`
	MissingDocumentCodes []string `json:"missing_document_codes"`
	IsComplete           bool     `json:"is_complete"`
}
