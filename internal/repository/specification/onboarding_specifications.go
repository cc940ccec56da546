package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByEmail filters submissions or candidates by their unique email key.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// BySubmissionID filters documents belonging to one submission.
type BySubmissionID struct {
	SubmissionID uuid.UUID
}

func (s BySubmissionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("submission_id = ?", s.SubmissionID)
}

// ByDocumentTypeCode filters documents of one policy type.
type ByDocumentTypeCode struct {
	Code string
}

func (s ByDocumentTypeCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_type_code = ?", s.Code)
}

// InFlight keeps submissions that are neither completed nor already
// marked abandoned. Used by the abandonment sweeper.
type InFlight struct{}

func (s InFlight) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_completed = ? AND is_abandoned = ?", false, false)
}

// CompletedOnly keeps completed submissions, the migration input set.
type CompletedOnly struct{}

func (s CompletedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_completed = ?", true)
}

// InactiveSince keeps rows whose last activity predates the cutoff.
type InactiveSince struct {
	Cutoff time.Time
}

func (s InactiveSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("last_activity < ?", s.Cutoff)
}

// FollowupPending keeps abandonments that have not been followed up yet.
type FollowupPending struct{}

func (s FollowupPending) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("followup_sent = ?", false)
}
