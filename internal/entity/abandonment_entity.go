package entity

import (
	"time"

	"github.com/google/uuid"
)

// FormAbandonment is the follow-up queue row created when a submission goes
// inactive past the configured timeout.
type FormAbandonment struct {
	Id           uuid.UUID
	SubmissionId uuid.UUID
	Email        string
	Phone        string
	FullName     string

	AbandonedAtStep int

	FollowupSent   bool
	FollowupType   string
	FollowupSentAt *time.Time

	CreatedAt time.Time
}
