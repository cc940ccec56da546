package dto

import (
	"time"

	"github.com/google/uuid"
)

type ReviewDocumentRequest struct {
	Id          uuid.UUID
	Status      string  `json:"status" validate:"required,oneof=approved rejected"`
	ReviewNotes *string `json:"review_notes"`
}

type ReviewDocumentResponse struct {
	Id         uuid.UUID  `json:"id"`
	Status     string     `json:"status"`
	ReviewedAt *time.Time `json:"reviewed_at"`
}

type MarkFollowupRequest struct {
	FollowupType string `json:"followup_type" validate:"omitempty,oneof=email sms phone"`
}

type AbandonmentResponse struct {
	Id              uuid.UUID  `json:"id"`
	SubmissionId    uuid.UUID  `json:"submission_id"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	FullName        string     `json:"full_name,omitempty"`
	AbandonedAtStep int        `json:"abandoned_at_step"`
	FollowupSent    bool       `json:"followup_sent"`
	FollowupType    string     `json:"followup_type,omitempty"`
	FollowupSentAt  *time.Time `json:"followup_sent_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
