package dto

import (
	"time"

	"github.com/google/uuid"
)

type InitializeRequest struct {
	// ResumeToken restores an earlier session (or an email resume link)
	// instead of starting fresh. A stale token silently starts over.
	ResumeToken string `json:"resume_token"`
	Language    string `json:"language" validate:"omitempty,oneof=pt-BR en bg ro"`
	UserAgent   string `json:"user_agent"`
	UtmSource   string `json:"utm_source"`
	UtmMedium   string `json:"utm_medium"`
}

type InitializeResponse struct {
	SessionToken string `json:"session_token"`
	CurrentStep  int    `json:"current_step"`
	TotalSteps   int    `json:"total_steps"`
}

type SaveStepRequest struct {
	Step   int                    // from path
	Fields map[string]interface{} `json:"fields" validate:"required"`
}

type SaveStepResponse struct {
	CurrentStep    int   `json:"current_step"`
	CompletedSteps []int `json:"completed_steps"`
	IsCompleted    bool  `json:"is_completed"`
}

type RegisterContactRequest struct {
	FullName string `json:"full_name" validate:"required,full_name"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,uk_phone"`
}

type RegisterContactResponse struct {
	CurrentStep    int   `json:"current_step"`
	CompletedSteps []int `json:"completed_steps"`
}

type PreviousStepResponse struct {
	CurrentStep int `json:"current_step"`
}

type ProgressResponse struct {
	SessionToken   string                 `json:"session_token"`
	Email          *string                `json:"email,omitempty"`
	CurrentStep    int                    `json:"current_step"`
	TotalSteps     int                    `json:"total_steps"`
	CompletedSteps []int                  `json:"completed_steps"`
	Fields         map[string]interface{} `json:"fields"`
	IsCompleted    bool                   `json:"is_completed"`
	LastActivity   time.Time              `json:"last_activity"`
}

type FinalizeResponse struct {
	SubmissionId uuid.UUID  `json:"submission_id"`
	IsCompleted  bool       `json:"is_completed"`
	CompletedAt  *time.Time `json:"completed_at"`
}

// StepSyncMessage is the payload published on the step sync topic after
// each accepted step. The consumer persists it on a best effort basis.
type StepSyncMessage struct {
	SessionToken   string                 `json:"session_token"`
	Email          *string                `json:"email,omitempty"`
	Step           int                    `json:"step"`
	CompletedSteps []int                  `json:"completed_steps"`
	Fields         map[string]interface{} `json:"fields"`
	OccurredAt     time.Time              `json:"occurred_at"`
}
