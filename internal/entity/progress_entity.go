package entity

import (
	"time"

	"sbl-onboarding-be/internal/constant"
)

// CandidateProgress is the single source of truth for where a candidate is
// in the onboarding flow. It lives in the progress cache keyed by session
// token; the remote submission row mirrors it once an email is captured.
type CandidateProgress struct {
	SessionToken   string
	Email          *string
	CurrentStep    constant.Step
	CompletedSteps []int
	Fields         map[string]interface{}
	IsCompleted    bool
	CompletedAt    *time.Time
	LastActivity   time.Time
}

// NewCandidateProgress returns fresh progress at the first step.
func NewCandidateProgress(sessionToken string) *CandidateProgress {
	return &CandidateProgress{
		SessionToken:   sessionToken,
		CurrentStep:    constant.StepWelcome,
		CompletedSteps: make([]int, 0),
		Fields:         make(map[string]interface{}),
		LastActivity:   time.Now(),
	}
}

// Clone returns a deep copy. Cache implementations hand out clones so a
// caller mutating the returned progress never reaches into the stored one.
func (p *CandidateProgress) Clone() *CandidateProgress {
	clone := *p
	if p.Email != nil {
		email := *p.Email
		clone.Email = &email
	}
	if p.CompletedAt != nil {
		completedAt := *p.CompletedAt
		clone.CompletedAt = &completedAt
	}
	clone.CompletedSteps = append([]int(nil), p.CompletedSteps...)
	if p.Fields != nil {
		clone.Fields = make(map[string]interface{}, len(p.Fields))
		for k, v := range p.Fields {
			clone.Fields[k] = v
		}
	}
	return &clone
}

// HasCompleted reports whether the step was recorded as done. Completed
// steps are never removed, so this is monotone over a session.
func (p *CandidateProgress) HasCompleted(step int) bool {
	for _, s := range p.CompletedSteps {
		if s == step {
			return true
		}
	}
	return false
}

// MergeFields adds data additively: new keys are inserted, resubmitted keys
// overwrite their previous value. Nothing is ever dropped.
func (p *CandidateProgress) MergeFields(data map[string]interface{}) {
	if p.Fields == nil {
		p.Fields = make(map[string]interface{}, len(data))
	}
	for k, v := range data {
		p.Fields[k] = v
	}
}

// MarkStepCompleted records the step and advances, clamped to the last step
// so CurrentStep always stays inside [1, TotalSteps].
func (p *CandidateProgress) MarkStepCompleted(step constant.Step) {
	if !p.HasCompleted(int(step)) {
		p.CompletedSteps = append(p.CompletedSteps, int(step))
	}
	next := step + 1
	if int(next) > constant.TotalSteps {
		next = constant.Step(constant.TotalSteps)
	}
	p.CurrentStep = next
	p.LastActivity = time.Now()
}
