package cache

import (
	"context"

	"sbl-onboarding-be/internal/entity"
)

// ProgressCache stores in-flight onboarding progress keyed by session token.
// Load returns (nil, nil) when the token is unknown or expired.
type ProgressCache interface {
	Save(ctx context.Context, progress *entity.CandidateProgress) error
	Load(ctx context.Context, sessionToken string) (*entity.CandidateProgress, error)
	Clear(ctx context.Context, sessionToken string) error
}
