package cache

import (
	"context"
	"time"

	"sbl-onboarding-be/internal/entity"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryProgressCache is the local-only variant used when the app runs
// without Redis. Progress is lost on restart, which matches the
// single instance deployment it is meant for.
type MemoryProgressCache struct {
	store *gocache.Cache
}

func NewMemoryProgressCache(ttl time.Duration) ProgressCache {
	return &MemoryProgressCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

func (c *MemoryProgressCache) Save(_ context.Context, progress *entity.CandidateProgress) error {
	c.store.SetDefault(progressKey(progress.SessionToken), progress.Clone())
	return nil
}

func (c *MemoryProgressCache) Load(_ context.Context, sessionToken string) (*entity.CandidateProgress, error) {
	raw, found := c.store.Get(progressKey(sessionToken))
	if !found {
		return nil, nil
	}
	return raw.(*entity.CandidateProgress).Clone(), nil
}

func (c *MemoryProgressCache) Clear(_ context.Context, sessionToken string) error {
	c.store.Delete(progressKey(sessionToken))
	return nil
}
