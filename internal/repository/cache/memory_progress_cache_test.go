package cache

import (
	"context"
	"testing"
	"time"

	"sbl-onboarding-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestMemoryProgressCacheRoundtrip(t *testing.T) {
	c := NewMemoryProgressCache(time.Minute)

	progress := entity.NewCandidateProgress("session-1")
	progress.MergeFields(map[string]interface{}{"language": "en"})

	assert.NoError(t, c.Save(context.Background(), progress))

	loaded, err := c.Load(context.Background(), "session-1")
	assert.NoError(t, err)
	if assert.NotNil(t, loaded) {
		assert.Equal(t, "en", loaded.Fields["language"])
	}

	missing, err := c.Load(context.Background(), "no-such-session")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryProgressCacheDoesNotAliasCaller(t *testing.T) {
	c := NewMemoryProgressCache(time.Minute)

	progress := entity.NewCandidateProgress("session-1")
	progress.MergeFields(map[string]interface{}{"language": "en"})
	progress.CompletedSteps = []int{1}

	assert.NoError(t, c.Save(context.Background(), progress))

	// Mutations on the caller's copy after Save must not leak into the
	// cached entry.
	progress.Fields["language"] = "bg"
	progress.Fields["utm_source"] = "facebook"
	progress.CompletedSteps[0] = 9
	email := "ana@example.com"
	progress.Email = &email

	loaded, err := c.Load(context.Background(), "session-1")
	assert.NoError(t, err)
	assert.Equal(t, "en", loaded.Fields["language"])
	assert.NotContains(t, loaded.Fields, "utm_source")
	assert.Equal(t, []int{1}, loaded.CompletedSteps)
	assert.Nil(t, loaded.Email)
}

func TestMemoryProgressCacheDoesNotAliasLoads(t *testing.T) {
	c := NewMemoryProgressCache(time.Minute)

	progress := entity.NewCandidateProgress("session-1")
	progress.MergeFields(map[string]interface{}{"language": "en"})
	assert.NoError(t, c.Save(context.Background(), progress))

	first, err := c.Load(context.Background(), "session-1")
	assert.NoError(t, err)
	first.Fields["language"] = "ro"
	first.CompletedSteps = append(first.CompletedSteps, 3)

	second, err := c.Load(context.Background(), "session-1")
	assert.NoError(t, err)
	assert.Equal(t, "en", second.Fields["language"])
	assert.Empty(t, second.CompletedSteps)
}

func TestMemoryProgressCacheClear(t *testing.T) {
	c := NewMemoryProgressCache(time.Minute)

	progress := entity.NewCandidateProgress("session-1")
	assert.NoError(t, c.Save(context.Background(), progress))
	assert.NoError(t, c.Clear(context.Background(), "session-1"))

	loaded, err := c.Load(context.Background(), "session-1")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}
