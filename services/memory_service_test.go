package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"go_trustedbot_backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTurnRepo struct {
	mu    sync.Mutex
	turns []*models.ChatTurn
}

func (r *fakeTurnRepo) Create(ctx context.Context, turn *models.ChatTurn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.turns = append(r.turns, turn)
	return nil
}

func (r *fakeTurnRepo) ListBySession(ctx context.Context, sessionID string) ([]*models.ChatTurn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []*models.ChatTurn
	for _, turn := range r.turns {
		if turn.SessionID == sessionID {
			res = append(res, turn)
		}
	}
	return res, nil
}

func (r *fakeTurnRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []*models.ChatTurn
	for _, turn := range r.turns {
		if turn.SessionID != sessionID {
			kept = append(kept, turn)
		}
	}
	r.turns = kept
	return nil
}

func (r *fakeTurnRepo) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	turns, _ := r.ListBySession(ctx, sessionID)
	return int64(len(turns)), nil
}

type fakeCache struct {
	mu    sync.Mutex
	items map[string]interface{}
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[string]interface{})}
}

func (c *fakeCache) GetCache(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	return v, ok
}

func (c *fakeCache) SetCache(key string, value interface{}, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *fakeCache) DelCache(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func TestMemoryService_AppendThenHistory(t *testing.T) {
	mem := NewMemoryService(&fakeTurnRepo{}, newFakeCache(), time.Hour)
	ctx := context.Background()

	_, err := mem.Append(ctx, "s1", models.RoleUser, "hello")
	require.NoError(t, err)
	turn, err := mem.Append(ctx, "s1", models.RoleAssistant, "hi there")
	require.NoError(t, err)
	assert.NotEmpty(t, turn.ID)

	history, err := mem.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, "hello", history[0].Content)
	assert.Equal(t, models.RoleAssistant, history[1].Role)
	assert.Equal(t, "hi there", history[1].Content)
}

func TestMemoryService_SessionsAreIsolated(t *testing.T) {
	mem := NewMemoryService(&fakeTurnRepo{}, newFakeCache(), time.Hour)
	ctx := context.Background()

	_, err := mem.Append(ctx, "s1", models.RoleUser, "one")
	require.NoError(t, err)
	_, err = mem.Append(ctx, "s2", models.RoleUser, "two")
	require.NoError(t, err)

	history, err := mem.History(ctx, "s2")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "two", history[0].Content)
}

func TestMemoryService_ResetClearsMemory(t *testing.T) {
	repo := &fakeTurnRepo{}
	mem := NewMemoryService(repo, newFakeCache(), time.Hour)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		role := models.RoleUser
		if i%2 == 1 {
			role = models.RoleAssistant
		}
		_, err := mem.Append(ctx, "s1", role, "turn")
		require.NoError(t, err)
	}

	require.NoError(t, mem.Reset(ctx, "s1"))

	history, err := mem.History(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, history)

	count, err := repo.CountBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemoryService_ResetEmptySession(t *testing.T) {
	mem := NewMemoryService(&fakeTurnRepo{}, newFakeCache(), time.Hour)
	require.NoError(t, mem.Reset(context.Background(), "never-seen"))
}
