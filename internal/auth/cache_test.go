package auth

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// unreachableRedis points at a closed port so every command fails fast.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newCachedSessions(t *testing.T) (*CachedSessions, *mocks.MockSessionRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	next := mocks.NewMockSessionRepo(t)
	return NewCachedSessions(next, client, time.Minute, newTestLogger(t)), next, mr
}

func testSession() *domain.Session {
	return &domain.Session{
		ID:        3,
		UserID:    9,
		Token:     "tok",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestCachedSessions_MissPopulatesCache(t *testing.T) {
	c, next, mr := newCachedSessions(t)
	want := testSession()

	next.EXPECT().GetByToken(mock.Anything, "tok").Return(want, nil).Once()

	got, err := c.GetByToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.True(t, mr.Exists("session:tok"))
	assert.Equal(t, time.Minute, mr.TTL("session:tok"))

	raw, err := mr.Get("session:tok")
	require.NoError(t, err)
	var cached domain.Session
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, *want, cached)

	// served from redis; the repo expectation above allows a single call
	got, err = c.GetByToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCachedSessions_HitSkipsRepo(t *testing.T) {
	c, _, mr := newCachedSessions(t)
	want := testSession()

	data, err := json.Marshal(want)
	require.NoError(t, err)
	require.NoError(t, mr.Set("session:tok", string(data)))

	got, err := c.GetByToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCachedSessions_CorruptValueFallsThrough(t *testing.T) {
	c, next, mr := newCachedSessions(t)
	want := testSession()

	require.NoError(t, mr.Set("session:tok", "{not json"))
	next.EXPECT().GetByToken(mock.Anything, "tok").Return(want, nil).Once()

	got, err := c.GetByToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	raw, err := mr.Get("session:tok")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"userId":9,"token":"tok","createdAt":"2026-01-02T03:04:05Z"}`, raw)
}

func TestCachedSessions_NotFoundIsNotCached(t *testing.T) {
	c, next, mr := newCachedSessions(t)

	next.EXPECT().GetByToken(mock.Anything, "tok").Return(nil, domain.ErrSessionNotFound).Twice()

	for i := 0; i < 2; i++ {
		_, err := c.GetByToken(context.Background(), "tok")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
	assert.False(t, mr.Exists("session:tok"))
}

func TestCachedSessions_FallsBackWhenRedisDown(t *testing.T) {
	next := mocks.NewMockSessionRepo(t)
	c := NewCachedSessions(next, unreachableRedis(t), time.Minute, newTestLogger(t))

	want := &domain.Session{ID: 3, UserID: 9, Token: "tok"}
	next.EXPECT().GetByToken(mock.Anything, "tok").Return(want, nil).Once()

	got, err := c.GetByToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCachedSessions_PropagatesNotFound(t *testing.T) {
	next := mocks.NewMockSessionRepo(t)
	c := NewCachedSessions(next, unreachableRedis(t), time.Minute, newTestLogger(t))

	next.EXPECT().GetByToken(mock.Anything, "tok").Return(nil, domain.ErrSessionNotFound).Once()

	_, err := c.GetByToken(context.Background(), "tok")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "session:abc", sessionKey("abc"))
}
