package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T) (*SessionResolver, *TokenManager, *mocks.MockSessionRepo) {
	t.Helper()
	tokens, err := NewTokenManager("secret")
	require.NoError(t, err)
	sessions := mocks.NewMockSessionRepo(t)
	return NewSessionResolver(tokens, sessions), tokens, sessions
}

func TestSessionResolver_Resolve_Success(t *testing.T) {
	r, tokens, sessions := newResolver(t)

	token, err := tokens.Issue(7, time.Hour)
	require.NoError(t, err)

	sessions.EXPECT().GetByToken(mock.Anything, token).
		Return(&domain.Session{ID: 1, UserID: 7, Token: token}, nil)

	userID, err := r.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestSessionResolver_Resolve_MissingToken(t *testing.T) {
	r, _, _ := newResolver(t)

	_, err := r.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionResolver_Resolve_InvalidToken(t *testing.T) {
	r, _, _ := newResolver(t)

	_, err := r.Resolve(context.Background(), "garbage")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionResolver_Resolve_NoSession(t *testing.T) {
	r, tokens, sessions := newResolver(t)

	token, err := tokens.Issue(7, time.Hour)
	require.NoError(t, err)

	sessions.EXPECT().GetByToken(mock.Anything, token).Return(nil, domain.ErrSessionNotFound)

	_, err = r.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionResolver_Resolve_SessionOfAnotherUser(t *testing.T) {
	r, tokens, sessions := newResolver(t)

	token, err := tokens.Issue(7, time.Hour)
	require.NoError(t, err)

	sessions.EXPECT().GetByToken(mock.Anything, token).
		Return(&domain.Session{ID: 1, UserID: 8, Token: token}, nil)

	_, err = r.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionResolver_Resolve_RepoError(t *testing.T) {
	r, tokens, sessions := newResolver(t)

	token, err := tokens.Issue(7, time.Hour)
	require.NoError(t, err)

	dbErr := errors.New("connection reset")
	sessions.EXPECT().GetByToken(mock.Anything, token).Return(nil, dbErr)

	_, err = r.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}
