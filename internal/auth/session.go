package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
)

// SessionResolver turns a bearer token into a user id. The token must be
// validly signed and still have a session row for the same user.
type SessionResolver struct {
	tokens   *TokenManager
	sessions ports.SessionRepo
}

func NewSessionResolver(tokens *TokenManager, sessions ports.SessionRepo) *SessionResolver {
	return &SessionResolver{tokens: tokens, sessions: sessions}
}

func (r *SessionResolver) Resolve(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: missing token", domain.ErrUnauthorized)
	}

	userID, err := r.tokens.Parse(token)
	if err != nil {
		return 0, err
	}

	s, err := r.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, fmt.Errorf("%w: no session", domain.ErrUnauthorized)
		}
		return 0, fmt.Errorf("resolve session: %w", err)
	}

	if s.UserID != userID {
		return 0, fmt.Errorf("%w: session belongs to another user", domain.ErrUnauthorized)
	}

	return userID, nil
}
