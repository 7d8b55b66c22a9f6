package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type SessionRepository struct {
	conn
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{conn: newConn(db)}
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	query := `SELECT id, user_id, token, created_at
	          FROM sessions
	          WHERE token = $1`

	row, err := r.queryRow(ctx, query, token)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s domain.Session
	if err = row.Scan(&s.ID, &s.UserID, &s.Token, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	return &s, nil
}
