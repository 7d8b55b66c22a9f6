package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type EnrollmentRepo interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error)
}

type TicketRepo interface {
	GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error)
}

type SessionRepo interface {
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
}
