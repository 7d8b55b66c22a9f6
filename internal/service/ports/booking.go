package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type BookingRepo interface {
	// GetByUserID returns the user's booking with its Room attached.
	GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error)
	// GetForUpdate locks the booking row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*domain.Booking, error)
	CountByRoom(ctx context.Context, roomID int64) (int, error)
	Create(ctx context.Context, b *domain.Booking) error
	UpdateRoom(ctx context.Context, b *domain.Booking) error
}
