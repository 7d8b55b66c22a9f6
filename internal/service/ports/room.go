package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type RoomRepo interface {
	// GetForUpdate locks the room row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*domain.Room, error)
	ListOccupancy(ctx context.Context) ([]domain.RoomOccupancy, error)
}
