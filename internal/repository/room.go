package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type RoomRepository struct {
	conn
}

func NewRoomRepo(db *dbpg.DB) *RoomRepository {
	return &RoomRepository{conn: newConn(db)}
}

func (r *RoomRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Room, error) {
	query := `SELECT id, hotel_id, name, capacity, created_at, updated_at
	          FROM rooms
	          WHERE id = $1
	          FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *RoomRepository) getOne(ctx context.Context, query string, id int64) (*domain.Room, error) {
	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	var room domain.Room
	if err = row.Scan(
		&room.ID, &room.HotelID, &room.Name, &room.Capacity,
		&room.CreatedAt, &room.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}

	return &room, nil
}

func (r *RoomRepository) ListOccupancy(ctx context.Context) ([]domain.RoomOccupancy, error) {
	query := `
		SELECT r.id, r.hotel_id, r.capacity, COUNT(b.id) AS occupied
		FROM rooms r
		LEFT JOIN bookings b ON b.room_id = r.id
		GROUP BY r.id
		ORDER BY r.id`

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list occupancy: %w", err)
	}
	defer rows.Close()

	var res []domain.RoomOccupancy
	for rows.Next() {
		var o domain.RoomOccupancy
		if err = rows.Scan(&o.RoomID, &o.HotelID, &o.Capacity, &o.Occupied); err != nil {
			return nil, fmt.Errorf("scan occupancy: %w", err)
		}
		res = append(res, o)
	}

	return res, rows.Err()
}
