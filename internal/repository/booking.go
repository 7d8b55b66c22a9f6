package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const uniqueViolation = "23505"

type BookingRepository struct {
	conn
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{conn: newConn(db)}
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error) {
	query := `SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
	                 r.id, r.hotel_id, r.name, r.capacity, r.created_at, r.updated_at
	          FROM bookings b
	          JOIN rooms r ON r.id = b.room_id
	          WHERE b.user_id = $1`

	row, err := r.queryRow(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking by user: %w", err)
	}

	var (
		b    domain.Booking
		room domain.Room
	)
	if err = row.Scan(
		&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt,
		&room.ID, &room.HotelID, &room.Name, &room.Capacity, &room.CreatedAt, &room.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	b.Room = &room

	return &b, nil
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT id, user_id, room_id, created_at, updated_at
	          FROM bookings
	          WHERE id = $1
	          FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *BookingRepository) getOne(ctx context.Context, query string, id int64) (*domain.Booking, error) {
	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) CountByRoom(ctx context.Context, roomID int64) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE room_id = $1`

	row, err := r.queryRow(ctx, query, roomID)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return n, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (user_id, room_id, created_at, updated_at)
	          VALUES ($1, $2, now(), now())
	          RETURNING id, created_at, updated_at`

	row, err := r.queryRow(ctx, query, b.UserID, b.RoomID)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) UpdateRoom(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings
	          SET room_id = $2, updated_at = now()
	          WHERE id = $1
	          RETURNING updated_at`

	row, err := r.queryRow(ctx, query, b.ID, b.RoomID)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	if err = row.Scan(&b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("update booking: %w", err)
	}
	b.Room = nil

	return nil
}
