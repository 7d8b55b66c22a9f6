package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type EnrollmentRepository struct {
	conn
}

func NewEnrollmentRepo(db *dbpg.DB) *EnrollmentRepository {
	return &EnrollmentRepository{conn: newConn(db)}
}

func (r *EnrollmentRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	query := `SELECT id, user_id, name, cpf, phone, birthday, created_at, updated_at
	          FROM enrollments
	          WHERE user_id = $1`

	row, err := r.queryRow(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}

	var e domain.Enrollment
	if err = row.Scan(
		&e.ID, &e.UserID, &e.Name, &e.CPF, &e.Phone,
		&e.Birthday, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("scan enrollment: %w", err)
	}

	return &e, nil
}

type TicketRepository struct {
	conn
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{conn: newConn(db)}
}

func (r *TicketRepository) GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	query := `SELECT t.id, t.enrollment_id, t.status,
	                 tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel
	          FROM tickets t
	          JOIN ticket_types tt ON tt.id = t.ticket_type_id
	          WHERE t.enrollment_id = $1`

	row, err := r.queryRow(ctx, query, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	var (
		t      domain.Ticket
		status string
	)
	if err = row.Scan(
		&t.ID, &t.EnrollmentID, &status,
		&t.Type.ID, &t.Type.Name, &t.Type.Price, &t.Type.IsRemote, &t.Type.IncludesHotel,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	if t.Status, err = domain.ParseTicketStatus(status); err != nil {
		return nil, fmt.Errorf("ticket %d: %w", t.ID, err)
	}

	return &t, nil
}
