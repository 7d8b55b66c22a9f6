package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	tx          ports.Transactor
	enrollments ports.EnrollmentRepo
	tickets     ports.TicketRepo
	rooms       ports.RoomRepo
	bookings    ports.BookingRepo
	logger      logger.Logger

	exemptCurrentRoom bool
}

type Option func(*BookingService)

// WithExemptCurrentRoom makes a room change into the booking's own room
// ignore that booking when counting occupancy.
func WithExemptCurrentRoom(exempt bool) Option {
	return func(s *BookingService) {
		s.exemptCurrentRoom = exempt
	}
}

func NewBookingService(
	tx ports.Transactor,
	enrollments ports.EnrollmentRepo,
	tickets ports.TicketRepo,
	rooms ports.RoomRepo,
	bookings ports.BookingRepo,
	logger logger.Logger,
	opts ...Option,
) *BookingService {
	s := &BookingService{
		tx:          tx,
		enrollments: enrollments,
		tickets:     tickets,
		rooms:       rooms,
		bookings:    bookings,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *BookingService) GetBooking(ctx context.Context, userID int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID int64) (*domain.Booking, error) {
	var booking *domain.Booking

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkEntitlement(ctx, userID); err != nil {
			return err
		}

		existing, err := s.bookings.GetByUserID(ctx, userID)
		switch {
		case err == nil && existing != nil:
			return domain.ErrAlreadyBooked
		case err != nil && !errors.Is(err, domain.ErrBookingNotFound):
			return fmt.Errorf("check existing booking: %w", err)
		}

		if err = s.checkCapacity(ctx, roomID, nil); err != nil {
			return err
		}

		booking = &domain.Booking{UserID: userID, RoomID: roomID}
		if err = s.bookings.Create(ctx, booking); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logDenied(ctx, "create", userID, roomID, err)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking created",
		logger.Any("booking_id", booking.ID),
		logger.Any("user_id", userID),
		logger.Any("room_id", roomID),
	)

	return booking, nil
}

func (s *BookingService) ChangeBookingRoom(ctx context.Context, userID, roomID, bookingID int64) (*domain.Booking, error) {
	var booking *domain.Booking

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := s.bookings.GetForUpdate(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}

		if !b.OwnedBy(userID) {
			return domain.ErrNotOwner
		}

		if err = s.checkCapacity(ctx, roomID, b); err != nil {
			return err
		}

		b.RoomID = roomID
		if err = s.bookings.UpdateRoom(ctx, b); err != nil {
			return fmt.Errorf("update booking: %w", err)
		}

		booking = b
		return nil
	})
	if err != nil {
		s.logDenied(ctx, "change", userID, roomID, err)
		return nil, fmt.Errorf("change booking room: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking room changed",
		logger.Any("booking_id", booking.ID),
		logger.Any("user_id", userID),
		logger.Any("room_id", roomID),
	)

	return booking, nil
}

func (s *BookingService) RoomOccupancy(ctx context.Context) ([]domain.RoomOccupancy, error) {
	occ, err := s.rooms.ListOccupancy(ctx)
	if err != nil {
		return nil, fmt.Errorf("list occupancy: %w", err)
	}
	return occ, nil
}

// checkEntitlement verifies enrollment, ticket and ticket eligibility in that order.
func (s *BookingService) checkEntitlement(ctx context.Context, userID int64) error {
	enrollment, err := s.enrollments.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrEnrollmentNotFound) {
		return domain.ErrNoEnrollment
	}
	if err != nil {
		return fmt.Errorf("get enrollment: %w", err)
	}

	ticket, err := s.tickets.GetByEnrollmentID(ctx, enrollment.ID)
	if errors.Is(err, domain.ErrTicketNotFound) {
		return domain.ErrNoTicket
	}
	if err != nil {
		return fmt.Errorf("get ticket: %w", err)
	}

	return ticket.HotelEligibility()
}

// checkCapacity locks the room and compares its occupancy with its capacity.
// moving is the booking being relocated, nil on creation.
func (s *BookingService) checkCapacity(ctx context.Context, roomID int64, moving *domain.Booking) error {
	room, err := s.rooms.GetForUpdate(ctx, roomID)
	if err != nil {
		return fmt.Errorf("get room: %w", err)
	}

	occupied, err := s.bookings.CountByRoom(ctx, roomID)
	if err != nil {
		return fmt.Errorf("count bookings: %w", err)
	}

	if s.exemptCurrentRoom && moving != nil && moving.RoomID == roomID {
		occupied--
	}

	if occupied >= room.Capacity {
		return domain.ErrRoomFull
	}
	return nil
}

func (s *BookingService) logDenied(ctx context.Context, op string, userID, roomID int64, err error) {
	reason, ok := domain.ReasonOf(err)
	if !ok {
		if errors.Is(err, domain.ErrNotFound) {
			reason = "not_found"
		} else {
			return
		}
	}

	s.logger.LogAttrs(ctx, logger.DebugLevel, "booking request denied",
		logger.String("operation", op),
		logger.String("reason", string(reason)),
		logger.Any("user_id", userID),
		logger.Any("room_id", roomID),
	)
}
