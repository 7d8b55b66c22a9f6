package domain

import (
	"errors"
	"fmt"
)

// Error kinds. The HTTP layer maps only on these.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrBookingNotFound    = fmt.Errorf("booking %w", ErrNotFound)
	ErrRoomNotFound       = fmt.Errorf("room %w", ErrNotFound)
	ErrEnrollmentNotFound = fmt.Errorf("enrollment %w", ErrNotFound)
	ErrTicketNotFound     = fmt.Errorf("ticket %w", ErrNotFound)
	ErrSessionNotFound    = fmt.Errorf("session %w", ErrNotFound)
)

var (
	ErrInvalidTicketStatus = errors.New("invalid ticket status")
)

type DenyReason string

const (
	ReasonNoEnrollment     DenyReason = "no_enrollment"
	ReasonNoTicket         DenyReason = "no_ticket"
	ReasonRemoteTicket     DenyReason = "remote_ticket"
	ReasonHotelNotIncluded DenyReason = "hotel_not_included"
	ReasonTicketNotPaid    DenyReason = "ticket_not_paid"
	ReasonAlreadyBooked    DenyReason = "already_booked"
	ReasonRoomFull         DenyReason = "room_full"
	ReasonNotOwner         DenyReason = "not_owner"
)

// ForbiddenError keeps the concrete cause of a denial while still
// matching ErrForbidden.
type ForbiddenError struct {
	Reason DenyReason
	msg    string
}

func (e *ForbiddenError) Error() string {
	return e.msg
}

func (e *ForbiddenError) Is(target error) bool {
	return target == ErrForbidden
}

func newForbidden(reason DenyReason, msg string) *ForbiddenError {
	return &ForbiddenError{Reason: reason, msg: msg}
}

var (
	ErrNoEnrollment     = newForbidden(ReasonNoEnrollment, "user has no enrollment")
	ErrNoTicket         = newForbidden(ReasonNoTicket, "enrollment has no ticket")
	ErrRemoteTicket     = newForbidden(ReasonRemoteTicket, "ticket is remote")
	ErrHotelNotIncluded = newForbidden(ReasonHotelNotIncluded, "ticket does not include hotel")
	ErrTicketNotPaid    = newForbidden(ReasonTicketNotPaid, "ticket is not paid")
	ErrAlreadyBooked    = newForbidden(ReasonAlreadyBooked, "user already has a booking")
	ErrRoomFull         = newForbidden(ReasonRoomFull, "room is at full capacity")
	ErrNotOwner         = newForbidden(ReasonNotOwner, "booking belongs to another user")
)

// ReasonOf returns the deny reason carried by err, if any.
func ReasonOf(err error) (DenyReason, bool) {
	var fe *ForbiddenError
	if errors.As(err, &fe) {
		return fe.Reason, true
	}
	return "", false
}
