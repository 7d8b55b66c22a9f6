package domain

import "fmt"

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusReserved, TicketStatusPaid:
		return true
	default:
		return false
	}
}

// ParseTicketStatus rejects anything outside the known statuses.
func ParseTicketStatus(raw string) (TicketStatus, error) {
	s := TicketStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTicketStatus, raw)
	}
	return s, nil
}

type TicketType struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	IsRemote      bool   `json:"isRemote"`
	IncludesHotel bool   `json:"includesHotel"`
}

type Ticket struct {
	ID           int64        `json:"id"`
	EnrollmentID int64        `json:"enrollmentId"`
	Status       TicketStatus `json:"status"`
	Type         TicketType   `json:"TicketType"`
}

// HotelEligibility returns nil for a non-remote, hotel-inclusive, paid ticket,
// otherwise the first failed condition in that order.
func (t *Ticket) HotelEligibility() error {
	switch {
	case t.Type.IsRemote:
		return ErrRemoteTicket
	case !t.Type.IncludesHotel:
		return ErrHotelNotIncluded
	case t.Status != TicketStatusPaid:
		return ErrTicketNotPaid
	default:
		return nil
	}
}
