package dto

import (
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type RoomResponse struct {
	ID        int64  `json:"id"`
	HotelID   int64  `json:"hotelId"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type BookingResponse struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"userId"`
	RoomID    int64         `json:"roomId"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
	Room      *RoomResponse `json:"Room,omitempty"`
}

type BookingIDResponse struct {
	BookingID int64 `json:"bookingId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToRoomResponse(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	return &RoomResponse{
		ID:        r.ID,
		HotelID:   r.HotelID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
		Room:      ToRoomResponse(b.Room),
	}
}
