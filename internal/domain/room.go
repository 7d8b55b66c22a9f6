package domain

import "time"

type Room struct {
	ID        int64     `json:"id"`
	HotelID   int64     `json:"hotelId"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomOccupancy is a snapshot of how many bookings reference a room.
type RoomOccupancy struct {
	RoomID   int64
	HotelID  int64
	Capacity int
	Occupied int
}

func (o RoomOccupancy) Full() bool {
	return o.Occupied >= o.Capacity
}

func (o RoomOccupancy) Available() int {
	if o.Full() {
		return 0
	}
	return o.Capacity - o.Occupied
}
