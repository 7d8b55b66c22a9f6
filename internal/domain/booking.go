package domain

import "time"

type Booking struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	RoomID    int64     `json:"roomId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Room is filled only by lookups that join the booked room.
	Room *Room `json:"Room,omitempty"`
}

// OwnedBy reports whether the booking belongs to userID.
func (b *Booking) OwnedBy(userID int64) bool {
	return b.UserID == userID
}
