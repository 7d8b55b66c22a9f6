package dto

type BookingRequest struct {
	RoomID *int64 `json:"roomId" binding:"required,min=0"`
}
