package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	"github.com/stpnv0/HotelBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

// Response bodies stay coarse. The cause goes to the request logger only.
const (
	msgNotFound     = "not found"
	msgForbidden    = "forbidden"
	msgUnauthorized = "unauthorized"
	msgInternal     = "internal server error"
)

const (
	opGet    = "get"
	opCreate = "create"
	opChange = "change"
)

type BookingSvc interface {
	GetBooking(ctx context.Context, userID int64) (*domain.Booking, error)
	CreateBooking(ctx context.Context, userID, roomID int64) (*domain.Booking, error)
	ChangeBookingRoom(ctx context.Context, userID, roomID, bookingID int64) (*domain.Booking, error)
}

type DecisionRecorder interface {
	RecordDecision(operation string, err error)
}

type Handler struct {
	bookingService BookingSvc
	decisions      DecisionRecorder
}

func NewHandler(bookingService BookingSvc, decisions DecisionRecorder) *Handler {
	return &Handler{
		bookingService: bookingService,
		decisions:      decisions,
	}
}

func (h *Handler) GetBooking(c *ginext.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), userID)
	h.decisions.RecordDecision(opGet, err)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), userID, *req.RoomID)
	h.decisions.RecordDecision(opCreate, err)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingIDResponse{BookingID: booking.ID})
}

func (h *Handler) ChangeBookingRoom(c *ginext.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || bookingID < 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.BookingRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.ChangeBookingRoom(c.Request.Context(), userID, *req.RoomID, bookingID)
	h.decisions.RecordDecision(opChange, err)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingIDResponse{BookingID: booking.ID})
}

// userID reads the caller set by BearerAuth. A missing value means the
// route was mounted without auth.
func (h *Handler) userID(c *ginext.Context) (int64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthorized)
		return 0, false
	}
	return userID, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	if reason, ok := domain.ReasonOf(err); ok {
		c.Set("reason", string(reason))
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgNotFound})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: msgForbidden})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: msgUnauthorized})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgInternal})
	}
}
