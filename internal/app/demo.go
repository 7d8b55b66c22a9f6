package app

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/HotelBooker/internal/auth"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/repository/memory"
	"github.com/wb-go/wbf/logger"
)

const (
	demoUserID  int64 = 1
	demoHotelID int64 = 1
)

// seedDemo fills an in-memory store with one hotel, a few rooms and a
// user entitled to book. It returns a bearer token for that user.
func seedDemo(store *memory.Store, tokens *auth.TokenManager, log logger.Logger) (string, error) {
	now := time.Now().UTC()

	for i, capacity := range []int{1, 2, 3} {
		id := int64(i + 1)
		store.AddRoom(domain.Room{
			ID:        id,
			HotelID:   demoHotelID,
			Name:      fmt.Sprintf("%d0%d", demoHotelID, id),
			Capacity:  capacity,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	store.AddEnrollment(domain.Enrollment{
		ID:        1,
		UserID:    demoUserID,
		Name:      "Demo Guest",
		CPF:       "00000000000",
		Phone:     "+55 00 00000-0000",
		Birthday:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
		UpdatedAt: now,
	})
	store.AddTicket(domain.Ticket{
		ID:           1,
		EnrollmentID: 1,
		Status:       domain.TicketStatusPaid,
		Type: domain.TicketType{
			ID:            1,
			Name:          "In person + hotel",
			Price:         600,
			IncludesHotel: true,
		},
	})

	token, err := tokens.Issue(demoUserID, 24*time.Hour)
	if err != nil {
		return "", fmt.Errorf("issue demo token: %w", err)
	}
	store.AddSession(domain.Session{ID: 1, UserID: demoUserID, Token: token, CreatedAt: now})

	log.LogAttrs(context.Background(), logger.InfoLevel, "demo data seeded",
		logger.Any("user_id", demoUserID),
		logger.Int("rooms", 3),
	)
	return token, nil
}
