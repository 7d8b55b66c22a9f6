package app

import (
	"context"
	"testing"

	"github.com/stpnv0/HotelBooker/internal/auth"
	"github.com/stpnv0/HotelBooker/internal/repository/memory"
	"github.com/stpnv0/HotelBooker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func TestSeedDemo_UserCanBookWithIssuedToken(t *testing.T) {
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	tokens, err := auth.NewTokenManager("secret")
	require.NoError(t, err)

	store := memory.New()
	token, err := seedDemo(store, tokens, log)
	require.NoError(t, err)

	ctx := context.Background()
	userID, err := auth.NewSessionResolver(tokens, store.Sessions()).Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, demoUserID, userID)

	svc := service.NewBookingService(store, store.Enrollments(), store.Tickets(), store.Rooms(), store.Bookings(), log)
	b, err := svc.CreateBooking(ctx, userID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.RoomID)
}
