package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, OutcomeOK},
		{"room full", fmt.Errorf("create booking: %w", domain.ErrRoomFull), "room_full"},
		{"not owner", domain.ErrNotOwner, "not_owner"},
		{"not found", fmt.Errorf("get booking: %w", domain.ErrBookingNotFound), OutcomeNotFound},
		{"unauthorized", domain.ErrUnauthorized, OutcomeUnauthorized},
		{"other", errors.New("boom"), OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(tt.err))
		})
	}
}

func TestMetrics_RecordDecision(t *testing.T) {
	m := New()

	m.RecordDecision("create", nil)
	m.RecordDecision("create", domain.ErrRoomFull)
	m.RecordDecision("create", domain.ErrRoomFull)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.decisions.WithLabelValues("create", OutcomeOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.decisions.WithLabelValues("create", "room_full")))
}

func TestMetrics_SetOccupancy(t *testing.T) {
	m := New()

	m.SetOccupancy([]domain.RoomOccupancy{
		{RoomID: 1, HotelID: 1, Capacity: 2, Occupied: 2},
		{RoomID: 2, HotelID: 1, Capacity: 3, Occupied: 1},
	})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.roomsFull))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.roomOccupancy.WithLabelValues("1", "1")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.roomOccupancy))

	m.SetOccupancy([]domain.RoomOccupancy{{RoomID: 2, HotelID: 1, Capacity: 3, Occupied: 3}})
	assert.Equal(t, 1, testutil.CollectAndCount(m.roomOccupancy))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.roomsFull))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/booking", http.StatusOK, 10*time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_request_duration_seconds")
	assert.Contains(t, w.Body.String(), `route="/booking"`)
}
