package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type occupancyService interface {
	RoomOccupancy(ctx context.Context) ([]domain.RoomOccupancy, error)
}

type occupancyGauge interface {
	SetOccupancy(occ []domain.RoomOccupancy)
}

// Scheduler periodically publishes room occupancy.
type Scheduler struct {
	bookingService occupancyService
	gauge          occupancyGauge
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService occupancyService,
	gauge occupancyGauge,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		gauge:          gauge,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	occ, err := s.bookingService.RoomOccupancy(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("failed to collect room occupancy",
			logger.String("error", err.Error()),
		)
		return
	}

	s.gauge.SetOccupancy(occ)

	for _, o := range occ {
		if o.Full() {
			s.logger.Debug("room at capacity",
				logger.Any("room_id", o.RoomID),
				logger.Any("hotel_id", o.HotelID),
				logger.Int("capacity", o.Capacity),
			)
		}
	}
}
