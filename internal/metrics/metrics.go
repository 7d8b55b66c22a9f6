package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stpnv0/HotelBooker/internal/domain"
)

const (
	OutcomeOK           = "ok"
	OutcomeNotFound     = "not_found"
	OutcomeUnauthorized = "unauthorized"
	OutcomeError        = "error"
)

type Metrics struct {
	reg *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	decisions       *prometheus.CounterVec
	roomOccupancy   *prometheus.GaugeVec
	roomsFull       prometheus.Gauge
	panics          prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.3, 0.6, 1, 3},
		}, []string{"method", "route", "status"}),
		decisions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_decisions_total",
			Help: "Booking operations by outcome.",
		}, []string{"operation", "outcome"}),
		roomOccupancy: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "room_occupancy",
			Help: "Bookings currently held per room.",
		}, []string{"room_id", "hotel_id"}),
		roomsFull: f.NewGauge(prometheus.GaugeOpts{
			Name: "rooms_full",
			Help: "Number of rooms at capacity.",
		}),
		panics: f.NewCounter(prometheus.CounterOpts{
			Name: "http_req_panics_recovered_total",
			Help: "Total number of HTTP requests recovered from internal panic.",
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{
		Registry:          m.reg,
		EnableOpenMetrics: true,
	})
}

func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

func (m *Metrics) PanicRecovered() {
	m.panics.Inc()
}

func (m *Metrics) RecordDecision(operation string, err error) {
	m.decisions.WithLabelValues(operation, Outcome(err)).Inc()
}

// SetOccupancy replaces the per-room gauges with occ.
func (m *Metrics) SetOccupancy(occ []domain.RoomOccupancy) {
	m.roomOccupancy.Reset()

	full := 0
	for _, o := range occ {
		m.roomOccupancy.WithLabelValues(
			strconv.FormatInt(o.RoomID, 10),
			strconv.FormatInt(o.HotelID, 10),
		).Set(float64(o.Occupied))
		if o.Full() {
			full++
		}
	}
	m.roomsFull.Set(float64(full))
}

// Outcome maps a service result onto the outcome label.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	if reason, ok := domain.ReasonOf(err); ok {
		return string(reason)
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return OutcomeUnauthorized
	default:
		return OutcomeError
	}
}
