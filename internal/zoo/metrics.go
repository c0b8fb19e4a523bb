package zoo

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ngoguened/zoo/pkg/types"
)

// Payment result labels.
const (
	resultAccepted           = "accepted"
	resultFeeNotCovered      = "fee_not_covered"
	resultInsufficientChange = "insufficient_change"
)

// metrics is nil-safe: a nil *metrics records nothing.
type metrics struct {
	placements *prometheus.CounterVec
	payments   *prometheus.CounterVec
	areas      prometheus.Gauge
}

// newMetrics registers the zoo collectors on reg. A collector that is already
// registered (a second zoo on the same registry) is shared.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}

	placements := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zoo_placements_total",
		Help: "Animal placement attempts by outcome.",
	}, []string{"outcome"})
	payments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zoo_fee_payments_total",
		Help: "Entrance fee payments by result.",
	}, []string{"result"})
	areas := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "zoo_areas",
		Help: "Number of registered areas, entrance included.",
	})

	var err error
	m := &metrics{}
	if m.placements, err = register(reg, placements); err != nil {
		return nil, err
	}
	if m.payments, err = register(reg, payments); err != nil {
		return nil, err
	}
	if m.areas, err = register(reg, areas); err != nil {
		return nil, err
	}
	return m, nil
}

// register adds c to reg, returning the collector already registered under
// the same descriptor if there is one.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, err
	}
	return c, nil
}

func (m *metrics) placed(o types.Outcome) {
	if m == nil {
		return
	}
	m.placements.WithLabelValues(o.String()).Inc()
}

func (m *metrics) paid(err error) {
	if m == nil {
		return
	}
	result := resultAccepted
	switch {
	case errors.Is(err, types.ErrFeeNotCovered):
		result = resultFeeNotCovered
	case errors.Is(err, types.ErrInsufficientChange):
		result = resultInsufficientChange
	}
	m.payments.WithLabelValues(result).Inc()
}

func (m *metrics) setAreas(n int) {
	if m == nil {
		return
	}
	m.areas.Set(float64(n))
}
