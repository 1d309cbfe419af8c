package auction

import (
	"io"

	"github.com/dan13ram/auction-client/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	resultSuccess = "success"
	resultError   = "error"
	resultTimeout = "timeout"
)

// Metrics records client activity on a private registry. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry       *prometheus.Registry
	readsTotal     *prometheus.CounterVec
	writesTotal    *prometheus.CounterVec
	refreshesTotal *prometheus.CounterVec
	pendingActions prometheus.Gauge
	activeError    prometheus.Gauge
}

func NewMetrics() *Metrics {
	reads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_client_reads_total",
		Help: "Contract reads by field and result",
	}, []string{"field", "result"})

	writes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_client_writes_total",
		Help: "Contract writes by action and result",
	}, []string{"action", "result"})

	refreshes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_client_refresh_runs_total",
		Help: "Background refresh runs by result",
	}, []string{"result"})

	pending := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "auction_client_pending_actions",
		Help: "Actions submitted and not yet settled",
	})

	active := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "auction_client_active_error",
		Help: "1 while an error is shown to the user",
	})

	r := prometheus.NewRegistry()
	r.MustRegister(reads, writes, refreshes, pending, active)

	return &Metrics{
		registry:       r,
		readsTotal:     reads,
		writesTotal:    writes,
		refreshesTotal: refreshes,
		pendingActions: pending,
		activeError:    active,
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case models.IsKind(err, models.KindTimeout):
		return resultTimeout
	default:
		return resultError
	}
}

func (m *Metrics) observeRead(field models.Field, err error) {
	if m == nil {
		return
	}
	m.readsTotal.WithLabelValues(string(field), resultOf(err)).Inc()
}

func (m *Metrics) observeWrite(kind models.ActionKind, err error) {
	if m == nil {
		return
	}
	m.writesTotal.WithLabelValues(string(kind), resultOf(err)).Inc()
}

func (m *Metrics) observeRefreshRun(err error) {
	if m == nil {
		return
	}
	m.refreshesTotal.WithLabelValues(resultOf(err)).Inc()
}

func (m *Metrics) setPending(n int) {
	if m == nil {
		return
	}
	m.pendingActions.Set(float64(n))
}

func (m *Metrics) setActiveError(active bool) {
	if m == nil {
		return
	}
	if active {
		m.activeError.Set(1)
	} else {
		m.activeError.Set(0)
	}
}

// WriteText dumps the registry in the text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	if m == nil {
		return nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
