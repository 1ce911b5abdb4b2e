package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/starforge/starforge-go/internal/application/session"
)

// HangarCollector records scheduler events and capacity state.
// Wire it to a session with Observer() and to the heartbeat via
// RecordAdvanceDuration.
type HangarCollector struct {
	ordersStarted      prometheus.Counter
	ordersCompleted    prometheus.Counter
	ordersCancelled    prometheus.Counter
	missionsDispatched prometheus.Counter
	missionsArrived    prometheus.Counter
	missionsRecalled   prometheus.Counter

	capacityUsed     prometheus.Gauge
	capacityReserved prometheus.Gauge
	capacityFree     prometheus.Gauge

	advanceDuration prometheus.Histogram
}

// NewHangarCollector creates and registers the scheduler collectors
func NewHangarCollector() *HangarCollector {
	c := &HangarCollector{
		ordersStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "orders_started_total",
			Help: "Total number of build orders admitted",
		}),
		ordersCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "orders_completed_total",
			Help: "Total number of build orders completed",
		}),
		ordersCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "orders_cancelled_total",
			Help: "Total number of build orders cancelled",
		}),
		missionsDispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "missions_dispatched_total",
			Help: "Total number of missions dispatched",
		}),
		missionsArrived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "missions_arrived_total",
			Help: "Total number of missions arrived",
		}),
		missionsRecalled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "missions_recalled_total",
			Help: "Total number of missions recalled",
		}),
		capacityUsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "hangar_slots_used",
			Help: "Hangar slots occupied by completed units",
		}),
		capacityReserved: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "hangar_slots_reserved",
			Help: "Hangar slots reserved by in-flight orders",
		}),
		capacityFree: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "hangar_slots_free",
			Help: "Hangar slots available for new orders",
		}),
		advanceDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name:    "advance_duration_seconds",
			Help:    "Duration of one heartbeat advance",
			Buckets: prometheus.DefBuckets,
		}),
	}

	if Registry != nil {
		Registry.MustRegister(
			c.ordersStarted, c.ordersCompleted, c.ordersCancelled,
			c.missionsDispatched, c.missionsArrived, c.missionsRecalled,
			c.capacityUsed, c.capacityReserved, c.capacityFree,
			c.advanceDuration,
		)
	}

	return c
}

// Observer returns a session observer feeding the event counters
func (c *HangarCollector) Observer() session.Observer {
	return func(event session.Event) {
		switch event.Kind {
		case session.EventOrderStarted:
			c.ordersStarted.Inc()
		case session.EventOrderCompleted:
			c.ordersCompleted.Inc()
		case session.EventOrderCancelled:
			c.ordersCancelled.Inc()
		case session.EventMissionDispatched:
			c.missionsDispatched.Inc()
		case session.EventMissionArrived:
			c.missionsArrived.Inc()
		case session.EventMissionRecalled:
			c.missionsRecalled.Inc()
		}
	}
}

// UpdateCapacity refreshes the capacity gauges after a state change
func (c *HangarCollector) UpdateCapacity(used, reserved, free int) {
	c.capacityUsed.Set(float64(used))
	c.capacityReserved.Set(float64(reserved))
	c.capacityFree.Set(float64(free))
}

// RecordAdvanceDuration records how long one heartbeat advance took
func (c *HangarCollector) RecordAdvanceDuration(seconds float64) {
	c.advanceDuration.Observe(seconds)
}
