package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	LocationsTrackedTotal metric.Int64Counter
	TrackingFailuresTotal metric.Int64Counter
	RewardScansTotal      metric.Int64Counter
	RewardsEarnedTotal    metric.Int64Counter
	PollerTicksTotal      metric.Int64Counter
	GPSRequestDuration    metric.Float64Histogram
	OracleRequestDuration metric.Float64Histogram
	NearbyRequestsTotal   metric.Int64Counter
	TripDealRequestsTotal metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// Get returns the global instruments, creating them on first use from the
// globally configured MeterProvider. Safe to call before the provider is
// installed; instruments from the default provider are no-ops.
func Get() *AppMetrics {
	once.Do(initInstruments)
	return appMetrics
}

func initInstruments() {
	meter := otel.GetMeterProvider().Meter("tourguide")
	m := &AppMetrics{}
	var err error

	m.LocationsTrackedTotal, err = meter.Int64Counter(
		"locations_tracked_total",
		metric.WithDescription("Total visited locations appended by the tracker"),
		metric.WithUnit("{location}"),
	)
	if err != nil {
		log.Printf("Metrics: failed to create locations_tracked_total: %v", err)
	}

	m.TrackingFailuresTotal, err = meter.Int64Counter(
		"tracking_failures_total",
		metric.WithDescription("Tracking tasks that failed on the geolocation provider"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		log.Printf("Metrics: failed to create tracking_failures_total: %v", err)
	}

	m.RewardScansTotal, err = meter.Int64Counter(
		"reward_scans_total",
		metric.WithDescription("Reward-eligibility scans executed (post-coalescing)"),
		metric.WithUnit("{scan}"),
	)
	if err != nil {
		log.Printf("Metrics: failed to create reward_scans_total: %v", err)
	}

	m.RewardsEarnedTotal, err = meter.Int64Counter(
		"rewards_earned_total",
		metric.WithDescription("New rewards appended to users"),
		metric.WithUnit("{reward}"),
	)
	if err != nil {
		log.Printf("Metrics: failed to create rewards_earned_total: %v", err)
	}

	m.PollerTicksTotal, err = meter.Int64Counter(
		"poller_ticks_total",
		metric.WithDescription("Background poller ticks completed"),
		metric.WithUnit("{tick}"),
	)
	if err != nil {
		log.Printf("Metrics: failed to create poller_ticks_total: %v", err)
	}

	m.GPSRequestDuration, err = meter.Float64Histogram(
		"gps_request_duration_seconds",
		metric.WithDescription("Latency of geolocation provider calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		log.Printf("Metrics: failed to create gps_request_duration_seconds: %v", err)
	}

	m.OracleRequestDuration, err = meter.Float64Histogram(
		"oracle_request_duration_seconds",
		metric.WithDescription("Latency of reward oracle calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		log.Printf("Metrics: failed to create oracle_request_duration_seconds: %v", err)
	}

	m.NearbyRequestsTotal, err = meter.Int64Counter(
		"nearby_requests_total",
		metric.WithDescription("Nearby-attraction rankings computed"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		log.Printf("Metrics: failed to create nearby_requests_total: %v", err)
	}

	m.TripDealRequestsTotal, err = meter.Int64Counter(
		"trip_deal_requests_total",
		metric.WithDescription("Trip deal quotes requested"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		log.Printf("Metrics: failed to create trip_deal_requests_total: %v", err)
	}

	appMetrics = m
}
