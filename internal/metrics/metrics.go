package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// TypeFallbacks считает срабатывания "тихого" дефолта нормализаторов:
	// нераспознанный тип рекламы или ассета приводится к безопасному
	// значению, но каждое такое срабатывание должно быть видно снаружи.
	TypeFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adnet_type_normalizer_fallback_total",
			Help: "Total number of unrecognized type inputs mapped to the default canonical type",
		},
		[]string{"normalizer"},
	)

	// EngagementEvents считает записанные события вовлечённости по видам
	EngagementEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adnet_engagement_events_total",
			Help: "Total number of engagement events recorded",
		},
		[]string{"event_type"},
	)

	// AvailabilityRequests считает запросы доступной рекламы (cache hit/miss)
	AvailabilityRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adnet_availability_requests_total",
			Help: "Total number of availability resolutions",
		},
		[]string{"cache"},
	)
)

func init() {
	prometheus.MustRegister(TypeFallbacks)
	prometheus.MustRegister(EngagementEvents)
	prometheus.MustRegister(AvailabilityRequests)
}
