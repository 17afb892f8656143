package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "seminarmanager"

// Registry holds every metric exposed on /metrics.
var Registry = prometheus.NewRegistry()

// RegistrationsTotal counts committed seminar registrations.
var RegistrationsTotal = promauto.With(Registry).NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of seminar registrations",
	},
)

// UnregistrationsTotal counts participants removed via their unregister token.
var UnregistrationsTotal = promauto.With(Registry).NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unregistrations_total",
		Help:      "Total number of seminar unregistrations",
	},
)

// RegistrationRejectionsTotal counts refused registrations.
var RegistrationRejectionsTotal = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_rejections_total",
		Help:      "Total number of rejected registrations",
	},
	[]string{"reason"}, // reason: not_found|closed
)

// NotificationFailuresTotal counts mails that could not be sent.
var NotificationFailuresTotal = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of failed notification mails",
	},
	[]string{"kind"}, // kind: confirmation|digest|contact
)

// LoginAttemptsTotal counts admin login attempts.
var LoginAttemptsTotal = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of admin login attempts",
	},
	[]string{"result"}, // result: success|failure|rate_limited
)

// Init registers the Go runtime and process collectors.
func Init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}
