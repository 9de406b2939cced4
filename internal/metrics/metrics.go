package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	EnrollmentsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrollments_created_total",
			Help: "Number of participation records created, by initial status",
		},
		[]string{"status"},
	)

	InvitationsAccepted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "invitations_accepted_total",
			Help: "Number of invitations accepted",
		},
	)

	InvitationsDenied = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "invitations_denied_total",
			Help: "Number of invitations denied",
		},
	)

	ParticipationsCanceled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "participations_canceled_total",
			Help: "Number of per-user enrollment cancellations",
		},
	)

	TrainingsCanceled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "trainings_canceled_total",
			Help: "Number of whole-training cancellations",
		},
	)

	EngineOperationTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "enrollment_operation_seconds",
			Help: "Time taken by mutating enrollment engine operations",
		},
	)

	NotificationsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Number of notifications delivered",
		},
	)

	NotificationsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_dropped_total",
			Help: "Number of notifications dropped because the queue was full",
		},
	)
)

func Register() {
	prometheus.MustRegister(
		EnrollmentsCreated,
		InvitationsAccepted,
		InvitationsDenied,
		ParticipationsCanceled,
		TrainingsCanceled,
		EngineOperationTime,
		NotificationsSent,
		NotificationsDropped,
	)
}
