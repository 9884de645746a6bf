package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TasksCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "team_tracker_tasks_created_total",
		Help: "Total number of tasks created",
	})

	TasksDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "team_tracker_tasks_deleted_total",
		Help: "Total number of tasks deleted",
	})

	CommentsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "team_tracker_comments_added_total",
		Help: "Total number of comments added",
	})

	HistoryEntries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "team_tracker_task_history_entries_total",
		Help: "Total number of task history entries written",
	})

	// InvariantRejections counts operations refused by a project invariant.
	InvariantRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "team_tracker_invariant_rejections_total",
		Help: "Operations rejected by a project invariant",
	}, []string{"invariant"}) // capacity | completion

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "team_tracker_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
