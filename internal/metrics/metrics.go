package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type BusinessMetrics struct {
	GroupsCreated     prometheus.Counter
	Joins             prometheus.Counter
	Invites           prometheus.Counter
	Kicks             prometheus.Counter
	RoleChanges       prometheus.Counter
	UpstreamFailures  prometheus.Counter
}

func NewBusinessMetrics() *BusinessMetrics {
	return &BusinessMetrics{
		GroupsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "groupuser_groups_created_total",
			Help: "Total number of groups created",
		}),
		Joins: promauto.NewCounter(prometheus.CounterOpts{
			Name: "groupuser_joins_total",
			Help: "Total number of successful group joins",
		}),
		Invites: promauto.NewCounter(prometheus.CounterOpts{
			Name: "groupuser_invites_total",
			Help: "Total number of successful invites",
		}),
		Kicks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "groupuser_kicks_total",
			Help: "Total number of member removals, including self-leave",
		}),
		RoleChanges: promauto.NewCounter(prometheus.CounterOpts{
			Name: "groupuser_role_changes_total",
			Help: "Total number of membership role changes",
		}),
		UpstreamFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "groupuser_upstream_failures_total",
			Help: "Total number of failed calls to the companion user service",
		}),
	}
}
