// Package metrics defines and registers the custom Prometheus metrics for
// the jugueteria backend. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jugueteria"

// AuthAttemptsTotal counts authentication operations.
// Labels:
//   - op: "register" or "login"
//   - result: "success", "invalid_credentials", "duplicate", "throttled", "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of registration and login attempts, by outcome.",
	},
	[]string{"op", "result"},
)

// TokenVerificationsTotal counts bearer token verifications.
// Label:
//   - result: "valid", "expired", "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of token verifications, by outcome.",
	},
	[]string{"result"},
)

// AccessDecisionsTotal counts authorization policy decisions on protected
// endpoints.
// Label:
//   - result: "allowed" or "forbidden"
var AccessDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_decisions_total",
		Help:      "Total number of authorization decisions, by outcome.",
	},
	[]string{"result"},
)
