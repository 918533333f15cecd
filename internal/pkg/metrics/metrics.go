// Package metrics defines and registers all custom Prometheus metrics for
// the ScoreSense API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "scoresense"

// ── Authentication metrics ────────────────────────────────────────────────────

// AuthAttemptsTotal counts registration and login attempts.
// Labels:
//   - operation: "register" or "login"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of registration and login attempts.",
	},
	[]string{"operation", "result"},
)

// TokenValidationsTotal counts bearer-token validations at the gate.
// Label:
//   - result: "valid", "expired", or "invalid"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token validations, by result.",
	},
	[]string{"result"},
)

// AuthzDecisionsTotal counts authorization gate outcomes.
// Label:
//   - decision: "allowed", "unauthenticated", or "forbidden"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of authorization decisions, by outcome.",
	},
	[]string{"decision"},
)

// ── Write-path metrics ────────────────────────────────────────────────────────

// ReferenceResolutionsTotal counts foreign-reference resolutions on write
// paths.
// Labels:
//   - resource: the referenced entity type (e.g. "Team", "Player")
//   - result: "resolved" or "not_found"
var ReferenceResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reference_resolutions_total",
		Help:      "Total number of foreign reference resolutions, by resource and result.",
	},
	[]string{"resource", "result"},
)
