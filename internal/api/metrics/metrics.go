// Package metrics defines and registers all custom Prometheus metrics for the
// snippet API. It is the single source of truth for metric names, labels, and
// help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "snippetvault"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "denied"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created viewer accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of viewer accounts registered.",
	},
)

// ── Snippet metrics ───────────────────────────────────────────────────────────

// SnippetsCreatedTotal counts newly created snippets.
// Label:
//   - language: the snippet's language tag (e.g. "python")
var SnippetsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snippets_created_total",
		Help:      "Total number of snippets created, by language.",
	},
	[]string{"language"},
)

// SnippetsMutatedTotal counts updates and deletes on existing snippets.
// Label:
//   - op: "update" or "delete"
var SnippetsMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snippets_mutated_total",
		Help:      "Total number of snippet mutations, by operation.",
	},
	[]string{"op"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// LanguageCacheTotal counts language-index cache lookups.
// Label:
//   - result: "hit" or "miss"
var LanguageCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "language_cache_total",
		Help:      "Total number of language index cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
