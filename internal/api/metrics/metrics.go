// Package metrics defines and registers all custom Prometheus metrics for
// the GameVerse content API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// load via promauto; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gameverse"

// NewsCreatedTotal counts published articles.
// Label:
//   - category: the article category (e.g. "Geral", "RPG")
var NewsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "news_created_total",
		Help:      "Total number of news articles created, by category.",
	},
	[]string{"category"},
)

// CommentsCreatedTotal counts comments accepted onto articles.
var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created.",
	},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UploadsRejectedTotal counts files refused by the upload gate.
// Label:
//   - reason: "invalid_type" or "too_large"
var UploadsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_rejected_total",
		Help:      "Total number of uploads rejected by the upload gate, by reason.",
	},
	[]string{"reason"},
)

// NewsCacheTotal counts article cache lookups.
// Label:
//   - result: "hit" or "miss"
var NewsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "news_cache_total",
		Help:      "Total number of news cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
