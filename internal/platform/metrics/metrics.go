// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics collects and exposes Prometheus metrics for the API.

Two families are recorded:

  - HTTP: request count and latency per method, route pattern and status.
  - Domain: counters for registrations, articles, comments and follow edges.

Services depend on the narrow [Recorder] interface so tests can pass [Nop].
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Domain event names used as the "event" label.
const (
	EventUserRegistered = "user_registered"
	EventArticleCreated = "article_created"
	EventArticleUpdated = "article_updated"
	EventArticleDeleted = "article_deleted"
	EventCommentCreated = "comment_created"
	EventCommentDeleted = "comment_deleted"
	EventUserFollowed   = "user_followed"
	EventUserUnfollowed = "user_unfollowed"
)

// Recorder is the domain-facing side of the collector.
type Recorder interface {
	RecordEvent(event string)
}

// Collector is the Prometheus implementation of [Recorder] and of the HTTP observer.
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
	domainEvents *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scribe_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scribe_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		domainEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scribe_domain_events_total",
			Help: "Successful domain mutations by event",
		}, []string{"event"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.domainEvents,
	)

	return c
}

// ObserveHTTP records one finished HTTP request.
func (c *Collector) ObserveHTTP(method, route string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordEvent increments the counter of a domain event.
func (c *Collector) RecordEvent(event string) {
	c.domainEvents.WithLabelValues(event).Inc()
}

// Handler returns the HTTP handler for Prometheus scraping.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// # No-op

// Nop discards every event.
type Nop struct{}

// RecordEvent implements [Recorder].
func (Nop) RecordEvent(string) {}
