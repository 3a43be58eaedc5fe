// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scribe/internal/platform/metrics"
)

/*
TestCollector_DomainEvents verifies event counters are labeled per event.
*/
func TestCollector_DomainEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	collector.RecordEvent(metrics.EventArticleCreated)
	collector.RecordEvent(metrics.EventArticleCreated)
	collector.RecordEvent(metrics.EventUserFollowed)

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "scribe_domain_events_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			counts[metric.GetLabel()[0].GetValue()] = metric.GetCounter().GetValue()
		}
	}

	assert.Equal(t, 2.0, counts[metrics.EventArticleCreated])
	assert.Equal(t, 1.0, counts[metrics.EventUserFollowed])
}

/*
TestCollector_HTTP verifies request counters and the scrape handler.
*/
func TestCollector_HTTP(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	collector.ObserveHTTP(http.MethodGet, "/api/articles/{slug}", http.StatusOK, 12*time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := map[string]int{}
	for _, family := range families {
		names[family.GetName()] = len(family.GetMetric())
	}
	assert.Equal(t, 1, names["scribe_http_requests_total"])
	assert.Equal(t, 1, names["scribe_http_request_duration_seconds"])

	server := httptest.NewServer(metrics.Handler(reg))
	defer server.Close()

	response, err := http.Get(server.URL)
	require.NoError(t, err)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `route="/api/articles/{slug}"`)
}
