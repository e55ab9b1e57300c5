package main

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts visits without storing anything about the visitor.
type Metrics struct {
	pageViews     *prometheus.CounterVec
	activeStreams prometheus.Gauge
	streams       *prometheus.CounterVec
	renderSeconds *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		pageViews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_page_views_total",
				Help: "Page views by path and client kind",
			},
			[]string{"path", "client"},
		),
		activeStreams: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "folio_streams_active",
			Help: "Terminal streams currently animating",
		}),
		streams: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_streams_total",
				Help: "Finished terminal streams by outcome",
			},
			[]string{"outcome"},
		),
		renderSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "folio_render_duration_seconds",
				Help:    "Time to render the page",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format"},
		),
	}
	reg.MustRegister(m.pageViews, m.activeStreams, m.streams, m.renderSeconds)
	return m
}

// untracked paths are never counted.
var untracked = []string{"/static/", "/metrics", "/healthz", "/favicon"}

// TrackVisitors counts page views. Requests sending DNT: 1 are skipped.
func (m *Metrics) TrackVisitors() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range untracked {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()
		if c.Writer.Status() < 400 {
			m.pageViews.WithLabelValues(path, clientKind(c.Request)).Inc()
		}
	}
}

// StreamStarted marks a terminal stream as running. The returned func
// records its outcome.
func (m *Metrics) StreamStarted() func(outcome string) {
	m.activeStreams.Inc()
	return func(outcome string) {
		m.activeStreams.Dec()
		m.streams.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) ObserveRender(format string, start time.Time) {
	m.renderSeconds.WithLabelValues(format).Observe(time.Since(start).Seconds())
}
