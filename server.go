package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Response formats for the home page.
const (
	formatHTML = "html"
	formatANSI = "ansi"
	formatText = "text"
)

var terminalAgents = []string{"curl/", "wget/", "httpie/", "xh/"}

// clientKind is "terminal" for command-line HTTP clients and "browser"
// for everything else.
func clientKind(r *http.Request) string {
	if requestFormat(r) == formatHTML {
		return "browser"
	}
	return "terminal"
}

func requestFormat(r *http.Request) string {
	switch f := r.URL.Query().Get("format"); f {
	case formatHTML, formatANSI, formatText:
		return f
	}
	ua := strings.ToLower(r.UserAgent())
	for _, a := range terminalAgents {
		if strings.HasPrefix(ua, a) {
			return formatANSI
		}
	}
	return formatHTML
}

type Server struct {
	cfg     Config
	log     *zap.Logger
	page    Page
	clock   Clock
	metrics *Metrics
	engine  *gin.Engine
}

func NewServer(cfg Config, log *zap.Logger, page Page) (*Server, error) {
	gin.SetMode(cfg.GinMode)

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	static, err := staticFiles()
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Server{
		cfg:     cfg,
		log:     log,
		page:    page,
		clock:   SystemClock,
		metrics: NewMetrics(reg),
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log, newIPHasher()))
	if cfg.MetricsEnabled {
		r.Use(s.metrics.TrackVisitors())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.home)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.engine = r
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) home(c *gin.Context) {
	switch requestFormat(c.Request) {
	case formatText:
		start := time.Now()
		body := NewTerminal(io.Discard, termenv.Ascii).Static(s.page)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
		s.metrics.ObserveRender(formatText, start)
	case formatANSI:
		s.stream(c)
	default:
		start := time.Now()
		c.HTML(http.StatusOK, "index.html", gin.H{
			"page":     s.page,
			"sections": s.page.Sections(),
			"divider":  Divider,
		})
		s.metrics.ObserveRender(formatHTML, start)
	}
}

// stream plays the animated page to a terminal client until it finishes,
// the client disconnects or the stream timeout passes.
func (s *Server) stream(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.StreamTimeout)
	defer cancel()

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	finish := s.metrics.StreamStarted()
	term := NewTerminal(c.Writer, termenv.ANSI256).
		WithClock(s.clock).
		WithFlush(c.Writer.Flush)

	err := term.Play(ctx, s.page)
	switch {
	case err == nil:
		finish("completed")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		finish("cancelled")
		s.log.Debug("stream cancelled", zap.Error(err))
	default:
		finish("failed")
		s.log.Debug("stream write failed", zap.Error(err))
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully. Request
// contexts derive from ctx so open streams stop on shutdown.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
