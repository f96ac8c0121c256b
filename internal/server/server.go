package server

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"gdpchart/internal/chart"
	"gdpchart/internal/dataset"
)

// Server hosts the chart page over HTTP.
type Server struct {
	renderer        *chart.Renderer
	source          dataset.Source
	log             *zap.Logger
	defaultViewport int
	engine          *gin.Engine
}

// New wires the routes. defaultViewport is used when a chart request does
// not say how wide the browser window is.
func New(src dataset.Source, defaultViewport int, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		renderer:        chart.NewRenderer(src, log),
		source:          src,
		log:             log,
		defaultViewport: defaultViewport,
	}
	r := gin.New()
	r.Use(gin.Recovery(), CorrelationIDMiddleware(log))
	r.GET("/", s.handlePage)
	r.GET("/chart.svg", s.handleChart)
	r.GET("/data.json", s.handleData)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	s.engine = r
	return s
}

func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("server stopping")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handlePage(c *gin.Context) {
	cfg := s.renderer.Config
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, pageData{
		Title:        "United States GDP",
		ChartPath:    "/chart.svg",
		BarColor:     template.CSS(cfg.BarColor),
		OffsetX:      cfg.TooltipOffsetX,
		OffsetY:      cfg.TooltipOffsetY,
		HoverOpacity: cfg.HoverOpacity,
	})
	if err != nil {
		s.log.Error("render page", zap.Error(err), zap.String("correlation_id", GetCorrelationID(c)))
		c.String(http.StatusInternalServerError, "page error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// handleChart renders a fresh chart for ?width=N into a per-request
// container. The fetch is bound to the request context, so a browser that
// aborts an outdated request also cancels its upstream fetch.
func (s *Server) handleChart(c *gin.Context) {
	width := s.defaultViewport
	if v := c.Query("width"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.String(http.StatusBadRequest, "invalid width %q", v)
			return
		}
		width = n
	}
	container := chart.NewContainer("chart")
	_, err := s.renderer.Render(c.Request.Context(), container, width)
	switch {
	case errors.Is(err, chart.ErrEmptyDataset):
		c.String(http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, context.Canceled):
		// the page aborted this request in favour of a newer width
		c.Abort()
		return
	case err != nil:
		s.log.Error("render chart", zap.Error(err), zap.String("correlation_id", GetCorrelationID(c)))
		c.String(http.StatusBadGateway, err.Error())
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", container.Content())
}

type dataResponse struct {
	Name   string   `json:"name"`
	Source string   `json:"source_name,omitempty"`
	Data   [][2]any `json:"data"`
}

func (s *Server) handleData(c *gin.Context) {
	ds, err := s.source.Load(c.Request.Context())
	if err != nil {
		s.log.Error("load dataset", zap.Error(err), zap.String("correlation_id", GetCorrelationID(c)))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	resp := dataResponse{Name: ds.Name, Source: ds.Source, Data: make([][2]any, 0, ds.Len())}
	for _, p := range ds.Points {
		resp.Data = append(resp.Data, [2]any{p.Raw, p.Value})
	}
	c.JSON(http.StatusOK, resp)
}
