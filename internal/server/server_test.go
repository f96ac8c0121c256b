package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"gdpchart/internal/dataset"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func sample() dataset.Dataset {
	return dataset.Dataset{
		Name: "Gross Domestic Product",
		Points: []dataset.DataPoint{
			{Date: time.Date(1947, 1, 1, 0, 0, 0, 0, time.UTC), Raw: "1947-01-01", Value: 243.1},
			{Date: time.Date(2015, 7, 1, 0, 0, 0, 0, time.UTC), Raw: "2015-07-01", Value: 18064.7},
		},
	}
}

type failingSource struct{}

func (failingSource) Load(ctx context.Context) (dataset.Dataset, error) {
	return dataset.Dataset{}, errors.New("upstream unreachable")
}

func do(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestPage(t *testing.T) {
	w := do(t, New(dataset.Static(sample()), 1280, nil), "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<div id="chart"></div>`)
	assert.Contains(t, body, `<div id="tooltip"></div>`)
	assert.Contains(t, body, "DOMContentLoaded")
	assert.Len(t, w.Header().Get(CorrelationIDHeader), 36)
}

func TestChart(t *testing.T) {
	s := New(dataset.Static(sample()), 1280, nil)

	w := do(t, s, "/chart.svg?width=900")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Equal(t, 1, strings.Count(body, "<svg"))
	assert.Equal(t, 2, strings.Count(body, `class="bar"`))
	assert.Contains(t, body, `width="800"`)

	// default viewport: 1280 caps the outer width at 1000
	w = do(t, s, "/chart.svg")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `width="1000"`)
}

func TestChartErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    dataset.Source
		target string
		code   int
	}{
		{"bad width", dataset.Static(sample()), "/chart.svg?width=wide", http.StatusBadRequest},
		{"negative width", dataset.Static(sample()), "/chart.svg?width=-3", http.StatusBadRequest},
		{"empty dataset", dataset.Static(dataset.Dataset{}), "/chart.svg", http.StatusUnprocessableEntity},
		{"upstream failure", failingSource{}, "/chart.svg", http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, New(tt.src, 1280, nil), tt.target)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

// waitingSource blocks until the request context ends.
type waitingSource struct{}

func (waitingSource) Load(ctx context.Context) (dataset.Dataset, error) {
	<-ctx.Done()
	return dataset.Dataset{}, errors.Wrap(ctx.Err(), "fetch dataset")
}

func TestChartAbortedRequestIsQuiet(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := New(waitingSource{}, 1280, zap.New(core))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/chart.svg?width=900", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.NotEqual(t, http.StatusBadGateway, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Zero(t, logs.FilterLevelExact(zap.ErrorLevel).Len())
	assert.Equal(t, 1, logs.FilterMessage("render canceled").Len())
}

func TestData(t *testing.T) {
	w := do(t, New(dataset.Static(sample()), 1280, nil), "/data.json")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Name string  `json:"name"`
		Data [][]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Gross Domestic Product", resp.Name)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "1947-01-01", resp.Data[0][0])
	assert.Equal(t, 243.1, resp.Data[0][1])

	w = do(t, New(failingSource{}, 1280, nil), "/data.json")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCorrelationIDPreserved(t *testing.T) {
	s := New(dataset.Static(sample()), 1280, nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(CorrelationIDHeader, "test-correlation-id-123")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test-correlation-id-123", w.Header().Get(CorrelationIDHeader))
}

func TestRunShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(dataset.Static(sample()), 1280, nil).Run(ctx, "127.0.0.1:0") }()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
