package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/onestroke/internal/metrics"
	"github.com/katalvlaran/onestroke/internal/server"
	"github.com/katalvlaran/onestroke/solver"
)

type solveResponse struct {
	Trails []string `json:"trails"`
	Paths  []struct {
		Steps int    `json:"steps"`
		Path  string `json:"path"`
	} `json:"paths"`
	Edges       string `json:"edges"`
	StartsTried int    `json:"starts_tried"`
	Complete    bool   `json:"complete"`
}

func newHandler(t *testing.T, opts ...solver.Option) http.Handler {
	t.Helper()
	srv, err := server.New(zap.NewNop(), metrics.NewCollector("test"), 100, opts...)
	require.NoError(t, err)

	return srv.Handler()
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := server.New(nil, nil, 10, solver.WithWorkers(0))
	assert.ErrorIs(t, err, solver.ErrInvalidOptions)
}

func TestHealthz(t *testing.T) {
	rec := do(newHandler(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(server.RequestIDHeader))
}

func TestRequestID_Echoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	newHandler(t).ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(server.RequestIDHeader))
}

func TestLine(t *testing.T) {
	h := newHandler(t)
	tests := []struct {
		name   string
		query  string
		status int
		body   string
	}{
		{"triangle", "edges=0,1/1,2/2,0&start=0&max=10", http.StatusOK, "0,1,2,0"},
		{"disconnected", "edges=0,1/2,3&start=0&max=10", http.StatusOK, ""},
		{"single edge", "edges=0,1&start=0&max=1", http.StatusOK, "0,1"},
		{"default start and max", "edges=0,1/1,2/2,0", http.StatusOK, "0,1,2,0"},
		{"empty drawing", "edges=&start=0&max=1", http.StatusBadRequest, ""},
		{"bad syntax", "edges=0,1/&start=0", http.StatusBadRequest, ""},
		{"bad start", "edges=0,1&start=4&max=1", http.StatusBadRequest, ""},
		{"start not a number", "edges=0,1&start=x", http.StatusBadRequest, ""},
		{"max over limit", "edges=0,1&max=101", http.StatusBadRequest, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(h, http.MethodGet, "/v1/line?"+tc.query, "")
			require.Equal(t, tc.status, rec.Code, rec.Body.String())
			if tc.status == http.StatusOK {
				assert.Equal(t, tc.body, rec.Body.String())
				assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
			} else {
				assert.Contains(t, rec.Body.String(), `"error"`)
			}
		})
	}
}

func TestSolve_Edges(t *testing.T) {
	h := newHandler(t)
	rec := do(h, http.MethodPost, "/v1/solve", `{"edges":"0,1/1,2/2,0","max":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp solveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"0,1,2,0", "1,2,0,1"}, resp.Trails)
	assert.Equal(t, 2, resp.StartsTried)
	assert.True(t, resp.Complete)
	assert.Empty(t, resp.Paths)
}

func TestSolve_Sketch(t *testing.T) {
	a, b, c := uuid.NewString(), uuid.NewString(), uuid.NewString()
	body := `{"sketch":{"nodes":[` +
		`{"id":"` + a + `","x":0,"y":0},` +
		`{"id":"` + b + `","x":10,"y":0},` +
		`{"id":"` + c + `","x":5,"y":8}],` +
		`"lines":[{"from":"` + a + `","to":"` + b + `"},{"from":"` + b + `","to":"` + c + `"}]},"max":5}`

	rec := do(newHandler(t), http.MethodPost, "/v1/solve", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp solveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "0,1/1,2", resp.Edges)
	// The second starting edge runs into a dead end.
	assert.Equal(t, []string{"0,1,2"}, resp.Trails)
	assert.Equal(t, 2, resp.StartsTried)
	require.Len(t, resp.Paths, 1)
	assert.Equal(t, 3, resp.Paths[0].Steps)
	assert.Equal(t, a+" -> "+b+" -> "+c, resp.Paths[0].Path)
}

func TestSolve_BadRequests(t *testing.T) {
	id := uuid.NewString()
	tests := map[string]string{
		"not json":       `{`,
		"unknown field":  `{"edges":"0,1","limit":3}`,
		"nothing to do":  `{"max":3}`,
		"both inputs":    `{"edges":"0,1","sketch":{"nodes":[],"lines":[]}}`,
		"negative max":   `{"edges":"0,1","max":-1}`,
		"max over limit": `{"edges":"0,1","max":1000}`,
		"bad edges":      `{"edges":"0,,1"}`,
		"bad node id":    `{"sketch":{"nodes":[{"id":"n1","x":0,"y":0}],"lines":[]}}`,
		"empty sketch":   `{"sketch":{"nodes":[],"lines":[]}}`,
		"self line":      `{"sketch":{"nodes":[{"id":"` + id + `","x":0,"y":0}],"lines":[{"from":"` + id + `","to":"` + id + `"}]}}`,
	}
	h := newHandler(t)
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := do(h, http.MethodPost, "/v1/solve", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestSolve_BodyTooLarge(t *testing.T) {
	// Over 1 MiB of edges: the decoder stops at the cap instead of reading on.
	body := `{"edges":"` + strings.Repeat("0,1/", 300_000) + `0,1"}`
	rec := do(newHandler(t), http.MethodPost, "/v1/solve", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "request body too large")
}

func TestMetricsEndpoint(t *testing.T) {
	h := newHandler(t)
	require.Equal(t, http.StatusOK, do(h, http.MethodGet, "/v1/line?edges=0,1", "").Code)

	rec := do(h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `test_http_requests_total{method="GET",route="/v1/line",status="200"} 1`)
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	srv, err := server.New(zap.New(core), nil, 10)
	require.NoError(t, err)

	do(srv.Handler(), http.MethodGet, "/healthz", "")
	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/healthz", fields["route"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}
