package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/onestroke/codec"
	"github.com/katalvlaran/onestroke/graph"
	"github.com/katalvlaran/onestroke/sketch"
	"github.com/katalvlaran/onestroke/solver"
	"github.com/katalvlaran/onestroke/trail"
)

// maxBodyBytes caps the POST /v1/solve body.
const maxBodyBytes = 1 << 20

// solveRequest is the body of POST /v1/solve. Exactly one of Edges and
// Sketch must be set. Max 0 keeps the server default.
type solveRequest struct {
	Edges  string     `json:"edges" validate:"required_without=Sketch,excluded_with=Sketch"`
	Sketch *sketchDoc `json:"sketch" validate:"omitempty"`
	Max    int        `json:"max" validate:"gte=0"`
}

type sketchDoc struct {
	Nodes []nodeDoc     `json:"nodes" validate:"dive"`
	Lines []sketch.Line `json:"lines"`
}

type nodeDoc struct {
	ID string  `json:"id" validate:"required,uuid"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type solveResponse struct {
	Trails      []string         `json:"trails"`
	Paths       []sketch.Summary `json:"paths,omitempty"`
	Edges       string           `json:"edges"`
	StartsTried int              `json:"starts_tried"`
	Complete    bool             `json:"complete"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// line is the single-invocation boundary: one starting edge, encoded result.
func (s *Server) line(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, err := intParam(q.Get("start"), 0)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, fmt.Errorf("start: %w", err))
		return
	}
	max, err := intParam(q.Get("max"), s.defMax)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, fmt.Errorf("max: %w", err))
		return
	}
	if max > s.maxLimit {
		s.fail(w, r, http.StatusBadRequest, fmt.Errorf("max %d exceeds limit %d", max, s.maxLimit))
		return
	}

	out, err := solver.OneLine(q.Get("edges"), start, max, s.search...)
	if err != nil {
		s.fail(w, r, statusOf(err), err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.fail(w, r, status, fmt.Errorf("decode body: %w", err))
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	if req.Max > s.maxLimit {
		s.fail(w, r, http.StatusBadRequest, fmt.Errorf("max %d exceeds limit %d", req.Max, s.maxLimit))
		return
	}

	var enc *sketch.Encoding
	edges := req.Edges
	if req.Sketch != nil {
		e, err := req.Sketch.encode()
		if err != nil {
			s.fail(w, r, http.StatusBadRequest, err)
			return
		}
		enc, edges = &e, e.Edges
	}

	opts := s.base
	if req.Max > 0 {
		opts = append(slices.Clone(s.base), solver.WithMaxSolutions(req.Max))
	}
	sv, err := solver.New(opts...)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}

	res, err := sv.SolveString(r.Context(), edges)
	if res == nil {
		s.fail(w, r, statusOf(err), err)
		return
	}
	if err != nil {
		// Partial result: the budget ran out between starting edges.
		s.log.Warn("solve interrupted",
			zap.String("requestID", RequestID(r.Context())),
			zap.Error(err),
		)
	}

	resp := solveResponse{
		Trails:      make([]string, len(res.Trails)),
		Edges:       edges,
		StartsTried: res.StartsTried,
		Complete:    res.Complete,
	}
	for i, t := range res.Trails {
		resp.Trails[i] = codec.FormatTrail(t)
	}
	if enc != nil {
		paths, err := enc.Decode(res.Trails)
		if err != nil {
			s.fail(w, r, http.StatusInternalServerError, err)
			return
		}
		resp.Paths = make([]sketch.Summary, len(paths))
		for i, p := range paths {
			resp.Paths[i] = p.Summarize()
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (d *sketchDoc) encode() (sketch.Encoding, error) {
	sk := sketch.New()
	for _, n := range d.Nodes {
		if err := sk.PutNode(n.ID, n.X, n.Y); err != nil {
			return sketch.Encoding{}, err
		}
	}
	for _, l := range d.Lines {
		if err := sk.AddLine(l.From, l.To); err != nil {
			return sketch.Encoding{}, err
		}
	}

	return sk.Encode()
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}

	return strconv.Atoi(raw)
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, codec.ErrSyntax),
		errors.Is(err, graph.ErrInvalidGraph),
		errors.Is(err, trail.ErrInvalidStart):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	id := RequestID(r.Context())
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("requestID", id), zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), RequestID: id})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
