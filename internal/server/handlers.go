package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/levnet/pkg/buildinfo"
	"github.com/matzehuels/levnet/pkg/editdist"
	"github.com/matzehuels/levnet/pkg/errors"
	"github.com/matzehuels/levnet/pkg/render"
)

type healthResponse struct {
	Status string         `json:"status"`
	Words  int            `json:"words"`
	Build  buildinfo.Info `json:"build"`
}

type distanceResponse struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Distance int    `json:"distance"`
}

type friendsResponse struct {
	Word    string   `json:"word"`
	Count   int      `json:"count"`
	Friends []string `json:"friends"`
}

type networkResponse struct {
	render.Document
	RunID string    `json:"run_id"`
	Cache cacheInfo `json:"cache"`
}

type cacheInfo struct {
	Adjacency bool `json:"adjacency"`
	Network   bool `json:"network"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Words: len(s.opts.Words), Build: buildinfo.Current()})
}

func (s *Server) handleDistance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a, b := q.Get("a"), q.Get("b")
	if !q.Has("a") || !q.Has("b") {
		writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "query parameters a and b are required"))
		return
	}
	writeJSON(w, http.StatusOK, distanceResponse{A: a, B: b, Distance: editdist.Distance(a, b)})
}

func (s *Server) handleFriends(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	set, err := s.runner.Friends(r.Context(), word, s.pipelineOptions(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	list := set.Sorted()
	writeJSON(w, http.StatusOK, friendsResponse{Word: word, Count: len(list), Friends: list})
}

func (s *Server) handleNetwork(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	degree := 1
	if v := q.Get("degree"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, r, errors.New(errors.ErrCodeInvalidDegree, "degree must be an integer, got %q", v))
			return
		}
		degree = d
	}
	if err := errors.ValidateDegree(degree, s.opts.MaxDegree); err != nil {
		writeError(w, r, err)
		return
	}

	format := render.FormatJSON
	if v := q.Get("format"); v != "" {
		f, err := render.ParseFormat(v)
		if err != nil {
			writeError(w, r, err)
			return
		}
		format = f
	}

	opts := s.pipelineOptions(r)
	opts.Seed = chi.URLParam(r, "word")
	opts.Degree = degree
	opts.Direct = queryBool(q.Get("direct"))
	opts.Detailed = queryBool(q.Get("detailed"))
	opts.Formats = []string{string(format)}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if format == render.FormatJSON {
		writeJSON(w, http.StatusOK, networkResponse{
			Document: render.NewDocument(result.RenderNetwork()),
			RunID:    result.RunID,
			Cache: cacheInfo{
				Adjacency: result.CacheInfo.AdjacencyHit,
				Network:   result.CacheInfo.NetworkHit,
			},
		})
		return
	}
	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[string(format)])
}

func queryBool(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}

func contentType(f render.Format) string {
	switch f {
	case render.FormatSVG:
		return "image/svg+xml"
	case render.FormatPNG:
		return "image/png"
	case render.FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		loggerFrom(r.Context(), nil).Error("request failed", "error", err)
	}
	writeJSON(w, status, ErrorResponse{
		Error:     string(code),
		Message:   errors.UserMessage(err),
		RequestID: RequestIDFrom(r.Context()),
	})
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidWord,
		errors.ErrCodeInvalidDegree, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeCacheMismatch:
		return http.StatusConflict
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func errNotFound(path string) error {
	return errors.New(errors.ErrCodeNotFound, "no route for %s", path)
}
