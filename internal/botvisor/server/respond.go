package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/ehsaniara/botvisor/pkg/errors"
)

type errorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fail writes the error payload. The code is the error's kind; details carry the
// tool output or the underlying cause.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	kind := errors.KindOf(err)
	if kind == "" {
		kind = errors.KindUnknown
	}

	resp := errorResponse{Error: msg, Code: string(kind)}
	if details := errors.DetailsOf(err); details != msg {
		resp.Details = details
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error(msg, "path", r.URL.Path, "code", kind, "error", err,
			"requestId", middleware.GetReqID(r.Context()))
	}
	writeJSON(w, status, resp)
}
