package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ehsaniara/botvisor/internal/botvisor/core"
	"github.com/ehsaniara/botvisor/pkg/errors"
	"github.com/ehsaniara/botvisor/pkg/version"
)

type deployRequest struct {
	Code         string            `json:"code"`
	ZipURL       string            `json:"zipUrl"`
	Dependencies map[string]string `json:"dependencies"`
}

type deployResponse struct {
	Message string `json:"message"`
	BotName string `json:"botName"`
}

type listResponse struct {
	Bots []core.BotSummary `json:"bots"`
}

type logsResponse struct {
	Message string   `json:"message"`
	BotName string   `json:"botName"`
	Lines   []string `json:"lines"`
}

type stopRequest struct {
	BotName string `json:"botName"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type versionResponse struct {
	NodeVersion string `json:"nodeVersion"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleDeploy(w http.ResponseWriter, r *http.Request) {
	var req deployRequest
	if !s.decode(w, r, &req) {
		return
	}

	result, err := s.service.Deploy(r.Context(), core.DeployRequest{
		Code:         req.Code,
		ZipURL:       req.ZipURL,
		Dependencies: req.Dependencies,
	})
	if err != nil {
		switch errors.KindOf(err) {
		case errors.KindValidation:
			s.fail(w, r, http.StatusBadRequest, "Code or zipUrl required", err)
		case errors.KindNotImplemented:
			s.fail(w, r, http.StatusNotImplemented, "Zip URL deploy not implemented", err)
		case errors.KindWorkspace:
			s.fail(w, r, http.StatusInternalServerError, "Failed to prepare workspace", err)
		case errors.KindInstall:
			s.fail(w, r, http.StatusInternalServerError, "Dependency install failed", err)
		case errors.KindStart:
			s.fail(w, r, http.StatusInternalServerError, "Failed to start bot", err)
		case errors.KindUpstream:
			s.fail(w, r, http.StatusInternalServerError, "Supervisor unavailable", err)
		default:
			s.fail(w, r, http.StatusInternalServerError, err.Error(), err)
		}
		return
	}

	writeJSON(w, http.StatusOK, deployResponse{Message: "Bot deployed and running", BotName: result.BotName})
}

func (s *Server) handleListBots(w http.ResponseWriter, r *http.Request) {
	bots, err := s.service.ListBots(r.Context())
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, "Failed to list bots", err)
		return
	}
	if bots == nil {
		bots = []core.BotSummary{}
	}
	writeJSON(w, http.StatusOK, listResponse{Bots: bots})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "botName")

	lines := 0
	if raw := r.URL.Query().Get("lines"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.fail(w, r, http.StatusBadRequest, "lines must be a non-negative integer",
				errors.Validation("logs", fmt.Errorf("invalid lines %q", raw)))
			return
		}
		lines = n
	}

	out, err := s.service.Logs(r.Context(), name, lines)
	if err != nil {
		switch errors.KindOf(err) {
		case errors.KindNotFound:
			s.fail(w, r, http.StatusNotFound, "Bot not found", err)
		case errors.KindValidation:
			s.fail(w, r, http.StatusBadRequest, "botName is required", err)
		default:
			s.fail(w, r, http.StatusInternalServerError, "Failed to read logs", err)
		}
		return
	}
	if out == nil {
		out = []string{}
	}

	writeJSON(w, http.StatusOK, logsResponse{
		Message: fmt.Sprintf("Last %d log lines for %s", len(out), name),
		BotName: name,
		Lines:   out,
	})
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	var req stopRequest
	if !s.decode(w, r, &req) {
		return
	}

	_, err := s.service.StopBot(r.Context(), req.BotName)
	if err != nil {
		switch errors.KindOf(err) {
		case errors.KindValidation:
			s.fail(w, r, http.StatusBadRequest, "botName is required", err)
		case errors.KindUpstream:
			s.fail(w, r, http.StatusInternalServerError, "Supervisor unavailable", err)
		default:
			s.fail(w, r, http.StatusNotFound, "Failed to stop bot or bot not found", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: req.BotName + " stopped successfully"})
}

func (s *Server) handleNodeVersion(w http.ResponseWriter, r *http.Request) {
	v, err := s.service.RuntimeVersion(r.Context())
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, "Failed to get Node.js version", err)
		return
	}
	writeJSON(w, http.StatusOK, versionResponse{NodeVersion: v})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: version.GetShortVersion()})
}

// decode reads a JSON body into v. An empty body decodes to the zero value.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || err == io.EOF {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		s.fail(w, r, http.StatusRequestEntityTooLarge, "Request body too large",
			errors.Validation("decode body", err))
		return false
	}
	s.fail(w, r, http.StatusBadRequest, "Malformed JSON body", errors.Validation("decode body", err))
	return false
}
