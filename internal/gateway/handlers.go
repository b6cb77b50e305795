package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/abdigaliarsen/api-gateway/internal/config"
	gwerrors "github.com/abdigaliarsen/api-gateway/internal/errors"
	"github.com/abdigaliarsen/api-gateway/internal/logging"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

// RootResponse is the body of GET /.
type RootResponse struct {
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Endpoints Endpoints `json:"endpoints"`
}

// Endpoints lists the routes advertised by GET /.
type Endpoints struct {
	Health string `json:"health"`
	Proxy  string `json:"proxy"`
}

// timestampLayout is RFC 3339 in UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

var rootInfo = RootResponse{
	Service: config.ServiceTitle,
	Version: config.ServiceVersion,
	Endpoints: Endpoints{
		Health: "/health",
		Proxy:  "/api/proxy?url=<target_url>",
	},
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootInfo)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: s.now().UTC().Format(timestampLayout),
		Service:   config.ServiceName,
		Version:   config.ServiceVersion,
	})
}

func (s *Server) handleProxy(w http.ResponseWriter, r *http.Request) {
	out := s.forwarder.Forward(r.Context(), r.URL.Query().Get("url"))
	if !out.OK() {
		writeError(w, out.Err)
		return
	}
	writeRaw(w, http.StatusOK, out.Body)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, gwerrors.NotFound(r.URL.Path))
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, gwerrors.MethodNotAllowed(r.Method, r.URL.Path))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Error("failed to encode response", "error", err)
		writeError(w, gwerrors.Internal(err))
		return
	}
	writeRaw(w, status, body)
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, err error) {
	body, _ := json.Marshal(gwerrors.Envelope(err))
	writeRaw(w, gwerrors.StatusCode(err), body)
}
