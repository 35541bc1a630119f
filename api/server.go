// Package api exposes the report builder over HTTP. The handlers are thin
// glue around the interpretation pipeline and the audit trail store; all
// report logic lives in core.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/destroyallsecrets/security-guard-autoreporter/api/handlers"
	"github.com/destroyallsecrets/security-guard-autoreporter/config"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/pipeline"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/store"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/utils"
)

type Server struct {
	cfg     *config.AppConfig
	reports store.ReportLogStore
	pipe    *pipeline.Pipeline
	logger  *utils.Logger
}

func NewServer(cfg *config.AppConfig, reports store.ReportLogStore, pipe *pipeline.Pipeline, logger *utils.Logger) *Server {
	return &Server{cfg: cfg, reports: reports, pipe: pipe, logger: logger}
}

// Routes builds the router. Every request passes panic recovery, request
// ID assignment and access logging before reaching a handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recoverMiddleware, requestIDMiddleware, s.logMiddleware)

	rh := handlers.NewReportsHandler(s.cfg, s.reports, s.pipe, s.logger)
	hh := handlers.NewHealthHandler(s.cfg)

	r.MethodFunc(http.MethodGet, "/api/health", hh.Health)
	r.MethodFunc(http.MethodPost, "/api/reports/preview", rh.Preview)
	r.MethodFunc(http.MethodPost, "/api/reports/commit", rh.Commit)
	r.MethodFunc(http.MethodGet, "/api/reports/audit", rh.ListAudit)
	r.MethodFunc(http.MethodGet, "/api/reports/audit/export", rh.ExportAudit)
	r.MethodFunc(http.MethodDelete, "/api/reports/audit", rh.ClearAudit)
	return r
}
