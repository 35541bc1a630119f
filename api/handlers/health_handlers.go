package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/destroyallsecrets/security-guard-autoreporter/config"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/rules"
)

const bodyMaxBytes = 64 * 1024

type HealthHandler struct {
	cfg *config.AppConfig
}

func NewHealthHandler(cfg *config.AppConfig) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":        "ok",
		"zone":          h.cfg.Zone,
		"rules_version": rules.Version,
	})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, bodyMaxBytes))
	return dec.Decode(v)
}
