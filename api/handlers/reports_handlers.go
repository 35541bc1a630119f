package handlers

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/destroyallsecrets/security-guard-autoreporter/config"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/pipeline"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/report"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/store"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/utils"
)

// waitingPlaceholder is shown instead of an assembled report while the
// note field is empty. Host-layer policy; the pipeline itself stays total.
const waitingPlaceholder = "Waiting for input..."

const commitRetries = 3

type ReportsHandler struct {
	cfg     *config.AppConfig
	reports store.ReportLogStore
	pipe    *pipeline.Pipeline
	logger  *utils.Logger
}

func NewReportsHandler(cfg *config.AppConfig, reports store.ReportLogStore, pipe *pipeline.Pipeline, logger *utils.Logger) *ReportsHandler {
	return &ReportsHandler{cfg: cfg, reports: reports, pipe: pipe, logger: logger}
}

type previewRequest struct {
	Notes string `json:"notes"`
}

type previewResponse struct {
	Data   any    `json:"data"`
	Report string `json:"report"`
}

// Preview interprets the current field notes and returns the extracted
// data plus the assembled draft. Called on every edit; interpretation is
// recomputed whole each time.
func (h *ReportsHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	data := h.pipe.Interpret(req.Notes)
	text := waitingPlaceholder
	if req.Notes != "" {
		text = report.Assemble(data.Category, data)
	}
	writeJSON(w, http.StatusOK, previewResponse{Data: data, Report: text})
}

type commitRequest struct {
	Notes     string `json:"notes"`
	OfficerID string `json:"officer_id"`
}

// Commit runs the pipeline over the submitted notes one final time, builds
// the audit entry and appends it to the trail. The entry is immutable from
// here on. The server recomputes classification and report text rather
// than trusting a client-side preview.
func (h *ReportsHandler) Commit(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(req.Notes) == "" {
		writeError(w, http.StatusBadRequest, "field notes are empty")
		return
	}
	officer := strings.TrimSpace(req.OfficerID)
	if officer == "" {
		officer = h.cfg.Reports.DefaultOfficerID
	}

	data := h.pipe.Interpret(req.Notes)
	text := report.Assemble(data.Category, data)
	now := utils.NowUTC()
	rec := &store.ReportRecord{
		Timestamp:       now,
		OfficerID:       officer,
		Summary:         summarize(req.Notes, h.cfg.EffectiveSummaryLen()),
		Category:        data.Category,
		GeneratedReport: text,
	}

	// IDs are millisecond-derived; bump on the rare same-millisecond
	// collision instead of failing the commit.
	var err error
	base := time.Now().UnixMilli()
	for attempt := 0; attempt < commitRetries; attempt++ {
		rec.ID = strconv.FormatInt(base+int64(attempt), 10)
		err = h.reports.Append(r.Context(), rec)
		if !errors.Is(err, store.ErrConflict) {
			break
		}
	}
	if err != nil {
		h.logger.Errorf("append report: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	h.logger.Printf("report committed id=%s officer=%s category=%s", rec.ID, rec.OfficerID, rec.Category)
	writeJSON(w, http.StatusCreated, rec)
}

// ListAudit returns the trail newest first.
func (h *ReportsHandler) ListAudit(w http.ResponseWriter, r *http.Request) {
	limit := parseIntDefault(r.URL.Query().Get("limit"), 0)
	offset := parseIntDefault(r.URL.Query().Get("offset"), 0)
	items, err := h.reports.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.Errorf("list audit: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	count, err := h.reports.Count(r.Context())
	if err != nil {
		h.logger.Errorf("count audit: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": count})
}

// ExportAudit streams the trail as CSV for shift handover and printing.
func (h *ReportsHandler) ExportAudit(w http.ResponseWriter, r *http.Request) {
	limit := parseIntDefault(r.URL.Query().Get("limit"), h.cfg.Reports.ExportLimit)
	if limit <= 0 || limit > h.cfg.Reports.ExportLimit {
		limit = h.cfg.Reports.ExportLimit
	}
	items, err := h.reports.List(r.Context(), limit, 0)
	if err != nil {
		h.logger.Errorf("export audit: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	filename := "report_log_" + time.Now().UTC().Format("20060102_150405") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	writer := csv.NewWriter(w)
	_ = writer.Write([]string{"time", "officer", "category", "summary", "report"})
	for i := range items {
		_ = writer.Write([]string{
			items[i].Timestamp.UTC().Format(time.RFC3339),
			items[i].OfficerID,
			string(items[i].Category),
			items[i].Summary,
			items[i].GeneratedReport,
		})
	}
	writer.Flush()
}

type clearRequest struct {
	Confirm bool `json:"confirm"`
}

// ClearAudit empties the whole trail. Destructive and gated on an explicit
// confirmation flag; without it the request is rejected with a user-facing
// notice.
func (h *ReportsHandler) ClearAudit(w http.ResponseWriter, r *http.Request) {
	var req clearRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if !req.Confirm {
		writeError(w, http.StatusBadRequest, "confirmation required: clearing the shift log cannot be undone")
		return
	}
	if err := h.reports.Clear(r.Context()); err != nil {
		h.logger.Errorf("clear audit: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	h.logger.Printf("audit trail cleared")
	writeJSON(w, http.StatusOK, map[string]any{"cleared": true})
}

// summarize returns the truncated note preview stored on each audit
// entry: the first maxLen characters plus an ellipsis marker when the
// note is longer.
func summarize(notes string, maxLen int) string {
	runes := []rune(notes)
	if len(runes) <= maxLen {
		return notes
	}
	return string(runes[:maxLen]) + "..."
}
