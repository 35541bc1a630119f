package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/destroyallsecrets/security-guard-autoreporter/config"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/extract"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/incident"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/pipeline"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/store"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/utils"
)

func setupHandler(t *testing.T) (*ReportsHandler, store.ReportLogStore) {
	t.Helper()
	cfg := &config.AppConfig{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "audit.db"),
		Reports: config.ReportsConfig{
			DefaultOfficerID: "OFF-2024-001",
			SummaryLen:       50,
			ExportLimit:      5000,
		},
	}
	logger := utils.NewLogger()
	db, err := store.NewDB(cfg, logger)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := store.ApplyMigrations(context.Background(), db, false, logger); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	reports := store.NewReportLogStore(db, false)
	pipe := pipeline.NewWithExtractor(&extract.Extractor{Now: func() time.Time {
		return time.Date(2024, 6, 1, 19, 15, 0, 0, time.UTC)
	}})
	return NewReportsHandler(cfg, reports, pipe, logger), reports
}

type previewBody struct {
	Data   incident.ExtractedData `json:"data"`
	Report string                 `json:"report"`
}

func postJSON(t *testing.T, h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestPreviewEmptyNotes(t *testing.T) {
	h, _ := setupHandler(t)
	rr := postJSON(t, h.Preview, http.MethodPost, "/api/reports/preview", `{"notes":""}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body previewBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Report != waitingPlaceholder {
		t.Fatalf("expected placeholder, got %q", body.Report)
	}
	if body.Data.Location != extract.UnknownLocation {
		t.Fatalf("expected sentinel location, got %q", body.Data.Location)
	}
}

func TestPreviewMedicalNote(t *testing.T) {
	h, _ := setupHandler(t)
	rr := postJSON(t, h.Preview, http.MethodPost, "/api/reports/preview",
		`{"notes":"Patron collapsed near Gainbridge Fieldhouse, EMS called"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body previewBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Category != incident.CategoryMedical || body.Data.Severity != incident.SeverityHigh {
		t.Fatalf("expected MEDICAL/HIGH, got %s/%s", body.Data.Category, body.Data.Severity)
	}
	if !strings.Contains(body.Report, "responded to a medical alert at Gainbridge") {
		t.Fatalf("medical template prose missing from %q", body.Report)
	}
	// Frozen clock supplies the time fallback.
	if !strings.Contains(body.Report, "At 19:15,") {
		t.Fatalf("expected clock fallback in %q", body.Report)
	}
}

func TestPreviewRejectsBadJSON(t *testing.T) {
	h, _ := setupHandler(t)
	rr := postJSON(t, h.Preview, http.MethodPost, "/api/reports/preview", `{notes`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestCommitAppendsEntry(t *testing.T) {
	h, reports := setupHandler(t)
	rr := postJSON(t, h.Commit, http.MethodPost, "/api/reports/commit",
		`{"notes":"WM/25 fight at Monument Circle, pushed another guest","officer_id":"OFF-7"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var rec store.ReportRecord
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("missing entry id")
	}
	if rec.OfficerID != "OFF-7" {
		t.Fatalf("officer: got %q", rec.OfficerID)
	}
	if rec.Category != incident.CategoryDisturbance {
		t.Fatalf("category: got %s", rec.Category)
	}
	if !strings.HasSuffix(rec.Summary, "...") {
		t.Fatalf("expected truncated summary, got %q", rec.Summary)
	}
	items, err := reports.List(context.Background(), 0, 0)
	if err != nil || len(items) != 1 {
		t.Fatalf("expected 1 persisted entry, got %d err %v", len(items), err)
	}
	if items[0].ID != rec.ID {
		t.Fatalf("persisted id mismatch: %s vs %s", items[0].ID, rec.ID)
	}
}

func TestCommitDefaultsOfficer(t *testing.T) {
	h, _ := setupHandler(t)
	rr := postJSON(t, h.Commit, http.MethodPost, "/api/reports/commit", `{"notes":"short note"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	var rec store.ReportRecord
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.OfficerID != "OFF-2024-001" {
		t.Fatalf("expected default officer, got %q", rec.OfficerID)
	}
	if rec.Summary != "short note" {
		t.Fatalf("short note must not be truncated: %q", rec.Summary)
	}
}

func TestCommitRejectsEmptyNotes(t *testing.T) {
	h, reports := setupHandler(t)
	rr := postJSON(t, h.Commit, http.MethodPost, "/api/reports/commit", `{"notes":"   "}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	n, _ := reports.Count(context.Background())
	if n != 0 {
		t.Fatalf("nothing should be persisted, got %d", n)
	}
}

func TestListAuditNewestFirst(t *testing.T) {
	h, _ := setupHandler(t)
	for _, notes := range []string{"first note", "second note"} {
		rr := postJSON(t, h.Commit, http.MethodPost, "/api/reports/commit", `{"notes":"`+notes+`"}`)
		if rr.Code != http.StatusCreated {
			t.Fatalf("commit: %d", rr.Code)
		}
		time.Sleep(2 * time.Millisecond)
	}
	rr := postJSON(t, h.ListAudit, http.MethodGet, "/api/reports/audit", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body struct {
		Items []store.ReportRecord `json:"items"`
		Count int                  `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 2 || len(body.Items) != 2 {
		t.Fatalf("expected 2 entries, got count=%d len=%d", body.Count, len(body.Items))
	}
	if body.Items[0].Summary != "second note" {
		t.Fatalf("expected newest first, got %q", body.Items[0].Summary)
	}
}

func TestExportAuditCSV(t *testing.T) {
	h, _ := setupHandler(t)
	if rr := postJSON(t, h.Commit, http.MethodPost, "/api/reports/commit", `{"notes":"export me"}`); rr.Code != http.StatusCreated {
		t.Fatalf("commit: %d", rr.Code)
	}
	rr := postJSON(t, h.ExportAudit, http.MethodGet, "/api/reports/audit/export", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("content type: %q", ct)
	}
	out := rr.Body.String()
	if !strings.HasPrefix(out, "time,officer,category,summary,report") {
		t.Fatalf("missing csv header: %q", out)
	}
	if !strings.Contains(out, "export me") {
		t.Fatalf("exported row missing: %q", out)
	}
}

func TestClearRequiresConfirmation(t *testing.T) {
	h, reports := setupHandler(t)
	if rr := postJSON(t, h.Commit, http.MethodPost, "/api/reports/commit", `{"notes":"keep me"}`); rr.Code != http.StatusCreated {
		t.Fatalf("commit: %d", rr.Code)
	}
	rr := postJSON(t, h.ClearAudit, http.MethodDelete, "/api/reports/audit", `{"confirm":false}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without confirmation, got %d", rr.Code)
	}
	n, _ := reports.Count(context.Background())
	if n != 1 {
		t.Fatalf("trail must survive unconfirmed clear, got %d", n)
	}

	rr = postJSON(t, h.ClearAudit, http.MethodDelete, "/api/reports/audit", `{"confirm":true}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 on confirmed clear, got %d", rr.Code)
	}
	n, _ = reports.Count(context.Background())
	if n != 0 {
		t.Fatalf("expected empty trail, got %d", n)
	}
}
