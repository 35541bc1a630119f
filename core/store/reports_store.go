package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/destroyallsecrets/security-guard-autoreporter/core/incident"
)

var ErrConflict = errors.New("conflict")

// ReportRecord is one committed entry of the audit trail. Records are
// immutable once created; the trail is append-only and ordered newest
// first. JSON field names are fixed so trails persisted by earlier
// pipeline versions stay displayable.
type ReportRecord struct {
	ID              string            `json:"id"`
	Timestamp       time.Time         `json:"timestamp"`
	OfficerID       string            `json:"officerId"`
	Summary         string            `json:"summary"`
	Category        incident.Category `json:"category"`
	GeneratedReport string            `json:"generatedReport"`
}

// ReportLogStore is the append-only audit trail. The only mutations are
// Append and the whole-trail Clear; there are no partial updates.
type ReportLogStore interface {
	Append(ctx context.Context, rec *ReportRecord) error
	List(ctx context.Context, limit, offset int) ([]ReportRecord, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}

type reportLogStore struct {
	db *sql.DB
	pg bool
}

func NewReportLogStore(db *sql.DB, postgres bool) ReportLogStore {
	return &reportLogStore{db: db, pg: postgres}
}

func (s *reportLogStore) Append(ctx context.Context, rec *ReportRecord) error {
	_, err := s.db.ExecContext(ctx, rebind(s.pg, `
		INSERT INTO report_log(id, officer_id, summary, category, generated_report, created_at)
		VALUES(?, ?, ?, ?, ?, ?)`),
		rec.ID, rec.OfficerID, rec.Summary, string(rec.Category), rec.GeneratedReport, rec.Timestamp.UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *reportLogStore) List(ctx context.Context, limit, offset int) ([]ReportRecord, error) {
	q := `SELECT id, officer_id, summary, category, generated_report, created_at
		FROM report_log ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}
	rows, err := s.db.QueryContext(ctx, rebind(s.pg, q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ReportRecord{}
	for rows.Next() {
		var rec ReportRecord
		var cat string
		if err := rows.Scan(&rec.ID, &rec.OfficerID, &rec.Summary, &cat, &rec.GeneratedReport, &rec.Timestamp); err != nil {
			return nil, err
		}
		rec.Category = incident.Category(cat)
		rec.Timestamp = rec.Timestamp.UTC()
		items = append(items, rec)
	}
	return items, rows.Err()
}

func (s *reportLogStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM report_log`).Scan(&n)
	return n, err
}

func (s *reportLogStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM report_log`)
	return err
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key")
}
