package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/destroyallsecrets/security-guard-autoreporter/config"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/utils"
)

// NewDB opens the audit database selected by cfg. The default driver is
// the embedded sqlite file at cfg.DBPath; db_driver "postgres" connects
// to cfg.DBURL through the pgx stdlib adapter instead.
func NewDB(cfg *config.AppConfig, logger *utils.Logger) (*sql.DB, error) {
	if cfg.IsPostgres() {
		if strings.TrimSpace(cfg.DBURL) == "" {
			return nil, fmt.Errorf("db_driver is postgres but db_url is empty")
		}
		db, err := sql.Open("pgx", cfg.DBURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		logger.Printf("audit database: postgres")
		return db, nil
	}

	path := cfg.DBPath
	if strings.TrimSpace(path) == "" {
		path = "data/reporter.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// modernc sqlite serializes writes; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)
	logger.Printf("audit database: sqlite at %s", path)
	return db, nil
}

// rebind converts ?-style placeholders to the $N form postgres expects.
// Statements are written sqlite-first, matching the default driver.
func rebind(pg bool, query string) string {
	if !pg {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
