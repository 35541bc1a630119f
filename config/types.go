package config

import "time"

type AppConfig struct {
	DBDriver   string         `yaml:"db_driver" env:"REPORTER_DB_DRIVER" env-default:"sqlite"`
	DBURL      string         `yaml:"db_url" env:"REPORTER_DB_URL"`
	DBPath     string         `yaml:"db_path" env:"REPORTER_DB_PATH" env-default:"data/reporter.db"`
	ListenAddr string         `yaml:"listen_addr" env:"REPORTER_LISTEN_ADDR" env-default:"0.0.0.0:8080"`
	AppEnv     string         `yaml:"app_env" env:"REPORTER_APP_ENV"`
	Zone       string         `yaml:"zone" env:"REPORTER_ZONE" env-default:"INDY-METRO"`
	Reports    ReportsConfig  `yaml:"reports"`
	Pipeline   PipelineConfig `yaml:"pipeline"`
}

type ReportsConfig struct {
	// DefaultOfficerID is used when a commit carries no officer id.
	DefaultOfficerID string `yaml:"default_officer_id" env:"REPORTER_DEFAULT_OFFICER_ID" env-default:"OFF-2024-001"`
	// SummaryLen is the audit entry preview length in characters.
	SummaryLen int `yaml:"summary_len" env:"REPORTER_SUMMARY_LEN" env-default:"50"`
	// ExportLimit caps rows in a CSV export of the audit trail.
	ExportLimit int `yaml:"export_limit" env:"REPORTER_EXPORT_LIMIT" env-default:"5000"`
}

type PipelineConfig struct {
	// DebounceInterval is the quiet period a streaming host waits after
	// the last edit before re-running interpretation.
	DebounceInterval time.Duration `yaml:"debounce_interval" env:"REPORTER_DEBOUNCE_INTERVAL" env-default:"300ms"`
}

func (c *AppConfig) EffectiveSummaryLen() int {
	if c == nil || c.Reports.SummaryLen <= 0 {
		return 50
	}
	return c.Reports.SummaryLen
}

func (c *AppConfig) IsPostgres() bool {
	return c != nil && c.DBDriver == "postgres"
}
