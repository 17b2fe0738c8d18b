package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder journals events to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite journal opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS refresh_runs (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			trigger_type TEXT,
			universe     INTEGER,
			candidates   INTEGER,
			duration_ms  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_refresh_ts ON refresh_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS commands (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			command   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_commands_ts ON commands(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRefresh(run *RefreshRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO refresh_runs
		(timestamp, trigger_type, universe, candidates, duration_ms)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), run.Trigger, run.Universe, run.Candidates,
		run.Duration.Milliseconds(),
	)
	return err
}

func (r *SQLiteRecorder) RecordCommand(evt *CommandEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO commands (timestamp, command) VALUES (?,?)`,
		time.Now().Unix(), evt.Command,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite journal")
	return r.db.Close()
}
