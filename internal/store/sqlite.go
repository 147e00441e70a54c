package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/impact-search/internal/model"
)

// sqliteTimeLayout is fixed-width so MAX() over the text column orders
// chronologically.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close() //nolint:errcheck
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS search_events (
	id           TEXT PRIMARY KEY,
	query        TEXT NOT NULL,
	normalized   TEXT NOT NULL,
	topic        TEXT NOT NULL DEFAULT '',
	filter       TEXT NOT NULL DEFAULT 'all',
	result_count INTEGER NOT NULL DEFAULT 0,
	searched_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_search_events_normalized ON search_events(normalized);
CREATE INDEX IF NOT EXISTS idx_search_events_topic ON search_events(topic);
CREATE INDEX IF NOT EXISTS idx_search_events_searched_at ON search_events(searched_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) RecordSearch(ctx context.Context, ev model.SearchEvent) error {
	ev = withDefaults(ev)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO search_events (id, query, normalized, topic, filter, result_count, searched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Query, ev.Normalized, ev.Topic, string(ev.Filter), ev.ResultCount,
		ev.SearchedAt.Format(sqliteTimeLayout),
	)
	return eris.Wrapf(err, "sqlite: insert search event %s", ev.ID)
}

func (s *SQLiteStore) TopQueries(ctx context.Context, limit int) ([]model.QueryCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT normalized, MAX(topic), COUNT(*) AS n, MAX(searched_at) AS last
		 FROM search_events
		 WHERE normalized <> ''
		 GROUP BY normalized
		 ORDER BY n DESC, last DESC
		 LIMIT ?`,
		topLimit(limit),
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: top queries")
	}
	defer rows.Close() //nolint:errcheck

	var out []model.QueryCount
	for rows.Next() {
		var qc model.QueryCount
		var last string
		if err := rows.Scan(&qc.Query, &qc.Topic, &qc.Count, &last); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan top query")
		}
		qc.LastSearched, err = time.Parse(sqliteTimeLayout, last)
		if err != nil {
			return nil, eris.Wrapf(err, "sqlite: parse searched_at %q", last)
		}
		out = append(out, qc)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: top queries iterate")
}

func (s *SQLiteStore) TopicCounts(ctx context.Context) ([]model.TopicCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT topic, COUNT(*) AS n FROM search_events
		 WHERE topic <> ''
		 GROUP BY topic
		 ORDER BY n DESC, topic`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: topic counts")
	}
	defer rows.Close() //nolint:errcheck

	var out []model.TopicCount
	for rows.Next() {
		var tc model.TopicCount
		if err := rows.Scan(&tc.Topic, &tc.Count); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan topic count")
		}
		out = append(out, tc)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: topic counts iterate")
}

func withDefaults(ev model.SearchEvent) model.SearchEvent {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.SearchedAt.IsZero() {
		ev.SearchedAt = time.Now()
	}
	ev.SearchedAt = ev.SearchedAt.UTC()
	if ev.Filter == "" {
		ev.Filter = model.FilterAll
	}
	return ev
}
