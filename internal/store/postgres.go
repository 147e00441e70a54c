package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/impact-search/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock pools satisfy it.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

const (
	insertSearchEventSQL = `INSERT INTO search_events (id, query, normalized, topic, filter, result_count, searched_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	topQueriesSQL = `SELECT normalized, MAX(topic), COUNT(*) AS n, MAX(searched_at) AS last
		FROM search_events
		WHERE normalized <> ''
		GROUP BY normalized
		ORDER BY n DESC, last DESC
		LIMIT $1`

	topicCountsSQL = `SELECT topic, COUNT(*) AS n FROM search_events
		WHERE topic <> ''
		GROUP BY topic
		ORDER BY n DESC, topic`
)

// preparedStatements are prepared on each new connection.
var preparedStatements = map[string]string{
	"insert_search_event": insertSearchEventSQL,
	"top_queries":         topQueriesSQL,
	"topic_counts":        topicCountsSQL,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				// The table may not exist before the first Migrate.
				if isUndefinedTable(err) {
					continue
				}
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS search_events (
	id           TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	query        TEXT NOT NULL,
	normalized   TEXT NOT NULL,
	topic        TEXT NOT NULL DEFAULT '',
	filter       TEXT NOT NULL DEFAULT 'all',
	result_count INTEGER NOT NULL DEFAULT 0,
	searched_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_search_events_normalized ON search_events(normalized);
CREATE INDEX IF NOT EXISTS idx_search_events_topic ON search_events(topic);
CREATE INDEX IF NOT EXISTS idx_search_events_searched_at ON search_events(searched_at DESC);
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "SELECT 1")
	return eris.Wrap(err, "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) RecordSearch(ctx context.Context, ev model.SearchEvent) error {
	ev = withDefaults(ev)

	_, err := s.pool.Exec(ctx, insertSearchEventSQL,
		ev.ID, ev.Query, ev.Normalized, ev.Topic, string(ev.Filter), ev.ResultCount, ev.SearchedAt,
	)
	return eris.Wrapf(err, "postgres: insert search event %s", ev.ID)
}

func (s *PostgresStore) TopQueries(ctx context.Context, limit int) ([]model.QueryCount, error) {
	rows, err := s.pool.Query(ctx, topQueriesSQL, topLimit(limit))
	if err != nil {
		return nil, eris.Wrap(err, "postgres: top queries")
	}
	defer rows.Close()

	var out []model.QueryCount
	for rows.Next() {
		var qc model.QueryCount
		var n int64
		if err := rows.Scan(&qc.Query, &qc.Topic, &n, &qc.LastSearched); err != nil {
			return nil, eris.Wrap(err, "postgres: scan top query")
		}
		qc.Count = int(n)
		out = append(out, qc)
	}
	return out, eris.Wrap(rows.Err(), "postgres: top queries iterate")
}

func (s *PostgresStore) TopicCounts(ctx context.Context) ([]model.TopicCount, error) {
	rows, err := s.pool.Query(ctx, topicCountsSQL)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: topic counts")
	}
	defer rows.Close()

	var out []model.TopicCount
	for rows.Next() {
		var tc model.TopicCount
		var n int64
		if err := rows.Scan(&tc.Topic, &n); err != nil {
			return nil, eris.Wrap(err, "postgres: scan topic count")
		}
		tc.Count = int(n)
		out = append(out, tc)
	}
	return out, eris.Wrap(rows.Err(), "postgres: topic counts iterate")
}
