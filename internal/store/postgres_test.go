package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/impact-search/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS search_events`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_RecordSearch(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	at := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO search_events`).
		WithArgs("evt-1", "Global Warming", "global warming", "climate change", "campaigns", 3, at).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := s.RecordSearch(context.Background(), model.SearchEvent{
		ID:          "evt-1",
		Query:       "Global Warming",
		Normalized:  "global warming",
		Topic:       "climate change",
		Filter:      model.FilterCampaigns,
		ResultCount: 3,
		SearchedAt:  at,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_RecordSearch_Error(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO search_events`).
		WithArgs("evt-2", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection refused"))

	err := s.RecordSearch(context.Background(), model.SearchEvent{ID: "evt-2", Query: "x", Normalized: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres: insert search event evt-2")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_TopQueries(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	last := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"normalized", "max", "n", "last"}).
		AddRow("hunger", "hunger", int64(4), last).
		AddRow("pizza", "", int64(1), last.Add(-time.Hour))
	mock.ExpectQuery(`SELECT normalized, MAX\(topic\), COUNT\(\*\)`).
		WithArgs(5).
		WillReturnRows(rows)

	got, err := s.TopQueries(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []model.QueryCount{
		{Query: "hunger", Topic: "hunger", Count: 4, LastSearched: last},
		{Query: "pizza", Topic: "", Count: 1, LastSearched: last.Add(-time.Hour)},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_TopQueries_DefaultLimit(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`FROM search_events`).
		WithArgs(DefaultTopLimit).
		WillReturnRows(pgxmock.NewRows([]string{"normalized", "max", "n", "last"}))

	got, err := s.TopQueries(context.Background(), -1)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_TopicCounts(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	rows := pgxmock.NewRows([]string{"topic", "n"}).
		AddRow("ocean", int64(7)).
		AddRow("education", int64(2))
	mock.ExpectQuery(`SELECT topic, COUNT\(\*\) AS n FROM search_events`).
		WillReturnRows(rows)

	got, err := s.TopicCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.TopicCount{{Topic: "ocean", Count: 7}, {Topic: "education", Count: 2}}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_TopicCounts_QueryError(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT topic`).WillReturnError(errors.New("relation does not exist"))

	_, err := s.TopicCounts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres: topic counts")
}

func TestPostgresStore_Ping(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`SELECT 1`).WillReturnResult(pgxmock.NewResult("SELECT", 1))

	require.NoError(t, s.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CloseWithoutPool(t *testing.T) {
	s := &PostgresStore{}
	assert.NoError(t, s.Close())
}

var _ Store = (*PostgresStore)(nil)
var _ Store = (*SQLiteStore)(nil)
