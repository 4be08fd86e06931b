package testutil

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jessndots/express-jobly/internal/database/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// NewMockClient returns a postgres client backed by sqlmock. Unmet
// expectations fail the test at cleanup.
func NewMockClient(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return postgres.NewFromDB(sqlx.NewDb(db, "postgres")), mock
}
