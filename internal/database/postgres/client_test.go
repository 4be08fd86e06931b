// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jessndots/express-jobly/internal/platform/config"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionString(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.PostgreSQLConfig
		want string
	}{
		{
			name: "full settings",
			cfg: config.PostgreSQLConfig{
				Host:           "db",
				Port:           5433,
				Database:       "jobly",
				Username:       "u",
				Password:       "p",
				SSLMode:        "disable",
				ConnectTimeout: 5,
			},
			want: "host=db port=5433 dbname=jobly user=u password=p sslmode=disable connect_timeout=5",
		},
		{
			name: "no credentials",
			cfg:  config.PostgreSQLConfig{Host: "localhost", Port: 5432, Database: "jobly_test"},
			want: "host=localhost port=5432 dbname=jobly_test",
		},
		{
			name: "dsn wins",
			cfg:  config.PostgreSQLConfig{Host: "ignored", DSN: "postgres:///jobly"},
			want: "postgres:///jobly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConnectionString(&tt.cfg))
		})
	}
}

func TestClient_HealthCheckWithMock(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing()
	client := NewFromDB(sqlx.NewDb(mockDB, "postgres"))

	require.NoError(t, client.HealthCheck(context.Background()))
	mock.ExpectClose()
	require.NoError(t, client.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewClient(t *testing.T) {
	if os.Getenv("RUN_DB_TESTS") != "1" {
		t.Skip("set RUN_DB_TESTS=1 to run database tests")
	}

	cfg := &config.PostgreSQLConfig{
		Host:         "localhost",
		Port:         5432,
		Username:     "postgres",
		Password:     "postgres",
		Database:     "jobly_test",
		SSLMode:      "disable",
		MaxOpenConns: 5,
	}

	client, err := NewClient(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Ping(context.Background()))
}

func TestErrorCodes(t *testing.T) {
	unique := &pq.Error{Code: CodeUniqueViolation}
	fk := &pq.Error{Code: CodeForeignKeyViolation}

	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, IsUniqueViolation(fk))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(errors.New("other")))
}
