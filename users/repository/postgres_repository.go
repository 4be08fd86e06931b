// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/internal/database/observability"
	"github.com/jessndots/express-jobly/internal/database/postgres"
	userErrors "github.com/jessndots/express-jobly/users/errors"
	"github.com/jessndots/express-jobly/users/models"
)

const (
	entity      = "users"
	userColumns = "username, first_name, last_name, email, is_admin"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// postgresRepository implements UserRepository for PostgreSQL
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL user repository
func NewPostgresRepository(client *postgres.Client) UserRepository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) db() *sqlx.DB {
	return r.client.DB()
}

func (r *postgresRepository) Create(ctx context.Context, user *models.User, passwordHash string) (result *models.User, err error) {
	defer observe("create", time.Now(), &err)

	var existing string
	err = sqlx.GetContext(ctx, r.db(), &existing, `SELECT username FROM users WHERE username = $1`, user.Username)
	switch {
	case err == nil:
		return nil, userErrors.Duplicate(user.Username)
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	query, args, err := psql.
		Insert("users").
		Columns("username", "password", "first_name", "last_name", "email", "is_admin").
		Values(user.Username, passwordHash, user.FirstName, user.LastName, user.Email, user.IsAdmin).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert: %w", err)
	}

	var created models.User
	if err = sqlx.GetContext(ctx, r.db(), &created, query, args...); err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, userErrors.Duplicate(user.Username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) Credentials(ctx context.Context, username string) (creds *models.Credentials, err error) {
	defer observe("credentials", time.Now(), &err)

	var c models.Credentials
	err = sqlx.GetContext(ctx, r.db(), &c,
		`SELECT `+userColumns+`, password FROM users WHERE username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userErrors.NotFound(username)
		}
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}
	return &c, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) (users []models.User, err error) {
	defer observe("find_all", time.Now(), &err)

	users = []models.User{}
	if err = sqlx.SelectContext(ctx, r.db(), &users, `SELECT `+userColumns+` FROM users ORDER BY username`); err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	return users, nil
}

func (r *postgresRepository) Get(ctx context.Context, username string) (user *models.User, err error) {
	defer observe("get", time.Now(), &err)

	var u models.User
	if err = sqlx.GetContext(ctx, r.db(), &u, `SELECT `+userColumns+` FROM users WHERE username = $1`, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userErrors.NotFound(username)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func (r *postgresRepository) AppliedJobs(ctx context.Context, username string) (ids []int, err error) {
	defer observe("applied_jobs", time.Now(), &err)

	ids = []int{}
	err = sqlx.SelectContext(ctx, r.db(), &ids,
		`SELECT job_id FROM applications WHERE username = $1 ORDER BY job_id`, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get applications: %w", err)
	}
	return ids, nil
}

// Update applies a partial update. The username binds after the SET values.
func (r *postgresRepository) Update(ctx context.Context, username string, payload *clause.Payload) (user *models.User, err error) {
	defer observe("update", time.Now(), &err)

	set, err := clause.BuildSet(payload, UpdateFields)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE username = %s RETURNING %s`,
		set.Text, clause.Placeholder(set.Next()), userColumns)

	var u models.User
	if err = sqlx.GetContext(ctx, r.db(), &u, query, set.Args(username)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userErrors.NotFound(username)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &u, nil
}

func (r *postgresRepository) Remove(ctx context.Context, username string) (err error) {
	defer observe("remove", time.Now(), &err)

	var deleted string
	err = sqlx.GetContext(ctx, r.db(), &deleted, `DELETE FROM users WHERE username = $1 RETURNING username`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return userErrors.NotFound(username)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *postgresRepository) Apply(ctx context.Context, username string, jobID int) (err error) {
	defer observe("apply", time.Now(), &err)

	var id int
	if err = sqlx.GetContext(ctx, r.db(), &id, `SELECT id FROM jobs WHERE id = $1`, jobID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return userErrors.JobNotFound(jobID)
		}
		return fmt.Errorf("failed to check job: %w", err)
	}

	var name string
	if err = sqlx.GetContext(ctx, r.db(), &name, `SELECT username FROM users WHERE username = $1`, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return userErrors.NotFound(username)
		}
		return fmt.Errorf("failed to check user: %w", err)
	}

	if _, err = r.db().ExecContext(ctx,
		`INSERT INTO applications (job_id, username) VALUES ($1, $2)`, jobID, username); err != nil {
		if postgres.IsUniqueViolation(err) {
			return userErrors.AlreadyApplied(username, jobID)
		}
		return fmt.Errorf("failed to apply: %w", err)
	}
	return nil
}

func observe(operation string, start time.Time, err *error) {
	observability.ObserveQuery(entity, operation, start, *err)
}
