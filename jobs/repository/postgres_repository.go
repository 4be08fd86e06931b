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
	jobErrors "github.com/jessndots/express-jobly/jobs/errors"
	"github.com/jessndots/express-jobly/jobs/models"
)

const (
	entity     = "jobs"
	jobColumns = "id, title, salary, equity, company_handle"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// postgresRepository implements JobRepository for PostgreSQL
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL job repository
func NewPostgresRepository(client *postgres.Client) JobRepository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) db() *sqlx.DB {
	return r.client.DB()
}

// Create inserts a job unless the company already lists one with the same title
func (r *postgresRepository) Create(ctx context.Context, job *models.Job) (result *models.Job, err error) {
	defer observe("create", time.Now(), &err)

	var existing int
	err = sqlx.GetContext(ctx, r.db(), &existing,
		`SELECT id FROM jobs WHERE title = $1 AND company_handle = $2`, job.Title, job.CompanyHandle)
	switch {
	case err == nil:
		return nil, jobErrors.Duplicate(job.Title, job.CompanyHandle)
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("failed to check job title: %w", err)
	}

	query, args, err := psql.
		Insert("jobs").
		Columns("title", "salary", "equity", "company_handle").
		Values(job.Title, job.Salary, job.Equity, job.CompanyHandle).
		Suffix("RETURNING " + jobColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert: %w", err)
	}

	var created models.Job
	if err = sqlx.GetContext(ctx, r.db(), &created, query, args...); err != nil {
		switch {
		case postgres.IsForeignKeyViolation(err):
			return nil, jobErrors.UnknownCompany(job.CompanyHandle)
		case postgres.IsUniqueViolation(err):
			return nil, jobErrors.Duplicate(job.Title, job.CompanyHandle)
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &created, nil
}

// FindAll returns jobs matching the filter ordered by title
func (r *postgresRepository) FindAll(ctx context.Context, filter JobFilter) (jobs []models.JobListing, err error) {
	defer observe("find_all", time.Now(), &err)

	where := BuildJobFilter(filter)
	query := clause.Statement(
		`SELECT j.id, j.title, j.salary, j.equity, j.company_handle, c.name AS company_name
		 FROM jobs j LEFT JOIN companies AS c ON c.handle = j.company_handle`,
		clause.Where(where),
		"ORDER BY title",
	)

	jobs = []models.JobListing{}
	if err = sqlx.SelectContext(ctx, r.db(), &jobs, query, where.Values...); err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}
	return jobs, nil
}

// Get returns a single job by id
func (r *postgresRepository) Get(ctx context.Context, id int) (job *models.Job, err error) {
	defer observe("get", time.Now(), &err)

	var j models.Job
	if err = sqlx.GetContext(ctx, r.db(), &j, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, jobErrors.NotFound(id)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &j, nil
}

func (r *postgresRepository) CompanyFor(ctx context.Context, id int) (company *models.JobCompany, err error) {
	defer observe("company_for", time.Now(), &err)

	var c models.JobCompany
	err = sqlx.GetContext(ctx, r.db(), &c,
		`SELECT handle, name, description, num_employees, logo_url
		 FROM companies WHERE handle = (SELECT company_handle FROM jobs WHERE id = $1)`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job company: %w", err)
	}
	return &c, nil
}

// Update applies a partial update. The id binds after the SET values.
func (r *postgresRepository) Update(ctx context.Context, id int, payload *clause.Payload) (job *models.Job, err error) {
	defer observe("update", time.Now(), &err)

	set, err := clause.BuildSet(payload, UpdateFields)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = %s RETURNING %s`,
		set.Text, clause.Placeholder(set.Next()), jobColumns)

	var j models.Job
	if err = sqlx.GetContext(ctx, r.db(), &j, query, set.Args(id)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, jobErrors.NotFound(id)
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return &j, nil
}

// Remove deletes a job by id
func (r *postgresRepository) Remove(ctx context.Context, id int) (err error) {
	defer observe("remove", time.Now(), &err)

	var deleted int
	if err = sqlx.GetContext(ctx, r.db(), &deleted, `DELETE FROM jobs WHERE id = $1 RETURNING id`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jobErrors.NotFound(id)
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

func observe(operation string, start time.Time, err *error) {
	observability.ObserveQuery(entity, operation, start, *err)
}
