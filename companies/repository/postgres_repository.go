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
	companyErrors "github.com/jessndots/express-jobly/companies/errors"
	"github.com/jessndots/express-jobly/companies/models"
	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/internal/database/observability"
	"github.com/jessndots/express-jobly/internal/database/postgres"
)

const (
	entity         = "companies"
	companyColumns = "handle, name, description, num_employees, logo_url"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// postgresRepository implements CompanyRepository for PostgreSQL
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL company repository
func NewPostgresRepository(client *postgres.Client) CompanyRepository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) db() *sqlx.DB {
	return r.client.DB()
}

// Create inserts a new company after checking the handle is free
func (r *postgresRepository) Create(ctx context.Context, company *models.Company) (result *models.Company, err error) {
	defer observe("create", time.Now(), &err)

	var existing string
	err = sqlx.GetContext(ctx, r.db(), &existing, `SELECT handle FROM companies WHERE handle = $1`, company.Handle)
	switch {
	case err == nil:
		return nil, companyErrors.Duplicate(company.Handle)
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("failed to check company handle: %w", err)
	}

	query, args, err := psql.
		Insert("companies").
		Columns("handle", "name", "description", "num_employees", "logo_url").
		Values(company.Handle, company.Name, company.Description, company.NumEmployees, company.LogoURL).
		Suffix("RETURNING " + companyColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert: %w", err)
	}

	var created models.Company
	if err = sqlx.GetContext(ctx, r.db(), &created, query, args...); err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, companyErrors.Duplicate(company.Handle)
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return &created, nil
}

// FindAll returns companies matching the filter ordered by name
func (r *postgresRepository) FindAll(ctx context.Context, filter CompanyFilter) (companies []models.Company, err error) {
	defer observe("find_all", time.Now(), &err)

	where := BuildCompanyFilter(filter)
	query := clause.Statement("SELECT "+companyColumns+" FROM companies", clause.Where(where), "ORDER BY name")

	companies = []models.Company{}
	if err = sqlx.SelectContext(ctx, r.db(), &companies, query, where.Values...); err != nil {
		return nil, fmt.Errorf("failed to find companies: %w", err)
	}
	return companies, nil
}

// Get returns a single company by handle
func (r *postgresRepository) Get(ctx context.Context, handle string) (company *models.Company, err error) {
	defer observe("get", time.Now(), &err)

	var c models.Company
	err = sqlx.GetContext(ctx, r.db(), &c, `SELECT `+companyColumns+` FROM companies WHERE handle = $1`, handle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, companyErrors.NotFound(handle)
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &c, nil
}

// JobsFor returns the jobs of a company ordered by id
func (r *postgresRepository) JobsFor(ctx context.Context, handle string) (jobs []models.CompanyJob, err error) {
	defer observe("jobs_for", time.Now(), &err)

	jobs = []models.CompanyJob{}
	err = sqlx.SelectContext(ctx, r.db(), &jobs,
		`SELECT id, title, salary, equity FROM jobs WHERE company_handle = $1 ORDER BY id`, handle)
	if err != nil {
		return nil, fmt.Errorf("failed to get company jobs: %w", err)
	}
	return jobs, nil
}

// Update applies a partial update. The handle binds after the SET values.
func (r *postgresRepository) Update(ctx context.Context, handle string, payload *clause.Payload) (company *models.Company, err error) {
	defer observe("update", time.Now(), &err)

	set, err := clause.BuildSet(payload, UpdateFields)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE handle = %s RETURNING %s`,
		set.Text, clause.Placeholder(set.Next()), companyColumns)

	var c models.Company
	if err = sqlx.GetContext(ctx, r.db(), &c, query, set.Args(handle)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, companyErrors.NotFound(handle)
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return &c, nil
}

// Remove deletes a company by handle
func (r *postgresRepository) Remove(ctx context.Context, handle string) (err error) {
	defer observe("remove", time.Now(), &err)

	var deleted string
	err = sqlx.GetContext(ctx, r.db(), &deleted, `DELETE FROM companies WHERE handle = $1 RETURNING handle`, handle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return companyErrors.NotFound(handle)
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

func observe(operation string, start time.Time, err *error) {
	observability.ObserveQuery(entity, operation, start, *err)
}
