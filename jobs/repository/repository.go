package repository

import (
	"context"

	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/jobs/models"
)

// JobFilter holds optional search criteria. Nil fields are ignored and a
// false HasEquity behaves like nil.
type JobFilter struct {
	Title     *string
	MinSalary *int
	HasEquity *bool
}

// JobRepository defines data access for jobs.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	FindAll(ctx context.Context, filter JobFilter) ([]models.JobListing, error)
	Get(ctx context.Context, id int) (*models.Job, error)

	// CompanyFor returns the company that posted job id, or nil when the
	// job does not exist.
	CompanyFor(ctx context.Context, id int) (*models.JobCompany, error)

	Update(ctx context.Context, id int, payload *clause.Payload) (*models.Job, error)
	Remove(ctx context.Context, id int) error
}
