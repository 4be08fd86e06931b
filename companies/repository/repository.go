package repository

import (
	"context"

	"github.com/jessndots/express-jobly/companies/models"
	"github.com/jessndots/express-jobly/internal/database/clause"
)

// CompanyFilter holds optional search criteria. Nil fields are ignored.
type CompanyFilter struct {
	Name         *string
	MinEmployees *int
	MaxEmployees *int
}

// CompanyRepository defines data access for companies.
type CompanyRepository interface {
	// Create inserts a company. A taken handle is a BadRequest and nothing
	// is inserted.
	Create(ctx context.Context, company *models.Company) (*models.Company, error)

	// FindAll returns companies matching filter ordered by name.
	FindAll(ctx context.Context, filter CompanyFilter) ([]models.Company, error)

	// Get returns the company with handle or a NotFound error.
	Get(ctx context.Context, handle string) (*models.Company, error)

	// JobsFor returns the jobs posted by handle ordered by id.
	JobsFor(ctx context.Context, handle string) ([]models.CompanyJob, error)

	// Update applies a partial update and returns the updated row.
	Update(ctx context.Context, handle string, payload *clause.Payload) (*models.Company, error)

	// Remove deletes the company with handle.
	Remove(ctx context.Context, handle string) error
}
