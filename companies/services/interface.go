package services

import (
	"context"

	"github.com/jessndots/express-jobly/companies/models"
	"github.com/jessndots/express-jobly/internal/database/clause"
)

type CompanyService interface {
	CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error)
	FindCompanies(ctx context.Context, query *models.CompanyQuery) ([]models.Company, error)
	GetCompany(ctx context.Context, handle string) (*models.CompanyDetail, error)
	UpdateCompany(ctx context.Context, handle string, payload *clause.Payload) (*models.Company, error)
	RemoveCompany(ctx context.Context, handle string) error
}
