// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/jessndots/express-jobly/companies/models"
	"github.com/jessndots/express-jobly/companies/repository"
	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/stretchr/testify/mock"
)

// MockCompanyRepository is a mock implementation of the CompanyRepository interface
type MockCompanyRepository struct {
	mock.Mock
}

var _ repository.CompanyRepository = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context, filter repository.CompanyFilter) ([]models.Company, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Company), args.Error(1)
}

func (m *MockCompanyRepository) Get(ctx context.Context, handle string) (*models.Company, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) JobsFor(ctx context.Context, handle string) ([]models.CompanyJob, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CompanyJob), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, handle string, payload *clause.Payload) (*models.Company, error) {
	args := m.Called(ctx, handle, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) Remove(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}
