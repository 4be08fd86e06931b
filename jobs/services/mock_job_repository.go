// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/jobs/models"
	"github.com/jessndots/express-jobly/jobs/repository"
)

// MockJobRepository is a mock implementation of the JobRepository interface
type MockJobRepository struct {
	mock.Mock
}

var _ repository.JobRepository = (*MockJobRepository)(nil)

func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) FindAll(ctx context.Context, filter repository.JobFilter) ([]models.JobListing, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobListing), args.Error(1)
}

func (m *MockJobRepository) Get(ctx context.Context, id int) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) CompanyFor(ctx context.Context, id int) (*models.JobCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobCompany), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, id int, payload *clause.Payload) (*models.Job, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Remove(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
