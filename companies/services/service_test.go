// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	companyErrors "github.com/jessndots/express-jobly/companies/errors"
	"github.com/jessndots/express-jobly/companies/models"
	"github.com/jessndots/express-jobly/companies/repository"
	"github.com/jessndots/express-jobly/internal/apperrors"
	"github.com/jessndots/express-jobly/internal/cache"
	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/internal/platform/config"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func createTestCompany(handle string) *models.Company {
	return &models.Company{
		Handle:       handle,
		Name:         "Company " + handle,
		Description:  "Desc " + handle,
		NumEmployees: intPtr(10),
		LogoURL:      strPtr("http://" + handle + ".img"),
	}
}

func newCachedService(t *testing.T, repo repository.CompanyRepository) *Service {
	t.Helper()
	backend := cache.NewMemoryCache(100, 0)
	t.Cleanup(func() { backend.Close() })
	return NewService(repo, cache.NewGenericCacheService(backend, config.CacheConfig{
		TTL:    time.Minute,
		Prefix: "test",
	}))
}

func TestCreateCompany(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCompanyRepository)
	svc := NewService(repo, nil)

	req := &models.CreateCompanyRequest{Handle: "c1", Name: "Company c1", Description: "Desc c1"}
	repo.On("Create", ctx, mock.MatchedBy(func(c *models.Company) bool {
		return c.Handle == "c1" && c.Name == "Company c1"
	})).Return(createTestCompany("c1"), nil)

	company, err := svc.CreateCompany(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "c1", company.Handle)
	repo.AssertExpectations(t)
}

func TestCreateCompany_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCompanyRepository)
	svc := NewService(repo, nil)

	repo.On("Create", ctx, mock.Anything).Return(nil, companyErrors.Duplicate("c1"))

	_, err := svc.CreateCompany(ctx, &models.CreateCompanyRequest{Handle: "c1", Name: "C1"})
	assert.True(t, errors.Is(err, companyErrors.ErrDuplicateCompany))
}

func TestFindCompanies(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the filter through", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		svc := NewService(repo, nil)

		query := &models.CompanyQuery{Name: strPtr("c"), MinEmployees: intPtr(1)}
		repo.On("FindAll", ctx, repository.CompanyFilter{Name: query.Name, MinEmployees: query.MinEmployees}).
			Return([]models.Company{*createTestCompany("c1")}, nil)

		companies, err := svc.FindCompanies(ctx, query)
		require.NoError(t, err)
		assert.Len(t, companies, 1)
		repo.AssertExpectations(t)
	})

	t.Run("min greater than max is rejected before the query", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		svc := NewService(repo, nil)

		_, err := svc.FindCompanies(ctx, &models.CompanyQuery{MinEmployees: intPtr(5), MaxEmployees: intPtr(1)})
		require.Error(t, err)
		assert.True(t, errors.Is(err, companyErrors.ErrInvalidRange))
		assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
		repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("equal bounds are allowed", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		svc := NewService(repo, nil)

		repo.On("FindAll", ctx, mock.Anything).Return([]models.Company{}, nil)

		_, err := svc.FindCompanies(ctx, &models.CompanyQuery{MinEmployees: intPtr(3), MaxEmployees: intPtr(3)})
		require.NoError(t, err)
	})

	t.Run("second search is served from cache", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		svc := newCachedService(t, repo)

		repo.On("FindAll", ctx, repository.CompanyFilter{}).
			Return([]models.Company{*createTestCompany("c1")}, nil).Once()

		first, err := svc.FindCompanies(ctx, nil)
		require.NoError(t, err)
		second, err := svc.FindCompanies(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		repo.AssertNumberOfCalls(t, "FindAll", 1)
	})
}

func TestGetCompany(t *testing.T) {
	ctx := context.Background()

	t.Run("combines company and jobs", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		svc := NewService(repo, nil)

		repo.On("Get", ctx, "c1").Return(createTestCompany("c1"), nil)
		repo.On("JobsFor", ctx, "c1").Return([]models.CompanyJob{{ID: 1, Title: "j1"}}, nil)

		detail, err := svc.GetCompany(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, "c1", detail.Handle)
		require.Len(t, detail.Jobs, 1)
		assert.Equal(t, "j1", detail.Jobs[0].Title)
	})

	t.Run("missing company wins over jobs result", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		svc := NewService(repo, nil)

		repo.On("Get", ctx, "nope").Return(nil, companyErrors.NotFound("nope"))
		repo.On("JobsFor", ctx, "nope").Return([]models.CompanyJob{}, nil)

		_, err := svc.GetCompany(ctx, "nope")
		assert.True(t, errors.Is(err, companyErrors.ErrCompanyNotFound))
	})

	t.Run("update invalidates cached detail", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		svc := newCachedService(t, repo)

		updated := createTestCompany("c1")
		updated.Name = "Renamed"
		payload := clause.NewPayload().Set("name", "Renamed")

		repo.On("Get", ctx, "c1").Return(createTestCompany("c1"), nil).Once()
		repo.On("JobsFor", ctx, "c1").Return([]models.CompanyJob{}, nil)
		repo.On("Update", ctx, "c1", payload).Return(updated, nil)

		_, err := svc.GetCompany(ctx, "c1")
		require.NoError(t, err)
		_, err = svc.GetCompany(ctx, "c1")
		require.NoError(t, err)
		repo.AssertNumberOfCalls(t, "Get", 1)

		_, err = svc.UpdateCompany(ctx, "c1", payload)
		require.NoError(t, err)

		repo.On("Get", ctx, "c1").Return(updated, nil).Once()
		detail, err := svc.GetCompany(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", detail.Name)
		repo.AssertNumberOfCalls(t, "Get", 2)
	})
}

func TestUpdateCompany_NoData(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCompanyRepository)
	svc := NewService(repo, nil)

	repo.On("Update", ctx, "c1", mock.Anything).Return(nil, clause.ErrNoData)

	_, err := svc.UpdateCompany(ctx, "c1", clause.NewPayload())
	assert.ErrorIs(t, err, clause.ErrNoData)
}

func TestRemoveCompany(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCompanyRepository)
	svc := NewService(repo, nil)

	repo.On("Remove", ctx, "c1").Return(nil)
	repo.On("Remove", ctx, "nope").Return(companyErrors.NotFound("nope"))

	require.NoError(t, svc.RemoveCompany(ctx, "c1"))
	assert.True(t, errors.Is(svc.RemoveCompany(ctx, "nope"), companyErrors.ErrCompanyNotFound))
}
