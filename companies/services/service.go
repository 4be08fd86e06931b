// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	companyErrors "github.com/jessndots/express-jobly/companies/errors"
	"github.com/jessndots/express-jobly/companies/models"
	"github.com/jessndots/express-jobly/companies/repository"
	"github.com/jessndots/express-jobly/internal/cache"
	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/internal/pkg/log"
)

const (
	cacheKeyPrefix = "companies"
	listKeyPrefix  = "companies:list"
	// job listings and details embed company data
	jobsPattern = "jobs:*"
)

type Service struct {
	repo  repository.CompanyRepository
	cache *cache.GenericCacheService
}

var _ CompanyService = (*Service)(nil)

// NewService creates a company service. cacheService may be nil.
func NewService(repo repository.CompanyRepository, cacheService *cache.GenericCacheService) *Service {
	return &Service{repo: repo, cache: cacheService}
}

func (s *Service) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	company, err := s.repo.Create(ctx, &models.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, listKeyPrefix+":*")
	log.InfoWithContext(ctx, "Created company %s", company.Handle)
	return company, nil
}

// FindCompanies searches companies. A nil query returns every company.
func (s *Service) FindCompanies(ctx context.Context, query *models.CompanyQuery) ([]models.Company, error) {
	filter := repository.CompanyFilter{}
	if query != nil {
		filter = repository.CompanyFilter{
			Name:         query.Name,
			MinEmployees: query.MinEmployees,
			MaxEmployees: query.MaxEmployees,
		}
	}
	if filter.MinEmployees != nil && filter.MaxEmployees != nil && *filter.MinEmployees > *filter.MaxEmployees {
		return nil, companyErrors.ErrInvalidRange
	}

	key := s.cache.GenerateHashKey(listKeyPrefix, map[string]interface{}{
		"name":         filter.Name,
		"minEmployees": filter.MinEmployees,
		"maxEmployees": filter.MaxEmployees,
	})

	var companies []models.Company
	if s.getCached(ctx, key, &companies) {
		return companies, nil
	}

	companies, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		log.ErrorWithContext(ctx, "Failed to find companies: %v", err)
		return nil, err
	}

	s.store(ctx, key, companies)
	return companies, nil
}

// GetCompany loads the company and its jobs concurrently.
func (s *Service) GetCompany(ctx context.Context, handle string) (*models.CompanyDetail, error) {
	key := cacheKeyPrefix + ":" + handle

	var cached models.CompanyDetail
	if s.getCached(ctx, key, &cached) {
		return &cached, nil
	}

	var (
		company *models.Company
		jobs    []models.CompanyJob
		getErr  error
		g       errgroup.Group
	)
	g.Go(func() error {
		company, getErr = s.repo.Get(ctx, handle)
		return getErr
	})
	g.Go(func() error {
		var err error
		jobs, err = s.repo.JobsFor(ctx, handle)
		return err
	})
	if err := g.Wait(); err != nil {
		if getErr != nil {
			return nil, getErr
		}
		log.ErrorWithContext(ctx, "Failed to load jobs for %s: %v", handle, err)
		return nil, err
	}

	detail := &models.CompanyDetail{Company: *company, Jobs: jobs}
	s.store(ctx, key, detail)
	return detail, nil
}

func (s *Service) UpdateCompany(ctx context.Context, handle string, payload *clause.Payload) (*models.Company, error) {
	company, err := s.repo.Update(ctx, handle, payload)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeyPrefix+":*", jobsPattern)
	return company, nil
}

func (s *Service) RemoveCompany(ctx context.Context, handle string) error {
	if err := s.repo.Remove(ctx, handle); err != nil {
		return err
	}
	s.invalidate(ctx, cacheKeyPrefix+":*", jobsPattern)
	log.InfoWithContext(ctx, "Removed company %s", handle)
	return nil
}

func (s *Service) getCached(ctx context.Context, key string, target interface{}) bool {
	if !s.cache.IsEnabled() {
		return false
	}
	if err := s.cache.GetCached(ctx, key, target); err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			log.InfoWithContext(ctx, "Cache miss for %s", key)
		}
		return false
	}
	return true
}

func (s *Service) store(ctx context.Context, key string, data interface{}) {
	if !s.cache.IsEnabled() {
		return
	}
	_ = s.cache.CacheData(ctx, key, data)
}

func (s *Service) invalidate(ctx context.Context, patterns ...string) {
	if !s.cache.IsEnabled() {
		return
	}
	for _, pattern := range patterns {
		_ = s.cache.InvalidatePattern(ctx, pattern)
	}
}
