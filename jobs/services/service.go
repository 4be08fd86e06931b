// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/jessndots/express-jobly/internal/cache"
	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/internal/pkg/log"
	"github.com/jessndots/express-jobly/jobs/models"
	"github.com/jessndots/express-jobly/jobs/repository"
)

const (
	cacheKeyPrefix = "jobs"
	listKeyPrefix  = "jobs:list"
	// company details embed their jobs
	companiesPattern = "companies:*"
)

type Service struct {
	repo  repository.JobRepository
	cache *cache.GenericCacheService
}

var _ JobService = (*Service)(nil)

// NewService creates a job service. cacheService may be nil.
func NewService(repo repository.JobRepository, cacheService *cache.GenericCacheService) *Service {
	return &Service{repo: repo, cache: cacheService}
}

func (s *Service) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	job, err := s.repo.Create(ctx, &models.Job{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, listKeyPrefix+":*", companiesPattern)
	log.InfoWithContext(ctx, "Created job %d at %s", job.ID, job.CompanyHandle)
	return job, nil
}

func (s *Service) FindJobs(ctx context.Context, query *models.JobQuery) ([]models.JobListing, error) {
	filter := repository.JobFilter{}
	if query != nil {
		filter = repository.JobFilter{
			Title:     query.Title,
			MinSalary: query.MinSalary,
			HasEquity: query.HasEquity,
		}
	}

	key := s.cache.GenerateHashKey(listKeyPrefix, map[string]interface{}{
		"title":     filter.Title,
		"minSalary": filter.MinSalary,
		"hasEquity": filter.HasEquity,
	})

	var jobs []models.JobListing
	if s.getCached(ctx, key, &jobs) {
		return jobs, nil
	}

	jobs, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		log.ErrorWithContext(ctx, "Failed to find jobs: %v", err)
		return nil, err
	}

	s.store(ctx, key, jobs)
	return jobs, nil
}

// GetJob loads the job and its company concurrently.
func (s *Service) GetJob(ctx context.Context, id int) (*models.JobDetail, error) {
	key := cacheKeyPrefix + ":" + strconv.Itoa(id)

	var cached models.JobDetail
	if s.getCached(ctx, key, &cached) {
		return &cached, nil
	}

	var (
		job     *models.Job
		company *models.JobCompany
		getErr  error
		g       errgroup.Group
	)
	g.Go(func() error {
		job, getErr = s.repo.Get(ctx, id)
		return getErr
	})
	g.Go(func() error {
		var err error
		company, err = s.repo.CompanyFor(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		if getErr != nil {
			return nil, getErr
		}
		log.ErrorWithContext(ctx, "Failed to load company for job %d: %v", id, err)
		return nil, err
	}

	detail := &models.JobDetail{
		ID:      job.ID,
		Title:   job.Title,
		Salary:  job.Salary,
		Equity:  job.Equity,
		Company: company,
	}
	s.store(ctx, key, detail)
	return detail, nil
}

func (s *Service) UpdateJob(ctx context.Context, id int, payload *clause.Payload) (*models.Job, error) {
	job, err := s.repo.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeyPrefix+":*", companiesPattern)
	return job, nil
}

func (s *Service) RemoveJob(ctx context.Context, id int) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, cacheKeyPrefix+":*", companiesPattern)
	log.InfoWithContext(ctx, "Removed job %d", id)
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
