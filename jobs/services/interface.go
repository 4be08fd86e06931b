package services

import (
	"context"

	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/jobs/models"
)

type JobService interface {
	CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)
	FindJobs(ctx context.Context, query *models.JobQuery) ([]models.JobListing, error)
	GetJob(ctx context.Context, id int) (*models.JobDetail, error)
	UpdateJob(ctx context.Context, id int, payload *clause.Payload) (*models.Job, error)
	RemoveJob(ctx context.Context, id int) error
}
