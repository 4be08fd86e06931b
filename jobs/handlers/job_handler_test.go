package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/internal/testutil"
	jobErrors "github.com/jessndots/express-jobly/jobs/errors"
	"github.com/jessndots/express-jobly/jobs/handlers"
	"github.com/jessndots/express-jobly/jobs/models"
)

// MockJobService implements the JobService interface for testing
type MockJobService struct {
	createFunc func(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)
	findFunc   func(ctx context.Context, query *models.JobQuery) ([]models.JobListing, error)
	getFunc    func(ctx context.Context, id int) (*models.JobDetail, error)
	updateFunc func(ctx context.Context, id int, payload *clause.Payload) (*models.Job, error)
	removeFunc func(ctx context.Context, id int) error
}

func (m *MockJobService) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &models.Job{ID: 1, Title: req.Title, CompanyHandle: req.CompanyHandle}, nil
}

func (m *MockJobService) FindJobs(ctx context.Context, query *models.JobQuery) ([]models.JobListing, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, query)
	}
	return []models.JobListing{}, nil
}

func (m *MockJobService) GetJob(ctx context.Context, id int) (*models.JobDetail, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, jobErrors.NotFound(id)
}

func (m *MockJobService) UpdateJob(ctx context.Context, id int, payload *clause.Payload) (*models.Job, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, payload)
	}
	return &models.Job{ID: id}, nil
}

func (m *MockJobService) RemoveJob(ctx context.Context, id int) error {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, id)
	}
	return nil
}

func setupApp(t *testing.T, svc *MockJobService) *testutil.HTTPHelper {
	app := fiber.New()
	h := handlers.NewJobHandler(svc)
	app.Post("/jobs", h.CreateJob)
	app.Get("/jobs", h.FindJobs)
	app.Get("/jobs/:id", h.GetJob)
	app.Patch("/jobs/:id", h.UpdateJob)
	app.Delete("/jobs/:id", h.RemoveJob)
	return testutil.NewHTTPHelper(t, app)
}

func TestCreateJob(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		helper := setupApp(t, &MockJobService{})

		resp := helper.NewRequest(http.MethodPost, "/jobs", map[string]interface{}{
			"title": "new", "salary": 100, "equity": "0.1", "companyHandle": "c1",
		}).Send()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		job := testutil.DecodeJSON(t, resp)["job"].(map[string]interface{})
		assert.Equal(t, "new", job["title"])
	})

	t.Run("bad equity", func(t *testing.T) {
		helper := setupApp(t, &MockJobService{})

		resp := helper.NewRequest(http.MethodPost, "/jobs", map[string]interface{}{
			"title": "new", "equity": "2", "companyHandle": "c1",
		}).Send()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate", func(t *testing.T) {
		helper := setupApp(t, &MockJobService{
			createFunc: func(_ context.Context, req *models.CreateJobRequest) (*models.Job, error) {
				return nil, jobErrors.Duplicate(req.Title, req.CompanyHandle)
			},
		})

		resp := helper.NewRequest(http.MethodPost, "/jobs", map[string]interface{}{"title": "j1", "companyHandle": "c1"}).Send()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Duplicate job: j1 at c1", testutil.DecodeJSON(t, resp)["message"])
	})
}

func TestFindJobs(t *testing.T) {
	t.Run("decodes filters", func(t *testing.T) {
		var got *models.JobQuery
		helper := setupApp(t, &MockJobService{
			findFunc: func(_ context.Context, q *models.JobQuery) ([]models.JobListing, error) {
				got = q
				return []models.JobListing{}, nil
			},
		})

		resp := helper.NewRequest(http.MethodGet, "/jobs?title=eng&minSalary=1000&hasEquity=true", nil).Send()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, got)
		assert.Equal(t, "eng", *got.Title)
		assert.Equal(t, 1000, *got.MinSalary)
		assert.True(t, *got.HasEquity)
		assert.NotNil(t, testutil.DecodeJSON(t, resp)["jobs"])
	})

	t.Run("hasEquity false is passed through", func(t *testing.T) {
		var got *models.JobQuery
		helper := setupApp(t, &MockJobService{
			findFunc: func(_ context.Context, q *models.JobQuery) ([]models.JobListing, error) {
				got = q
				return []models.JobListing{}, nil
			},
		})

		resp := helper.NewRequest(http.MethodGet, "/jobs?hasEquity=false", nil).Send()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, got.HasEquity)
		assert.False(t, *got.HasEquity)
	})

	t.Run("unknown key", func(t *testing.T) {
		helper := setupApp(t, &MockJobService{})

		resp := helper.NewRequest(http.MethodGet, "/jobs?remote=true", nil).Send()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetJob(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		helper := setupApp(t, &MockJobService{
			getFunc: func(_ context.Context, id int) (*models.JobDetail, error) {
				return &models.JobDetail{ID: id, Title: "j1", Company: &models.JobCompany{Handle: "c1"}}, nil
			},
		})

		resp := helper.NewRequest(http.MethodGet, "/jobs/3", nil).Send()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		job := testutil.DecodeJSON(t, resp)["job"].(map[string]interface{})
		assert.Equal(t, float64(3), job["id"])
		assert.Equal(t, "c1", job["company"].(map[string]interface{})["handle"])
	})

	t.Run("not found", func(t *testing.T) {
		helper := setupApp(t, &MockJobService{})

		resp := helper.NewRequest(http.MethodGet, "/jobs/0", nil).Send()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "No job: 0", testutil.DecodeJSON(t, resp)["message"])
	})
}

func TestUpdateJob(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var got []string
		helper := setupApp(t, &MockJobService{
			updateFunc: func(_ context.Context, id int, p *clause.Payload) (*models.Job, error) {
				got = p.Keys()
				return &models.Job{ID: id, Title: "New"}, nil
			},
		})

		resp := helper.NewRequest(http.MethodPatch, "/jobs/1", `{"salary": 5, "title": "New"}`).Send()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{"salary", "title"}, got)
	})

	t.Run("company handle forbidden", func(t *testing.T) {
		helper := setupApp(t, &MockJobService{})

		resp := helper.NewRequest(http.MethodPatch, "/jobs/1", `{"companyHandle": "c2"}`).Send()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "companyHandle cannot be updated", testutil.DecodeJSON(t, resp)["message"])
	})

	t.Run("array rejected", func(t *testing.T) {
		helper := setupApp(t, &MockJobService{})

		resp := helper.NewRequest(http.MethodPatch, "/jobs/1", `["title"]`).Send()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRemoveJob(t *testing.T) {
	helper := setupApp(t, &MockJobService{})

	resp := helper.NewRequest(http.MethodDelete, "/jobs/4", nil).Send()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(4), testutil.DecodeJSON(t, resp)["deleted"])
}
