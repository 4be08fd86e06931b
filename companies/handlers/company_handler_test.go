package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	companyErrors "github.com/jessndots/express-jobly/companies/errors"
	"github.com/jessndots/express-jobly/companies/handlers"
	"github.com/jessndots/express-jobly/companies/models"
	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/internal/testutil"
)

// MockCompanyService implements the CompanyService interface for testing
type MockCompanyService struct {
	createFunc func(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error)
	findFunc   func(ctx context.Context, query *models.CompanyQuery) ([]models.Company, error)
	getFunc    func(ctx context.Context, handle string) (*models.CompanyDetail, error)
	updateFunc func(ctx context.Context, handle string, payload *clause.Payload) (*models.Company, error)
	removeFunc func(ctx context.Context, handle string) error
}

func (m *MockCompanyService) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockCompanyService) FindCompanies(ctx context.Context, query *models.CompanyQuery) ([]models.Company, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, query)
	}
	return []models.Company{}, nil
}

func (m *MockCompanyService) GetCompany(ctx context.Context, handle string) (*models.CompanyDetail, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, handle)
	}
	return nil, companyErrors.NotFound(handle)
}

func (m *MockCompanyService) UpdateCompany(ctx context.Context, handle string, payload *clause.Payload) (*models.Company, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, handle, payload)
	}
	return nil, nil
}

func (m *MockCompanyService) RemoveCompany(ctx context.Context, handle string) error {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, handle)
	}
	return nil
}

func setupApp(svc *MockCompanyService) *fiber.App {
	app := fiber.New()
	h := handlers.NewCompanyHandler(svc)
	app.Post("/companies", h.CreateCompany)
	app.Get("/companies", h.FindCompanies)
	app.Get("/companies/:handle", h.GetCompany)
	app.Patch("/companies/:handle", h.UpdateCompany)
	app.Delete("/companies/:handle", h.RemoveCompany)
	return app
}

func TestCreateCompany(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &MockCompanyService{
			createFunc: func(_ context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
				return &models.Company{Handle: req.Handle, Name: req.Name}, nil
			},
		}
		helper := testutil.NewHTTPHelper(t, setupApp(svc))

		resp := helper.NewRequest(http.MethodPost, "/companies", map[string]interface{}{
			"handle": "new", "name": "New", "description": "New Description",
		}).Send()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		body := testutil.DecodeJSON(t, resp)
		company := body["company"].(map[string]interface{})
		assert.Equal(t, "new", company["handle"])
	})

	t.Run("validation failure", func(t *testing.T) {
		helper := testutil.NewHTTPHelper(t, setupApp(&MockCompanyService{}))

		resp := helper.NewRequest(http.MethodPost, "/companies", map[string]interface{}{"name": "New"}).Send()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_FAILED", testutil.DecodeJSON(t, resp)["code"])
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := &MockCompanyService{
			createFunc: func(_ context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
				return nil, companyErrors.Duplicate(req.Handle)
			},
		}
		helper := testutil.NewHTTPHelper(t, setupApp(svc))

		resp := helper.NewRequest(http.MethodPost, "/companies", map[string]interface{}{"handle": "c1", "name": "C1"}).Send()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := testutil.DecodeJSON(t, resp)
		assert.Equal(t, "Duplicate company: c1", body["message"])
	})
}

func TestFindCompanies(t *testing.T) {
	t.Run("decodes filters", func(t *testing.T) {
		var got *models.CompanyQuery
		svc := &MockCompanyService{
			findFunc: func(_ context.Context, q *models.CompanyQuery) ([]models.Company, error) {
				got = q
				return []models.Company{{Handle: "c1"}}, nil
			},
		}
		helper := testutil.NewHTTPHelper(t, setupApp(svc))

		resp := helper.NewRequest(http.MethodGet, "/companies?name=net&minEmployees=2", nil).Send()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, got)
		assert.Equal(t, "net", *got.Name)
		assert.Equal(t, 2, *got.MinEmployees)
		assert.Nil(t, got.MaxEmployees)

		companies := testutil.DecodeJSON(t, resp)["companies"].([]interface{})
		assert.Len(t, companies, 1)
	})

	t.Run("unknown query key", func(t *testing.T) {
		helper := testutil.NewHTTPHelper(t, setupApp(&MockCompanyService{}))

		resp := helper.NewRequest(http.MethodGet, "/companies?ceo=x", nil).Send()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("non-numeric bound", func(t *testing.T) {
		helper := testutil.NewHTTPHelper(t, setupApp(&MockCompanyService{}))

		resp := helper.NewRequest(http.MethodGet, "/companies?minEmployees=many", nil).Send()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("inverted range", func(t *testing.T) {
		svc := &MockCompanyService{
			findFunc: func(context.Context, *models.CompanyQuery) ([]models.Company, error) {
				return nil, companyErrors.ErrInvalidRange
			},
		}
		helper := testutil.NewHTTPHelper(t, setupApp(svc))

		resp := helper.NewRequest(http.MethodGet, "/companies?minEmployees=5&maxEmployees=1", nil).Send()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Min employees cannot be greater than max", testutil.DecodeJSON(t, resp)["message"])
	})
}

func TestGetCompany(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &MockCompanyService{
			getFunc: func(_ context.Context, handle string) (*models.CompanyDetail, error) {
				return &models.CompanyDetail{
					Company: models.Company{Handle: handle, Name: "C1"},
					Jobs:    []models.CompanyJob{{ID: 1, Title: "j1"}},
				}, nil
			},
		}
		helper := testutil.NewHTTPHelper(t, setupApp(svc))

		resp := helper.NewRequest(http.MethodGet, "/companies/c1", nil).Send()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		company := testutil.DecodeJSON(t, resp)["company"].(map[string]interface{})
		assert.Equal(t, "c1", company["handle"])
		assert.Len(t, company["jobs"], 1)
	})

	t.Run("not found", func(t *testing.T) {
		helper := testutil.NewHTTPHelper(t, setupApp(&MockCompanyService{}))

		resp := helper.NewRequest(http.MethodGet, "/companies/nope", nil).Send()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "No company: nope", testutil.DecodeJSON(t, resp)["message"])
	})
}

func TestUpdateCompany(t *testing.T) {
	t.Run("passes the ordered payload", func(t *testing.T) {
		var keys []string
		svc := &MockCompanyService{
			updateFunc: func(_ context.Context, handle string, p *clause.Payload) (*models.Company, error) {
				keys = p.Keys()
				return &models.Company{Handle: handle, Name: "New"}, nil
			},
		}
		helper := testutil.NewHTTPHelper(t, setupApp(svc))

		resp := helper.NewRequest(http.MethodPatch, "/companies/c1", `{"numEmployees": 5, "name": "New"}`).Send()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{"numEmployees", "name"}, keys)
	})

	t.Run("forbidden handle", func(t *testing.T) {
		helper := testutil.NewHTTPHelper(t, setupApp(&MockCompanyService{}))

		resp := helper.NewRequest(http.MethodPatch, "/companies/c1", `{"handle": "c1-new"}`).Send()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "handle cannot be updated", testutil.DecodeJSON(t, resp)["message"])
	})

	t.Run("empty body is no data", func(t *testing.T) {
		svc := &MockCompanyService{
			updateFunc: func(context.Context, string, *clause.Payload) (*models.Company, error) {
				return nil, clause.ErrNoData
			},
		}
		helper := testutil.NewHTTPHelper(t, setupApp(svc))

		resp := helper.NewRequest(http.MethodPatch, "/companies/c1", `{}`).Send()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := testutil.DecodeJSON(t, resp)
		assert.Equal(t, "No data", body["message"])
		assert.Equal(t, "NO_DATA", body["code"])
	})

	t.Run("nested value rejected", func(t *testing.T) {
		helper := testutil.NewHTTPHelper(t, setupApp(&MockCompanyService{}))

		resp := helper.NewRequest(http.MethodPatch, "/companies/c1", `{"name": {"first": "x"}}`).Send()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_REQUEST", testutil.DecodeJSON(t, resp)["code"])
	})
}

func TestRemoveCompany(t *testing.T) {
	helper := testutil.NewHTTPHelper(t, setupApp(&MockCompanyService{}))

	resp := helper.NewRequest(http.MethodDelete, "/companies/c1", nil).Send()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "c1", testutil.DecodeJSON(t, resp)["deleted"])
}
