package services

import (
	"context"

	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/users/models"
)

type UserService interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	FindUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, username string) (*models.UserDetail, error)
	UpdateUser(ctx context.Context, username string, payload *clause.Payload) (*models.User, error)
	RemoveUser(ctx context.Context, username string) error
	ApplyToJob(ctx context.Context, username string, jobID int) error
}
