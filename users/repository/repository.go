package repository

import (
	"context"

	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/users/models"
)

// UserRepository defines data access for users and their applications.
type UserRepository interface {
	// Create inserts a user with an already hashed password.
	Create(ctx context.Context, user *models.User, passwordHash string) (*models.User, error)

	// Credentials returns the user and stored hash, or a NotFound error.
	Credentials(ctx context.Context, username string) (*models.Credentials, error)

	FindAll(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, username string) (*models.User, error)

	// AppliedJobs returns the ids of jobs username applied to, ordered by id.
	AppliedJobs(ctx context.Context, username string) ([]int, error)

	// Update applies a partial update. A password value must already be hashed.
	Update(ctx context.Context, username string, payload *clause.Payload) (*models.User, error)

	Remove(ctx context.Context, username string) error

	// Apply records an application after checking that both the job and the
	// user exist.
	Apply(ctx context.Context, username string, jobID int) error
}
