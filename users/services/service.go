// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"fmt"

	gopass "github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/jessndots/express-jobly/internal/apperrors"
	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/internal/pkg/log"
	"github.com/jessndots/express-jobly/internal/platform/config"
	userErrors "github.com/jessndots/express-jobly/users/errors"
	"github.com/jessndots/express-jobly/users/models"
	"github.com/jessndots/express-jobly/users/repository"
)

type Service struct {
	repo     repository.UserRepository
	security config.SecurityConfig
}

var _ UserService = (*Service)(nil)

func NewService(repo repository.UserRepository, security config.SecurityConfig) *Service {
	return &Service{repo: repo, security: security}
}

// Register stores a new user with a hashed password.
func (s *Service) Register(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	hash, err := s.hashPassword(req.Password, req.Username, req.FirstName, req.LastName, req.Email)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, &models.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	}, hash)
	if err != nil {
		return nil, err
	}

	log.InfoWithContext(ctx, "Registered user %s", user.Username)
	return user, nil
}

// Authenticate checks a username/password pair. Unknown users and wrong
// passwords fail the same way.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	creds, err := s.repo.Credentials(ctx, username)
	if err != nil {
		if errors.Is(err, userErrors.ErrUserNotFound) {
			return nil, userErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.Password), []byte(password)); err != nil {
		log.WarnWithContext(ctx, "Failed login for %s", username)
		return nil, userErrors.ErrInvalidCredentials
	}
	return &creds.User, nil
}

func (s *Service) FindUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// GetUser loads the user and the job ids they applied to concurrently.
func (s *Service) GetUser(ctx context.Context, username string) (*models.UserDetail, error) {
	var (
		user   *models.User
		jobs   []int
		getErr error
		g      errgroup.Group
	)
	g.Go(func() error {
		user, getErr = s.repo.Get(ctx, username)
		return getErr
	})
	g.Go(func() error {
		var err error
		jobs, err = s.repo.AppliedJobs(ctx, username)
		return err
	})
	if err := g.Wait(); err != nil {
		if getErr != nil {
			return nil, getErr
		}
		return nil, err
	}
	return &models.UserDetail{User: *user, Jobs: jobs}, nil
}

// UpdateUser applies a partial update. A password is checked and hashed in
// place, keeping its position in the payload.
func (s *Service) UpdateUser(ctx context.Context, username string, payload *clause.Payload) (*models.User, error) {
	if v, ok := payload.Get("password"); ok {
		password, _ := v.(string)
		hash, err := s.hashPassword(password, username)
		if err != nil {
			return nil, err
		}
		payload.Set("password", hash)
	}
	return s.repo.Update(ctx, username, payload)
}

func (s *Service) RemoveUser(ctx context.Context, username string) error {
	if err := s.repo.Remove(ctx, username); err != nil {
		return err
	}
	log.InfoWithContext(ctx, "Removed user %s", username)
	return nil
}

func (s *Service) ApplyToJob(ctx context.Context, username string, jobID int) error {
	return s.repo.Apply(ctx, username, jobID)
}

// hashPassword rejects passwords zxcvbn scores below the configured minimum,
// then hashes with the configured bcrypt work factor. userInputs are the
// user's own details, which zxcvbn penalises.
func (s *Service) hashPassword(password string, userInputs ...string) (string, error) {
	if gopass.PasswordStrength(password, userInputs).Score < s.security.MinPasswordScore {
		return "", userErrors.ErrWeakPassword
	}

	cost := s.security.BcryptWorkFactor
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", apperrors.Internal("failed to hash password", fmt.Errorf("bcrypt: %w", err))
	}
	return string(hash), nil
}
