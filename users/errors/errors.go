package errors

import (
	"github.com/jessndots/express-jobly/internal/apperrors"
)

// Error codes
const (
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeDuplicateUser      = "DUPLICATE_USERNAME"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodeJobNotFound        = "JOB_NOT_FOUND"
	CodeAlreadyApplied     = "ALREADY_APPLIED"
)

// User service specific errors, matched with errors.Is
var (
	ErrUserNotFound       = apperrors.NotFound(CodeUserNotFound, "user not found")
	ErrDuplicateUser      = apperrors.BadRequest(CodeDuplicateUser, "duplicate username")
	ErrInvalidCredentials = apperrors.New(apperrors.KindUnauthorized, CodeInvalidCredentials, "Invalid username/password")
	ErrWeakPassword       = apperrors.BadRequest(CodeWeakPassword, "Password is not strong enough")
	ErrJobNotFound        = apperrors.NotFound(CodeJobNotFound, "job not found")
	ErrAlreadyApplied     = apperrors.BadRequest(CodeAlreadyApplied, "already applied")
)

func NotFound(username string) error {
	return apperrors.NotFound(CodeUserNotFound, "No user: %s", username)
}

func Duplicate(username string) error {
	return apperrors.BadRequest(CodeDuplicateUser, "Duplicate username: %s", username)
}

func JobNotFound(id int) error {
	return apperrors.NotFound(CodeJobNotFound, "No job: %d", id)
}

func AlreadyApplied(username string, id int) error {
	return apperrors.BadRequest(CodeAlreadyApplied, "%s already applied to job %d", username, id)
}
