package errors

import (
	"github.com/jessndots/express-jobly/internal/apperrors"
)

// Error codes
const (
	CodeJobNotFound    = "JOB_NOT_FOUND"
	CodeDuplicateJob   = "DUPLICATE_JOB"
	CodeUnknownCompany = "UNKNOWN_COMPANY"
)

// Job service specific errors, matched with errors.Is
var (
	ErrJobNotFound    = apperrors.NotFound(CodeJobNotFound, "job not found")
	ErrDuplicateJob   = apperrors.BadRequest(CodeDuplicateJob, "duplicate job")
	ErrUnknownCompany = apperrors.BadRequest(CodeUnknownCompany, "unknown company")
)

func NotFound(id int) error {
	return apperrors.NotFound(CodeJobNotFound, "No job: %d", id)
}

func Duplicate(title, handle string) error {
	return apperrors.BadRequest(CodeDuplicateJob, "Duplicate job: %s at %s", title, handle)
}

// UnknownCompany reports a job posted for a company that does not exist.
func UnknownCompany(handle string) error {
	return apperrors.BadRequest(CodeUnknownCompany, "No company: %s", handle)
}
