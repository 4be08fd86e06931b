package errors

import (
	"github.com/jessndots/express-jobly/internal/apperrors"
)

// Error codes
const (
	CodeCompanyNotFound  = "COMPANY_NOT_FOUND"
	CodeDuplicateCompany = "DUPLICATE_COMPANY"
	CodeInvalidRange     = "INVALID_RANGE"
)

// Company service specific errors, matched with errors.Is
var (
	ErrCompanyNotFound  = apperrors.NotFound(CodeCompanyNotFound, "company not found")
	ErrDuplicateCompany = apperrors.BadRequest(CodeDuplicateCompany, "duplicate company")
	ErrInvalidRange     = apperrors.BadRequest(CodeInvalidRange, "Min employees cannot be greater than max")
)

// NotFound reports a missing company.
func NotFound(handle string) error {
	return apperrors.NotFound(CodeCompanyNotFound, "No company: %s", handle)
}

// Duplicate reports a handle that is already taken.
func Duplicate(handle string) error {
	return apperrors.BadRequest(CodeDuplicateCompany, "Duplicate company: %s", handle)
}
