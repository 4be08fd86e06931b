package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/internal/utils"
	"github.com/jessndots/express-jobly/jobs/models"
)

const titleMaxLength = 255

var updateRules = map[string]utils.FieldRule{
	"title":  {Kind: utils.KindString, MinLen: 1, MaxLen: titleMaxLength},
	"salary": {Kind: utils.KindInteger, Min: utils.NonNegative, Nullable: true},
	"equity": {Kind: utils.KindString, Nullable: true, Check: func(v interface{}) error {
		return ValidateEquity(v.(string))
	}},
}

func ValidateCreateJobRequest(req *models.CreateJobRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(req.Title) > titleMaxLength {
		return fmt.Errorf("title cannot exceed %d characters", titleMaxLength)
	}
	if req.Salary != nil && *req.Salary < 0 {
		return fmt.Errorf("salary must be at least 0")
	}
	if req.Equity != nil {
		if err := ValidateEquity(*req.Equity); err != nil {
			return fmt.Errorf("equity %w", err)
		}
	}
	if strings.TrimSpace(req.CompanyHandle) == "" {
		return fmt.Errorf("companyHandle is required")
	}
	return nil
}

// ValidateEquity accepts a decimal string between 0 and 1 inclusive.
func ValidateEquity(equity string) error {
	f, err := strconv.ParseFloat(equity, 64)
	if err != nil {
		return fmt.Errorf("must be a numeric string")
	}
	if f < 0 || f > 1 {
		return fmt.Errorf("must be between 0 and 1")
	}
	return nil
}

// ValidateUpdateJobPayload rejects id, companyHandle, unknown fields, and
// values of the wrong type.
func ValidateUpdateJobPayload(payload *clause.Payload) error {
	return utils.ValidatePayload(payload, updateRules, "id", "companyHandle")
}

func ValidateJobQuery(query *models.JobQuery) error {
	if query != nil && query.MinSalary != nil && *query.MinSalary < 0 {
		return fmt.Errorf("minSalary must be at least 0")
	}
	return nil
}
