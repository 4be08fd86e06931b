package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jessndots/express-jobly/companies/models"
	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/internal/utils"
)

const (
	handleMaxLength = 25
	nameMaxLength   = 255
)

// handles are lower-case slugs
var handlePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var updateRules = map[string]utils.FieldRule{
	"name":         {Kind: utils.KindString, MinLen: 1, MaxLen: nameMaxLength},
	"description":  {Kind: utils.KindString},
	"numEmployees": {Kind: utils.KindInteger, Min: utils.NonNegative, Nullable: true},
	"logoUrl":      {Kind: utils.KindString, Nullable: true, Check: checkURL},
}

func ValidateCreateCompanyRequest(req *models.CreateCompanyRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if strings.TrimSpace(req.Handle) == "" {
		return fmt.Errorf("handle is required")
	}
	if len(req.Handle) > handleMaxLength {
		return fmt.Errorf("handle cannot exceed %d characters", handleMaxLength)
	}
	if !handlePattern.MatchString(req.Handle) {
		return fmt.Errorf("handle may only contain lower-case letters, digits and hyphens")
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(req.Name) > nameMaxLength {
		return fmt.Errorf("name cannot exceed %d characters", nameMaxLength)
	}

	if req.NumEmployees != nil && *req.NumEmployees < 0 {
		return fmt.Errorf("numEmployees must be at least 0")
	}

	if req.LogoURL != nil && !utils.IsValidURL(*req.LogoURL) {
		return fmt.Errorf("invalid logoUrl format")
	}

	return nil
}

// ValidateUpdateCompanyPayload rejects the handle, unknown fields, and
// values of the wrong type.
func ValidateUpdateCompanyPayload(payload *clause.Payload) error {
	return utils.ValidatePayload(payload, updateRules, "handle")
}

func ValidateCompanyQuery(query *models.CompanyQuery) error {
	if query == nil {
		return nil
	}
	if query.MinEmployees != nil && *query.MinEmployees < 0 {
		return fmt.Errorf("minEmployees must be at least 0")
	}
	if query.MaxEmployees != nil && *query.MaxEmployees < 0 {
		return fmt.Errorf("maxEmployees must be at least 0")
	}
	return nil
}

func checkURL(v interface{}) error {
	if !utils.IsValidURL(v.(string)) {
		return fmt.Errorf("must be a valid URL")
	}
	return nil
}
