package validation

import (
	"fmt"

	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/internal/utils"
	"github.com/jessndots/express-jobly/users/models"
)

const (
	usernameMaxLength = 30
	nameMaxLength     = 30
	passwordMinLength = 5
	passwordMaxLength = 20
	emailMaxLength    = 60
)

var updateRules = map[string]utils.FieldRule{
	"firstName": {Kind: utils.KindString, MinLen: 1, MaxLen: nameMaxLength},
	"lastName":  {Kind: utils.KindString, MinLen: 1, MaxLen: nameMaxLength},
	"password":  {Kind: utils.KindString, MinLen: passwordMinLength, MaxLen: passwordMaxLength},
	"email":     {Kind: utils.KindString, MaxLen: emailMaxLength, Check: checkEmail},
}

var adminUpdateRules = func() map[string]utils.FieldRule {
	rules := make(map[string]utils.FieldRule, len(updateRules)+1)
	for k, v := range updateRules {
		rules[k] = v
	}
	rules["isAdmin"] = utils.FieldRule{Kind: utils.KindBoolean}
	return rules
}()

func ValidateRegisterRequest(req *models.RegisterRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if err := lengthBetween("username", req.Username, 1, usernameMaxLength); err != nil {
		return err
	}
	if err := lengthBetween("password", req.Password, passwordMinLength, passwordMaxLength); err != nil {
		return err
	}
	if err := lengthBetween("firstName", req.FirstName, 1, nameMaxLength); err != nil {
		return err
	}
	if err := lengthBetween("lastName", req.LastName, 1, nameMaxLength); err != nil {
		return err
	}
	if len(req.Email) > emailMaxLength || !utils.IsValidEmail(req.Email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

func ValidateLoginRequest(req *models.LoginRequest) error {
	if req == nil || req.Username == "" || req.Password == "" {
		return fmt.Errorf("username and password are required")
	}
	return nil
}

// ValidateUpdateUserPayload checks a partial user update. isAdmin may only
// be changed by admins and username never.
func ValidateUpdateUserPayload(payload *clause.Payload, byAdmin bool) error {
	rules := updateRules
	if byAdmin {
		rules = adminUpdateRules
	}
	return utils.ValidatePayload(payload, rules, "username")
}

func lengthBetween(field, value string, min, max int) error {
	if len(value) < min || len(value) > max {
		return fmt.Errorf("%s must be between %d and %d characters", field, min, max)
	}
	return nil
}

func checkEmail(v interface{}) error {
	if !utils.IsValidEmail(v.(string)) {
		return fmt.Errorf("must be a valid email")
	}
	return nil
}
