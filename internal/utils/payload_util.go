package utils

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/samber/lo"
)

// FieldKind is the JSON type a payload field must carry.
type FieldKind int

const (
	KindString FieldKind = iota
	KindInteger
	KindBoolean
)

func (k FieldKind) String() string {
	switch k {
	case KindInteger:
		return "an integer"
	case KindBoolean:
		return "a boolean"
	default:
		return "a string"
	}
}

// FieldRule constrains one payload field. MinLen and MaxLen apply to
// strings, Min to integers. Check runs last on non-null values.
type FieldRule struct {
	Kind     FieldKind
	Nullable bool
	MinLen   int
	MaxLen   int
	Min      *int64
	Check    func(value interface{}) error
}

// NonNegative is a Min bound of zero.
var NonNegative = lo.ToPtr(int64(0))

// ValidatePayload checks every key of payload against rules. Forbidden keys
// and keys without a rule are rejected by name.
func ValidatePayload(payload *clause.Payload, rules map[string]FieldRule, forbidden ...string) error {
	keys := payload.Keys()

	if blocked := lo.Intersect(forbidden, keys); len(blocked) > 0 {
		sort.Strings(blocked)
		return fmt.Errorf("%s cannot be updated", strings.Join(blocked, ", "))
	}

	unknown, _ := lo.Difference(keys, lo.Keys(rules))
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown field: %s", strings.Join(unknown, ", "))
	}

	for _, key := range keys {
		value, _ := payload.Get(key)
		if err := rules[key].validate(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (r FieldRule) validate(key string, value interface{}) error {
	if value == nil {
		if r.Nullable {
			return nil
		}
		return fmt.Errorf("%s cannot be null", key)
	}

	switch r.Kind {
	case KindString:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s must be %s", key, r.Kind)
		}
		if len(s) < r.MinLen {
			return fmt.Errorf("%s must be at least %d characters", key, r.MinLen)
		}
		if r.MaxLen > 0 && len(s) > r.MaxLen {
			return fmt.Errorf("%s cannot exceed %d characters", key, r.MaxLen)
		}
	case KindInteger:
		n, ok := value.(int64)
		if !ok {
			return fmt.Errorf("%s must be %s", key, r.Kind)
		}
		if r.Min != nil && n < *r.Min {
			return fmt.Errorf("%s must be at least %d", key, *r.Min)
		}
	case KindBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%s must be %s", key, r.Kind)
		}
	}

	if r.Check != nil {
		if err := r.Check(value); err != nil {
			return fmt.Errorf("%s %w", key, err)
		}
	}
	return nil
}
