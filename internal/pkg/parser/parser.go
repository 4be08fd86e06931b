// Package parser decodes request query strings into typed structs.
package parser

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(false)
	d.ZeroEmpty(false)
	return d
}

// DecodeQuery decodes the request's query string into dst using `schema`
// struct tags. Unknown keys and unparsable values are errors.
func DecodeQuery(c *fiber.Ctx, dst interface{}) error {
	values, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return fmt.Errorf("invalid query string: %w", err)
	}
	return Decode(values, dst)
}

// Decode decodes values into dst. Empty values are dropped so that `?name=`
// behaves like an absent filter.
func Decode(values url.Values, dst interface{}) error {
	cleaned := url.Values{}
	for key, vs := range values {
		for _, v := range vs {
			if strings.TrimSpace(v) != "" {
				cleaned.Add(key, v)
			}
		}
	}
	if err := decoder.Decode(dst, cleaned); err != nil {
		return describe(err)
	}
	return nil
}

func describe(err error) error {
	multi, ok := err.(schema.MultiError)
	if !ok {
		return err
	}
	var parts []string
	for key, e := range multi {
		switch e.(type) {
		case schema.UnknownKeyError:
			parts = append(parts, fmt.Sprintf("unknown query parameter %q", key))
		case schema.ConversionError:
			parts = append(parts, fmt.Sprintf("invalid value for %q", key))
		default:
			parts = append(parts, e.Error())
		}
	}
	if len(parts) == 1 {
		return fmt.Errorf("%s", parts[0])
	}
	sort.Strings(parts)
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}
