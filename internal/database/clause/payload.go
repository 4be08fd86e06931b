// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package clause

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Payload is an insertion-ordered set of field values for a partial update.
// Values are scalars: string, int64, float64, bool, or nil for SQL NULL.
type Payload struct {
	keys   []string
	values map[string]interface{}
}

// NewPayload returns an empty payload.
func NewPayload() *Payload {
	return &Payload{values: make(map[string]interface{})}
}

// Set assigns value to field. Re-setting an existing field keeps its
// original position.
func (p *Payload) Set(field string, value interface{}) *Payload {
	if p.values == nil {
		p.values = make(map[string]interface{})
	}
	if _, exists := p.values[field]; !exists {
		p.keys = append(p.keys, field)
	}
	p.values[field] = value
	return p
}

// Get returns the value for field and whether it is present.
func (p *Payload) Get(field string) (interface{}, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[field]
	return v, ok
}

// Has reports whether field is present.
func (p *Payload) Has(field string) bool {
	_, ok := p.Get(field)
	return ok
}

// Delete removes field, preserving the order of the remaining fields.
func (p *Payload) Delete(field string) {
	if p == nil {
		return
	}
	if _, ok := p.values[field]; !ok {
		return
	}
	delete(p.values, field)
	for i, k := range p.keys {
		if k == field {
			p.keys = append(p.keys[:i:i], p.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the fields in insertion order.
func (p *Payload) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of fields.
func (p *Payload) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// UnmarshalJSON decodes a flat JSON object, keeping the document's key
// order. Integral numbers decode to int64 and the rest to float64. Nested
// objects and arrays are rejected. A repeated key keeps its first position
// and its last value.
func (p *Payload) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("payload must be a JSON object")
	}

	out := NewPayload()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		field, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}

		tok, err = dec.Token()
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case json.Delim:
			return fmt.Errorf("field %q: nested values are not supported", field)
		case json.Number:
			n, err := numberValue(v)
			if err != nil {
				return fmt.Errorf("field %q: %w", field, err)
			}
			out.Set(field, n)
		default:
			out.Set(field, v)
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = *out
	return nil
}

// MarshalJSON encodes the payload as a JSON object in insertion order.
func (p *Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range p.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.values[field])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func numberValue(n json.Number) (interface{}, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number %s", n)
	}
	return f, nil
}
