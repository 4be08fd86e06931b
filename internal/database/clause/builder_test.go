package clause_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jessndots/express-jobly/internal/apperrors"
	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSet(t *testing.T) {
	tests := []struct {
		name   string
		build  func() *clause.Payload
		fields clause.FieldMap
		want   clause.Result
	}{
		{
			name: "mapped fields",
			build: func() *clause.Payload {
				return clause.NewPayload().Set("numEmployees", 5).Set("description", "Description 3")
			},
			fields: clause.NewFieldMap(map[string]string{"numEmployees": "num_employees", "description": "description"}),
			want: clause.Result{
				Text:   `"num_employees"=$1, "description"=$2`,
				Values: []interface{}{5, "Description 3"},
			},
		},
		{
			name: "unmapped key falls back to itself",
			build: func() *clause.Payload {
				return clause.NewPayload().Set("firstName", "Aliya").Set("age", 32)
			},
			fields: clause.NewFieldMap(map[string]string{"firstName": "first_name"}),
			want: clause.Result{
				Text:   `"first_name"=$1, "age"=$2`,
				Values: []interface{}{"Aliya", 32},
			},
		},
		{
			name: "zero field map",
			build: func() *clause.Payload {
				return clause.NewPayload().Set("title", "New").Set("salary", nil)
			},
			want: clause.Result{
				Text:   `"title"=$1, "salary"=$2`,
				Values: []interface{}{"New", nil},
			},
		},
		{
			name: "reset keeps position",
			build: func() *clause.Payload {
				return clause.NewPayload().Set("a", 1).Set("b", 2).Set("a", 3)
			},
			want: clause.Result{
				Text:   `"a"=$1, "b"=$2`,
				Values: []interface{}{3, 2},
			},
		},
		{
			name: "quote in column is escaped",
			build: func() *clause.Payload {
				return clause.NewPayload().Set(`x"y`, true)
			},
			want: clause.Result{
				Text:   `"x""y"=$1`,
				Values: []interface{}{true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := clause.BuildSet(tt.build(), tt.fields)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BuildSet() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildSet_EmptyPayload(t *testing.T) {
	maps := []clause.FieldMap{
		{},
		clause.NewFieldMap(nil),
		clause.NewFieldMap(map[string]string{"numEmployees": "num_employees"}),
	}

	for i, fields := range maps {
		t.Run(fmt.Sprintf("map %d", i), func(t *testing.T) {
			got, err := clause.BuildSet(clause.NewPayload(), fields)
			require.Error(t, err)
			assert.True(t, errors.Is(err, clause.ErrNoData))
			assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
			assert.Empty(t, got.Text)
		})
	}

	_, err := clause.BuildSet(nil, clause.FieldMap{})
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
}

func TestBuildSet_PositionsMatchValues(t *testing.T) {
	p := clause.NewPayload()
	for i := 0; i < 12; i++ {
		p.Set(fmt.Sprintf("f%d", i), i*10)
	}

	got, err := clause.BuildSet(p, clause.FieldMap{})
	require.NoError(t, err)

	fragments := strings.Split(got.Text, ", ")
	require.Len(t, fragments, p.Len())
	require.Len(t, got.Values, p.Len())
	for i, fragment := range fragments {
		assert.Equal(t, fmt.Sprintf(`"f%d"=$%d`, i, i+1), fragment)
		assert.Equal(t, i*10, got.Values[i])
	}
	assert.Equal(t, 13, got.Next())
}

func TestBuildSet_Concurrent(t *testing.T) {
	fields := clause.NewFieldMap(map[string]string{"logoUrl": "logo_url"})
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := clause.NewPayload().Set("logoUrl", fmt.Sprintf("http://%d", i)).Set("name", "n")
			got, err := clause.BuildSet(p, fields)
			assert.NoError(t, err)
			assert.Equal(t, `"logo_url"=$1, "name"=$2`, got.Text)
			assert.Equal(t, fmt.Sprintf("http://%d", i), got.Values[0])
		}(i)
	}
	wg.Wait()
}

func TestNewFieldMap_CopiesInput(t *testing.T) {
	src := map[string]string{"logoUrl": "logo_url"}
	fields := clause.NewFieldMap(src)
	src["logoUrl"] = "changed"
	src["extra"] = "x"

	assert.Equal(t, "logo_url", fields.Column("logoUrl"))
	assert.Equal(t, "extra", fields.Column("extra"))
	assert.Equal(t, 1, fields.Len())
}

func TestResult_Args(t *testing.T) {
	r := clause.Result{Text: `"name"=$1`, Values: []interface{}{"x"}}
	args := r.Args("acme")

	assert.Equal(t, []interface{}{"x", "acme"}, args)
	assert.Equal(t, "$2", clause.Placeholder(r.Next()))
	assert.Len(t, r.Values, 1)
}
