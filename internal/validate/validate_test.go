package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionValid(t *testing.T) {
	for _, q := range []string{"a", "What is 2+2?", strings.Repeat("x", MaxQuestionLen), strings.Repeat("ж", MaxQuestionLen)} {
		body := []byte(`{"question":"` + q + `"}`)
		req, err := Question(body)
		require.NoError(t, err)
		assert.Equal(t, q, req.Question)
	}
}

func TestQuestionInvalid(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"empty body", ``, "question"},
		{"empty object", `{}`, "question"},
		{"null", `{"question":null}`, "question"},
		{"empty string", `{"question":""}`, "question"},
		{"not a string", `{"question":42}`, "question"},
		{"too long", `{"question":"` + strings.Repeat("x", MaxQuestionLen+1) + `"}`, "question"},
		{"not json", `question=hi`, "body"},
		{"array", `["hi"]`, "body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Question([]byte(tt.body))
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Details(), tt.field)
		})
	}
}

func TestPaginationDefaults(t *testing.T) {
	p, err := Pagination(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)

	p, err = Pagination(map[string]string{"page": "3", "per_page": "100"})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.PerPage)
}

func TestPaginationInvalid(t *testing.T) {
	tests := []struct {
		name   string
		query  map[string]string
		fields []string
	}{
		{"page zero", map[string]string{"page": "0"}, []string{"page"}},
		{"page negative", map[string]string{"page": "-2"}, []string{"page"}},
		{"page text", map[string]string{"page": "two"}, []string{"page"}},
		{"per_page zero", map[string]string{"per_page": "0"}, []string{"per_page"}},
		{"per_page too big", map[string]string{"per_page": "101"}, []string{"per_page"}},
		{"both", map[string]string{"page": "0", "per_page": "500"}, []string{"page", "per_page"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Pagination(tt.query)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			details := verr.Details()
			assert.Len(t, details, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, details, f)
			}
		})
	}
}
