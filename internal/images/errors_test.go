package images

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodesTable(t *testing.T) {
	numeric := regexp.MustCompile(`^\d+$`)
	documented := []string{
		"5400", "5401", "5403", "5404", "5408", "5413", "5415", "5433", "5450", "5453",
		"5455", "5500", "5503", "5540", "5541", "5542", "5543", "5544", "5550", "9422", "10000",
	}
	require.Len(t, ErrorCodes, len(documented))
	for _, code := range documented {
		desc, ok := CodeDescription(code)
		assert.True(t, ok, "missing code %s", code)
		assert.NotEmpty(t, desc, "empty description for %s", code)
	}
	for code := range ErrorCodes {
		assert.Regexp(t, numeric, code)
	}
	_, ok := CodeDescription("1234")
	assert.False(t, ok)
}

func TestMatchError(t *testing.T) {
	tests := []struct {
		input string
		want  ErrorDetail
		ok    bool
	}{
		{"ERROR 5404: Image not found.", ErrorDetail{Code: "5404", Message: "Image not found."}, true},
		{"error 5455: Unsupported image format.", ErrorDetail{Code: "5455", Message: "Unsupported image format."}, true},
		{"  ERROR 5400: Bad Request.\n", ErrorDetail{Code: "5400", Message: "Bad Request."}, true},
		{"variant not found", ErrorDetail{Message: "variant not found"}, true},
		{"something unrelated", ErrorDetail{}, false},
		{"ERROR abc: nope", ErrorDetail{}, false},
		{"", ErrorDetail{}, false},
	}

	for _, tt := range tests {
		got, ok := MatchError(tt.input)
		if ok != tt.ok {
			t.Fatalf("MatchError(%q): expected ok=%v, got %v", tt.input, tt.ok, ok)
		}
		if got != tt.want {
			t.Fatalf("MatchError(%q): expected %+v, got %+v", tt.input, tt.want, got)
		}
	}
}

func TestNormalizeError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    ErrorKind
		code    string
		message string
	}{
		{
			name:    "structured code wins",
			status:  http.StatusForbidden,
			body:    `{"success":false,"errors":[{"code":5403,"message":"ERROR 9999: ignored"}],"messages":[],"result":null}`,
			kind:    KindAPI,
			code:    "5403",
			message: "ERROR 9999: ignored",
		},
		{
			name:    "string code",
			status:  http.StatusNotFound,
			body:    `{"success":false,"errors":[{"code":"5404","message":"Image not found"}]}`,
			kind:    KindAPI,
			code:    "5404",
			message: "Image not found",
		},
		{
			name:    "structured code without message uses description",
			status:  http.StatusBadRequest,
			body:    `{"success":false,"errors":[{"code":5455}]}`,
			kind:    KindAPI,
			code:    "5455",
			message: "Unsupported image format.",
		},
		{
			name:    "text convention",
			status:  http.StatusNotFound,
			body:    "ERROR 5404: Image not found.",
			kind:    KindText,
			code:    "5404",
			message: "Image not found.",
		},
		{
			name:    "quoted text convention",
			status:  http.StatusNotFound,
			body:    `"ERROR 5404: Image not found."`,
			kind:    KindText,
			code:    "5404",
			message: "Image not found.",
		},
		{
			name:    "text inside errors list",
			status:  http.StatusBadRequest,
			body:    `{"success":false,"errors":[{"message":"ERROR 5400: Bad Request."}]}`,
			kind:    KindText,
			code:    "5400",
			message: "Bad Request.",
		},
		{
			name:    "known message",
			status:  http.StatusNotFound,
			body:    "variant not found",
			kind:    KindKnown,
			message: "variant not found",
		},
		{
			name:    "plain body",
			status:  http.StatusBadGateway,
			body:    "upstream exploded",
			kind:    KindUnknown,
			message: "upstream exploded",
		},
		{
			name:    "empty body",
			status:  http.StatusServiceUnavailable,
			body:    "",
			kind:    KindUnknown,
			message: "request failed with status 503 Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeError(OpImageGet, tt.status, []byte(tt.body))
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.message, got.Message)
			assert.Equal(t, OpImageGet, got.Operation)
			assert.Equal(t, tt.status, got.StatusCode)
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	apiErr := &Error{Kind: KindAPI, Code: "5404", Message: "Image not found", Operation: OpImageGet, StatusCode: 404}
	wrapped := fmt.Errorf("lookup: %w", apiErr)

	assert.True(t, IsCode(wrapped, "5404"))
	assert.False(t, IsCode(wrapped, "5403"))
	assert.False(t, IsCode(errors.New("boom"), "5404"))
	assert.Equal(t, "Image not found.", apiErr.Description())
	assert.Equal(t, "image.get: error 5404: Image not found", apiErr.Error())

	unknown := &Error{Message: "boom", Operation: OpVariantList}
	assert.Equal(t, "variant.list: boom", unknown.Error())
	assert.Empty(t, unknown.Description())
}
