package images

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

// ErrorKind records which rule produced a normalized error.
type ErrorKind int

const (
	// KindUnknown is a failure that matched no known convention.
	KindUnknown ErrorKind = iota
	// KindAPI carries a code from the response's structured errors list.
	KindAPI
	// KindText was parsed from an "ERROR <code>: <message>" body.
	KindText
	// KindKnown is one of the plain messages the API emits without a code.
	KindKnown
)

func (k ErrorKind) String() string {
	switch k {
	case KindAPI:
		return "api"
	case KindText:
		return "text"
	case KindKnown:
		return "known"
	default:
		return "unknown"
	}
}

var errorPattern = regexp.MustCompile(`(?i)^ERROR (\d+): (.+)$`)

// knownMessages are error bodies that do not follow the coded convention.
var knownMessages = []string{
	"variant not found",
}

// ErrorDetail is a code and message pair extracted from an error body.
// Code is empty when the source carries none.
type ErrorDetail struct {
	Code    string
	Message string
}

// Error is the normalized form of every upstream API failure.
type Error struct {
	Kind       ErrorKind
	Code       string
	Message    string
	Operation  Operation
	StatusCode int
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: error %s: %s", e.Operation, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

// Description looks the code up in ErrorCodes.
func (e *Error) Description() string {
	if e == nil || e.Code == "" {
		return ""
	}
	desc, _ := CodeDescription(e.Code)
	return desc
}

// AsError unwraps err to an *Error.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsCode reports whether err is an API error carrying code.
func IsCode(err error, code string) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Code == code
}

// MatchError parses the textual error conventions of the API. It returns
// false when input follows none of them.
func MatchError(input string) (ErrorDetail, bool) {
	trimmed := strings.TrimSpace(input)
	if match := errorPattern.FindStringSubmatch(trimmed); match != nil {
		return ErrorDetail{Code: match[1], Message: match[2]}, true
	}
	for _, known := range knownMessages {
		if strings.EqualFold(trimmed, known) {
			return ErrorDetail{Message: trimmed}, true
		}
	}
	return ErrorDetail{}, false
}

func normalizeError(op Operation, status int, body []byte) *Error {
	out := &Error{Operation: op, StatusCode: status}
	text := bodyText(body)

	var envelope Response[json.RawMessage]
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		first := envelope.Errors[0]
		if code := first.Code.String(); code != "" {
			out.Kind = KindAPI
			out.Code = code
			out.Message = firstNonEmpty(first.Message, descriptionOrEmpty(code), fallbackMessage(status))
			return out
		}
		if first.Message != "" {
			text = first.Message
		}
	}

	if detail, ok := MatchError(text); ok {
		out.Kind = KindText
		if detail.Code == "" {
			out.Kind = KindKnown
		}
		out.Code = detail.Code
		out.Message = detail.Message
		return out
	}

	out.Kind = KindUnknown
	out.Message = firstNonEmpty(text, fallbackMessage(status))
	return out
}

// bodyText returns the body as text, unquoting a bare JSON string.
func bodyText(body []byte) string {
	text := strings.TrimSpace(string(body))
	if strings.HasPrefix(text, `"`) {
		if unquoted, err := strconv.Unquote(text); err == nil {
			return strings.TrimSpace(unquoted)
		}
	}
	return text
}

func descriptionOrEmpty(code string) string {
	desc, _ := CodeDescription(code)
	return desc
}

func fallbackMessage(status int) string {
	if status <= 0 {
		return "request failed"
	}
	return fmt.Sprintf("request failed with status %d %s", status, http.StatusText(status))
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
