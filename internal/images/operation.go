package images

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Operation identifies one Cloudflare Images API call.
type Operation int

const (
	OpImageCreate Operation = iota + 1
	OpImageCreateDirectUpload
	OpImageList
	OpImageGet
	OpImageDownload
	OpImageUpdate
	OpImageDelete
	OpVariantCreate
	OpVariantList
	OpVariantGet
	OpVariantUpdate
	OpVariantDelete
	OpUsageStatisticsGet
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidPathArgs  = errors.New("invalid path arguments")
)

// Payload is a request body or query string before encoding.
type Payload map[string]any

type payloadLocation int

const (
	payloadNone payloadLocation = iota
	payloadQuery
	payloadBody
)

type bodyEncoding int

const (
	encodingNone bodyEncoding = iota
	encodingJSON
	encodingMultipart
)

type descriptor struct {
	name     string
	method   string
	segments func(args []string) []string
	argCount int
	location payloadLocation
	encoding bodyEncoding
	raw      bool
	defaults func(now time.Time) Payload
}

const directUploadExpiry = 30 * time.Minute

// timeNow is swapped in tests to control generated timestamps.
var timeNow = time.Now

var descriptors = map[Operation]descriptor{
	OpImageCreate: {
		name:     "image.create",
		method:   http.MethodPost,
		segments: fixedSegments("images", "v1"),
		location: payloadBody,
		encoding: encodingMultipart,
		defaults: defaultImageCreate,
	},
	OpImageCreateDirectUpload: {
		name:     "image.createDirectUpload",
		method:   http.MethodPost,
		segments: fixedSegments("images", "v2", "direct_upload"),
		location: payloadBody,
		encoding: encodingMultipart,
		defaults: defaultDirectUpload,
	},
	OpImageList: {
		name:     "image.list",
		method:   http.MethodGet,
		segments: fixedSegments("images", "v1"),
		location: payloadQuery,
		defaults: defaultImageList,
	},
	OpImageGet: {
		name:     "image.get",
		method:   http.MethodGet,
		segments: idSegments("images", "v1"),
		argCount: 1,
	},
	OpImageDownload: {
		name:     "image.download",
		method:   http.MethodGet,
		segments: idSegments("images", "v1").then("blob"),
		argCount: 1,
		raw:      true,
	},
	OpImageUpdate: {
		name:     "image.update",
		method:   http.MethodPatch,
		segments: idSegments("images", "v1"),
		argCount: 1,
		location: payloadBody,
		encoding: encodingJSON,
		defaults: defaultImageUpdate,
	},
	OpImageDelete: {
		name:     "image.delete",
		method:   http.MethodDelete,
		segments: idSegments("images", "v1"),
		argCount: 1,
	},
	OpVariantCreate: {
		name:     "variant.create",
		method:   http.MethodPost,
		segments: fixedSegments("images", "v1", "variants"),
		location: payloadBody,
		encoding: encodingJSON,
	},
	OpVariantList: {
		name:     "variant.list",
		method:   http.MethodGet,
		segments: fixedSegments("images", "v1", "variants"),
	},
	OpVariantGet: {
		name:     "variant.get",
		method:   http.MethodGet,
		segments: idSegments("images", "v1", "variants"),
		argCount: 1,
	},
	OpVariantUpdate: {
		name:     "variant.update",
		method:   http.MethodPatch,
		segments: idSegments("images", "v1", "variants"),
		argCount: 1,
		location: payloadBody,
		encoding: encodingJSON,
	},
	OpVariantDelete: {
		name:     "variant.delete",
		method:   http.MethodDelete,
		segments: idSegments("images", "v1", "variants"),
		argCount: 1,
	},
	OpUsageStatisticsGet: {
		name:     "usageStatistics.get",
		method:   http.MethodGet,
		segments: fixedSegments("images", "v1", "stats"),
	},
}

// Operations returns every registered operation in declaration order.
func Operations() []Operation {
	out := make([]Operation, 0, len(descriptors))
	for op := OpImageCreate; op <= OpUsageStatisticsGet; op++ {
		if _, ok := descriptors[op]; ok {
			out = append(out, op)
		}
	}
	return out
}

func (o Operation) String() string {
	if d, ok := descriptors[o]; ok {
		return d.name
	}
	return fmt.Sprintf("operation(%d)", int(o))
}

// ParseOperation maps a dotted identifier such as "image.list" back to its Operation.
func ParseOperation(name string) (Operation, error) {
	needle := strings.TrimSpace(name)
	for op, d := range descriptors {
		if strings.EqualFold(d.name, needle) {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

func lookup(op Operation) (descriptor, error) {
	d, ok := descriptors[op]
	if !ok {
		return descriptor{}, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	return d, nil
}

// URLFor builds the absolute endpoint of op for the given account.
func URLFor(baseURL string, op Operation, accountID string, pathArgs ...string) (string, error) {
	d, err := lookup(op)
	if err != nil {
		return "", err
	}
	if len(pathArgs) != d.argCount {
		return "", fmt.Errorf("%w: %s expects %d, got %d", ErrInvalidPathArgs, op, d.argCount, len(pathArgs))
	}
	for _, arg := range pathArgs {
		if strings.TrimSpace(arg) == "" {
			return "", fmt.Errorf("%w: %s requires a non-empty identifier", ErrInvalidPathArgs, op)
		}
		if hasDotSegment(arg) {
			return "", fmt.Errorf("%w: %s identifier %q contains a dot segment", ErrInvalidPathArgs, op, arg)
		}
	}
	segments := append([]string{"accounts", accountID}, d.segments(pathArgs)...)
	return resolveURL(baseURL, segments, nil)
}

// hasDotSegment reports whether arg would move the request to another
// endpoint once the path is cleaned.
func hasDotSegment(arg string) bool {
	for _, element := range strings.Split(arg, "/") {
		if element == "." || element == ".." {
			return true
		}
	}
	return false
}

// MethodFor returns the HTTP verb of op.
func MethodFor(op Operation) (string, error) {
	d, err := lookup(op)
	if err != nil {
		return "", err
	}
	return d.method, nil
}

// DefaultPayloadFor returns a freshly built default payload, nil for
// operations without one.
func DefaultPayloadFor(op Operation) Payload {
	d, ok := descriptors[op]
	if !ok || d.defaults == nil {
		return nil
	}
	return d.defaults(timeNow())
}

type segmentFunc func(args []string) []string

func fixedSegments(parts ...string) segmentFunc {
	return func([]string) []string {
		return append([]string(nil), parts...)
	}
}

func idSegments(parts ...string) segmentFunc {
	return func(args []string) []string {
		return append(append([]string(nil), parts...), args...)
	}
}

func (f segmentFunc) then(suffix ...string) segmentFunc {
	return func(args []string) []string {
		return append(f(args), suffix...)
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func defaultImageCreate(now time.Time) Payload {
	return Payload{
		"metadata": map[string]any{
			"updatedAt": formatTimestamp(now),
		},
		"requireSignedURLs": false,
	}
}

func defaultDirectUpload(now time.Time) Payload {
	return Payload{
		"expiry": formatTimestamp(now.Add(directUploadExpiry)),
		"metadata": map[string]any{
			"updatedAt": formatTimestamp(now),
		},
		"requireSignedURLs": false,
	}
}

func defaultImageList(time.Time) Payload {
	return Payload{
		"page":     1,
		"per_page": 100,
	}
}

func defaultImageUpdate(now time.Time) Payload {
	return Payload{
		"metadata": map[string]any{
			"updatedAt": formatTimestamp(now),
		},
	}
}

func resolveURL(baseURL string, segments []string, query url.Values) (string, error) {
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}
	resolved := base.JoinPath(segments...)
	if query != nil {
		resolved.RawQuery = query.Encode()
	} else {
		resolved.RawQuery = ""
	}
	return resolved.String(), nil
}
