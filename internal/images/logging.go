package images

import (
	"net/http"
	"strings"
)

// RequestLog summarizes one request for debugging views.
type RequestLog struct {
	Method  string
	URL     string
	Headers map[string][]string
	Status  int
}

type RequestLogger func(RequestLog)

const redacted = "REDACTED"

func (c *Client) logRequest(req *http.Request, resp *http.Response) {
	if c.requestLogger == nil {
		return
	}
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	c.requestLogger(RequestLog{
		Method:  req.Method,
		URL:     req.URL.String(),
		Headers: cloneHeader(req.Header),
		Status:  status,
	})
}

// cloneHeader copies header, hiding credentials.
func cloneHeader(header http.Header) map[string][]string {
	if len(header) == 0 {
		return nil
	}
	out := make(map[string][]string, len(header))
	for key, values := range header {
		copied := make([]string, len(values))
		if strings.EqualFold(key, "Authorization") {
			for i := range copied {
				copied[i] = redacted
			}
		} else {
			copy(copied, values)
		}
		out[key] = copied
	}
	return out
}
