package images

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/samber/lo"
)

// Request carries the caller side of an operation. Query and Body are
// merged over the operation defaults according to where it sends its payload.
type Request struct {
	PathArgs []string
	Query    Payload
	Headers  map[string]string
	Body     Payload
}

// multipartOrder fixes the position of the well-known upload fields.
var multipartOrder = []string{"id", "file", "fileName", "url", "metadata", "requireSignedURLs", "expiry"}

// Execute runs op with one HTTP request. JSON responses are decoded into
// out; raw responses are copied into a *[]byte or io.Writer. API failures
// come back as *Error, transport failures as returned by the HTTP client.
func (c *Client) Execute(ctx context.Context, op Operation, req Request, out any) error {
	d, err := lookup(op)
	if err != nil {
		return err
	}
	endpoint, err := URLFor(c.baseURL, op, c.creds.AccountID, req.PathArgs...)
	if err != nil {
		return err
	}

	query, body := req.Query, req.Body
	switch d.location {
	case payloadQuery:
		query = mergePayload(DefaultPayloadFor(op), query)
	case payloadBody:
		body = mergePayload(DefaultPayloadFor(op), body)
	}

	if values := encodeQuery(query); len(values) > 0 {
		endpoint, err = withQuery(endpoint, values)
		if err != nil {
			return err
		}
	}

	var reader io.Reader
	contentType := ""
	if !IsBlank(body) {
		switch d.encoding {
		case encodingMultipart:
			buf, ct, err := encodeMultipart(body)
			if err != nil {
				return fmt.Errorf("encode %s body: %w", op, err)
			}
			reader, contentType = buf, ct
		default:
			data, err := json.Marshal(body)
			if err != nil {
				return fmt.Errorf("encode %s body: %w", op, err)
			}
			reader, contentType = bytes.NewReader(data), "application/json"
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, d.method, endpoint, reader)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.creds.APIKey)
	if d.raw {
		httpReq.Header.Set("Accept", "*/*")
	} else {
		httpReq.Header.Set("Accept", "application/json")
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(httpReq)
	c.logRequest(httpReq, resp)
	if err != nil {
		c.logError(op, err)
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(op, err)
		return err
	}

	if resp.StatusCode >= 300 {
		apiErr := normalizeError(op, resp.StatusCode, data)
		c.logError(op, apiErr)
		return apiErr
	}

	if d.raw {
		if err := copyRaw(out, data); err != nil {
			c.logError(op, err)
			return err
		}
		c.logResponse(op, resp.StatusCode, fmt.Sprintf("%d bytes", len(data)))
		return nil
	}

	if failed := unsuccessfulEnvelope(data); failed {
		apiErr := normalizeError(op, resp.StatusCode, data)
		c.logError(op, apiErr)
		return apiErr
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			err = fmt.Errorf("decode %s response: %w", op, err)
			c.logError(op, err)
			return err
		}
	}
	c.logResponse(op, resp.StatusCode, string(data))
	return nil
}

// mergePayload overlays the non-blank caller values on defaults. Nested
// values are replaced, not merged.
func mergePayload(defaults, caller Payload) Payload {
	kept := lo.OmitBy(map[string]any(caller), func(_ string, value any) bool {
		return IsBlank(value)
	})
	merged := lo.Assign(map[string]any(defaults), kept)
	if len(merged) == 0 {
		return nil
	}
	return Payload(merged)
}

// toPayload turns a request struct into a Payload through its JSON tags.
func toPayload(v any) (Payload, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out Payload
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeQuery(payload Payload) url.Values {
	if len(payload) == 0 {
		return nil
	}
	values := url.Values{}
	for _, key := range sortedKeys(payload) {
		value := payload[key]
		if IsBlank(value) {
			continue
		}
		if list, ok := value.([]string); ok {
			values[key] = append([]string(nil), list...)
			continue
		}
		text, err := formatValue(value)
		if err != nil {
			continue
		}
		values.Set(key, text)
	}
	return values
}

func withQuery(endpoint string, values url.Values) (string, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	parsed.RawQuery = values.Encode()
	return parsed.String(), nil
}

func encodeMultipart(payload Payload) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	keys := append(lo.Filter(multipartOrder, func(key string, _ int) bool {
		_, ok := payload[key]
		return ok
	}), lo.Without(sortedKeys(payload), multipartOrder...)...)

	for _, key := range keys {
		value := payload[key]
		if IsBlank(value) {
			continue
		}
		if err := writeField(writer, key, value); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buf, writer.FormDataContentType(), nil
}

func writeField(writer *multipart.Writer, key string, value any) error {
	switch v := value.(type) {
	case FilePart:
		part, err := writer.CreateFormFile(key, v.Name)
		if err != nil {
			return err
		}
		_, err = part.Write(v.Data)
		return err
	case *FilePart:
		return writeField(writer, key, *v)
	case map[string]any, Payload:
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return writer.WriteField(key, string(data))
	}
	text, err := formatValue(value)
	if err != nil {
		return err
	}
	return writer.WriteField(key, text)
}

// formatValue renders a scalar the way form and query fields expect it.
func formatValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case *bool:
		return strconv.FormatBool(*v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case time.Time:
		return formatTimestamp(v), nil
	case *time.Time:
		return formatTimestamp(*v), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func sortedKeys(payload Payload) []string {
	keys := lo.Keys(payload)
	slices.Sort(keys)
	return keys
}

func unsuccessfulEnvelope(data []byte) bool {
	var envelope struct {
		Success *bool             `json:"success"`
		Errors  []json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return false
	}
	return envelope.Success != nil && !*envelope.Success && len(envelope.Errors) > 0
}

func copyRaw(out any, data []byte) error {
	switch dst := out.(type) {
	case nil:
		return nil
	case *[]byte:
		*dst = data
		return nil
	case io.Writer:
		_, err := dst.Write(data)
		return err
	}
	return fmt.Errorf("raw response needs *[]byte or io.Writer, got %T", out)
}
