package images

import (
	"encoding/json"
	"time"
)

// Response is the envelope every JSON endpoint returns.
type Response[T any] struct {
	Result     T                 `json:"result"`
	ResultInfo *ResultInfo       `json:"result_info,omitempty"`
	Success    bool              `json:"success"`
	Errors     []ResponseMessage `json:"errors"`
	Messages   []ResponseMessage `json:"messages"`
}

// ResponseMessage is one entry of the errors or messages list. The API
// sends codes as numbers but some proxies turn them into strings.
type ResponseMessage struct {
	Code    json.Number `json:"code,omitempty"`
	Message string      `json:"message"`
}

type ResultInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Count      int `json:"count"`
	TotalCount int `json:"total_count"`
}

type Image struct {
	ID                string         `json:"id"`
	Filename          string         `json:"filename"`
	Uploaded          time.Time      `json:"uploaded"`
	RequireSignedURLs bool           `json:"requireSignedURLs"`
	Variants          []string       `json:"variants"`
	Meta              map[string]any `json:"meta,omitempty"`
}

type ImageList struct {
	Images []Image `json:"images"`
}

// DirectUpload is a one-time upload URL reserved for a future image.
type DirectUpload struct {
	ID        string `json:"id"`
	UploadURL string `json:"uploadURL"`
}

// VariantOptions describe how a variant resizes the source image.
type VariantOptions struct {
	// Fit is one of scale-down, contain, cover, crop or pad.
	Fit string `json:"fit,omitempty"`
	// Metadata is one of keep, copyright or none.
	Metadata string `json:"metadata,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

type Variant struct {
	ID                     string         `json:"id"`
	Options                VariantOptions `json:"options"`
	NeverRequireSignedURLs bool           `json:"neverRequireSignedURLs,omitempty"`
}

type VariantList struct {
	Variants map[string]Variant `json:"variants"`
}

type VariantResult struct {
	Variant Variant `json:"variant"`
}

type StatsCount struct {
	Allowed int `json:"allowed"`
	Current int `json:"current"`
}

type Stats struct {
	Count StatsCount `json:"count"`
}

// Requests. Zero fields are omitted so the operation defaults apply.

type CreateImageRequest struct {
	ID                string         `json:"id,omitempty"`
	FileName          string         `json:"fileName,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
	RequireSignedURLs *bool          `json:"requireSignedURLs,omitempty"`
}

type CreateDirectUploadRequest struct {
	ID                string         `json:"id,omitempty"`
	Expiry            *time.Time     `json:"expiry,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
	RequireSignedURLs *bool          `json:"requireSignedURLs,omitempty"`
}

type ListImagesRequest struct {
	Page    int `json:"page,omitempty"`
	PerPage int `json:"per_page,omitempty"`
}

type UpdateImageRequest struct {
	Metadata          map[string]any `json:"metadata,omitempty"`
	RequireSignedURLs *bool          `json:"requireSignedURLs,omitempty"`
}

type CreateVariantRequest struct {
	ID                     string         `json:"id"`
	Options                VariantOptions `json:"options"`
	NeverRequireSignedURLs *bool          `json:"neverRequireSignedURLs,omitempty"`
}

type UpdateVariantRequest struct {
	Options                VariantOptions `json:"options"`
	NeverRequireSignedURLs *bool          `json:"neverRequireSignedURLs,omitempty"`
}

// Bool returns a pointer to v for the optional request flags.
func Bool(v bool) *bool {
	return &v
}

// FilePart is the file field of a multipart upload.
type FilePart struct {
	Name string
	Data []byte
}
