package images

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultUploadName = "image"

// CreateImageFromBuffer uploads data as a new image.
func (c *Client) CreateImageFromBuffer(ctx context.Context, req CreateImageRequest, data []byte) (*Response[Image], error) {
	name := strings.TrimSpace(req.FileName)
	if name == "" {
		name = defaultUploadName
	}
	return c.createImage(ctx, req, Payload{
		"file": FilePart{Name: name, Data: data},
	}, "fileName")
}

// CreateImageFromFile uploads the file at path. The file name defaults to
// the base name of path.
func (c *Client) CreateImageFromFile(ctx context.Context, req CreateImageRequest, path string) (*Response[Image], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if strings.TrimSpace(req.FileName) == "" {
		req.FileName = filepath.Base(path)
	}
	return c.CreateImageFromBuffer(ctx, req, data)
}

// CreateImageFromURL asks the service to fetch the image at imageURL.
func (c *Client) CreateImageFromURL(ctx context.Context, req CreateImageRequest, imageURL string) (*Response[Image], error) {
	return c.createImage(ctx, req, Payload{"url": imageURL})
}

func (c *Client) createImage(ctx context.Context, req CreateImageRequest, extra Payload, drop ...string) (*Response[Image], error) {
	body, err := toPayload(req)
	if err != nil {
		return nil, err
	}
	if body == nil {
		body = Payload{}
	}
	for key, value := range extra {
		body[key] = value
	}
	for _, key := range drop {
		delete(body, key)
	}
	var out Response[Image]
	if err := c.Execute(ctx, OpImageCreate, Request{Body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDirectUpload reserves a one-time upload URL.
func (c *Client) CreateDirectUpload(ctx context.Context, req CreateDirectUploadRequest) (*Response[DirectUpload], error) {
	body, err := toPayload(req)
	if err != nil {
		return nil, err
	}
	var out Response[DirectUpload]
	if err := c.Execute(ctx, OpImageCreateDirectUpload, Request{Body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListImages(ctx context.Context, req ListImagesRequest) (*Response[ImageList], error) {
	query, err := toPayload(req)
	if err != nil {
		return nil, err
	}
	var out Response[ImageList]
	if err := c.Execute(ctx, OpImageList, Request{Query: query}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetImage(ctx context.Context, id string) (*Response[Image], error) {
	var out Response[Image]
	if err := c.Execute(ctx, OpImageGet, Request{PathArgs: []string{id}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadImage returns the original bytes of an image.
func (c *Client) DownloadImage(ctx context.Context, id string) ([]byte, error) {
	var data []byte
	if err := c.Execute(ctx, OpImageDownload, Request{PathArgs: []string{id}}, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) UpdateImage(ctx context.Context, id string, req UpdateImageRequest) (*Response[Image], error) {
	body, err := toPayload(req)
	if err != nil {
		return nil, err
	}
	var out Response[Image]
	if err := c.Execute(ctx, OpImageUpdate, Request{PathArgs: []string{id}, Body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteImage(ctx context.Context, id string) (*Response[json.RawMessage], error) {
	var out Response[json.RawMessage]
	if err := c.Execute(ctx, OpImageDelete, Request{PathArgs: []string{id}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
