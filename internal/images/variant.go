package images

import (
	"context"
	"encoding/json"
)

func (c *Client) CreateVariant(ctx context.Context, req CreateVariantRequest) (*Response[VariantResult], error) {
	body, err := toPayload(req)
	if err != nil {
		return nil, err
	}
	var out Response[VariantResult]
	if err := c.Execute(ctx, OpVariantCreate, Request{Body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListVariants(ctx context.Context) (*Response[VariantList], error) {
	var out Response[VariantList]
	if err := c.Execute(ctx, OpVariantList, Request{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetVariant(ctx context.Context, id string) (*Response[VariantResult], error) {
	var out Response[VariantResult]
	if err := c.Execute(ctx, OpVariantGet, Request{PathArgs: []string{id}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateVariant(ctx context.Context, id string, req UpdateVariantRequest) (*Response[VariantResult], error) {
	body, err := toPayload(req)
	if err != nil {
		return nil, err
	}
	var out Response[VariantResult]
	if err := c.Execute(ctx, OpVariantUpdate, Request{PathArgs: []string{id}, Body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteVariant(ctx context.Context, id string) (*Response[json.RawMessage], error) {
	var out Response[json.RawMessage]
	if err := c.Execute(ctx, OpVariantDelete, Request{PathArgs: []string{id}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStats returns the stored image count and the account allowance.
func (c *Client) GetStats(ctx context.Context) (*Response[Stats], error) {
	var out Response[Stats]
	if err := c.Execute(ctx, OpUsageStatisticsGet, Request{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
