package client

import (
	"context"
	"fmt"

	"github.com/mwatts/anytype-go/pkg/model"
)

// ListTypes lists the types defined in a space.
func (c *Client) ListTypes(ctx context.Context, spaceID string, limit, offset int) (*model.Page[model.Type], error) {
	const op = "types.list"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Page[model.Type]
	path := fmt.Sprintf("/v1/spaces/%s/types?limit=%d&offset=%d", spaceID, limit, offset)
	if err := c.Get(ctx, op, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetType retrieves a single type.
func (c *Client) GetType(ctx context.Context, spaceID, typeID string) (*model.Type, error) {
	const op = "types.get"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Type
	if err := c.Get(ctx, op, fmt.Sprintf("/v1/spaces/%s/types/%s", spaceID, typeID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTypeRequest is the request payload for types.create.
type CreateTypeRequest struct {
	Name   string     `json:"name"`
	Key    string     `json:"key"`
	Icon   model.Icon `json:"icon"`
	Layout string     `json:"layout,omitempty"`
}

// CreateType creates a new type in a space.
func (c *Client) CreateType(ctx context.Context, spaceID string, req CreateTypeRequest) (*model.Type, error) {
	const op = "types.create"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Type
	if err := c.Post(ctx, op, fmt.Sprintf("/v1/spaces/%s/types", spaceID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateType applies a partial patch to an existing type.
func (c *Client) UpdateType(ctx context.Context, spaceID, typeID string, patch map[string]any) (*model.Type, error) {
	const op = "types.update"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Type
	if err := c.Patch(ctx, op, fmt.Sprintf("/v1/spaces/%s/types/%s", spaceID, typeID), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteType deletes a type from a space.
func (c *Client) DeleteType(ctx context.Context, spaceID, typeID string) error {
	const op = "types.delete"
	if !c.HasAPIKey() {
		return authRequiredError(op)
	}
	return c.Delete(ctx, op, fmt.Sprintf("/v1/spaces/%s/types/%s", spaceID, typeID))
}
