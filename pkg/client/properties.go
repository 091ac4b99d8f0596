package client

import (
	"context"
	"fmt"

	"github.com/mwatts/anytype-go/pkg/model"
)

// ListProperties lists the properties defined in a space.
func (c *Client) ListProperties(ctx context.Context, spaceID string, limit, offset int) (*model.Page[model.Property], error) {
	const op = "properties.list"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Page[model.Property]
	path := fmt.Sprintf("/v1/spaces/%s/properties?limit=%d&offset=%d", spaceID, limit, offset)
	if err := c.Get(ctx, op, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProperty retrieves a single property.
func (c *Client) GetProperty(ctx context.Context, spaceID, propertyID string) (*model.Property, error) {
	const op = "properties.get"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Property
	if err := c.Get(ctx, op, fmt.Sprintf("/v1/spaces/%s/properties/%s", spaceID, propertyID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePropertyRequest is the request payload for properties.create.
type CreatePropertyRequest struct {
	Name   string               `json:"name"`
	Key    string               `json:"key"`
	Format model.PropertyFormat `json:"format"`
}

// CreateProperty creates a new property in a space.
func (c *Client) CreateProperty(ctx context.Context, spaceID string, req CreatePropertyRequest) (*model.Property, error) {
	const op = "properties.create"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Property
	if err := c.Post(ctx, op, fmt.Sprintf("/v1/spaces/%s/properties", spaceID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProperty applies a partial patch to an existing property.
func (c *Client) UpdateProperty(ctx context.Context, spaceID, propertyID string, patch map[string]any) (*model.Property, error) {
	const op = "properties.update"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Property
	if err := c.Patch(ctx, op, fmt.Sprintf("/v1/spaces/%s/properties/%s", spaceID, propertyID), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProperty deletes a property from a space.
func (c *Client) DeleteProperty(ctx context.Context, spaceID, propertyID string) error {
	const op = "properties.delete"
	if !c.HasAPIKey() {
		return authRequiredError(op)
	}
	return c.Delete(ctx, op, fmt.Sprintf("/v1/spaces/%s/properties/%s", spaceID, propertyID))
}
