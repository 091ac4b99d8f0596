package client

import (
	"context"
	"fmt"

	"github.com/mwatts/anytype-go/pkg/model"
)

// ListObjects lists objects in a space.
func (c *Client) ListObjects(ctx context.Context, spaceID string, limit, offset int) (*model.Page[model.Object], error) {
	const op = "objects.list"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Page[model.Object]
	path := fmt.Sprintf("/v1/spaces/%s/objects?limit=%d&offset=%d", spaceID, limit, offset)
	if err := c.Get(ctx, op, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetObject retrieves a single object in a space.
func (c *Client) GetObject(ctx context.Context, spaceID, objectID string) (*model.Object, error) {
	const op = "objects.get"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Object
	if err := c.Get(ctx, op, fmt.Sprintf("/v1/spaces/%s/objects/%s", spaceID, objectID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateObjectRequest is the request payload for objects.create.
type CreateObjectRequest struct {
	TypeKey    string                           `json:"type_key"`
	Name       string                           `json:"name,omitempty"`
	Body       string                           `json:"body,omitempty"`
	Icon       *model.Icon                      `json:"icon,omitempty"`
	TemplateID string                           `json:"template_id,omitempty"`
	Properties map[string]model.PropertyValue   `json:"properties,omitempty"`
}

// CreateObject creates a new object in a space.
func (c *Client) CreateObject(ctx context.Context, spaceID string, req CreateObjectRequest) (*model.Object, error) {
	const op = "objects.create"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	for key, v := range req.Properties {
		if err := v.Validate(); err != nil {
			return nil, newBadRequest(op, fmt.Sprintf("properties.%s: %v", key, err))
		}
	}
	var out model.Object
	if err := c.Post(ctx, op, fmt.Sprintf("/v1/spaces/%s/objects", spaceID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateObject applies a partial patch to an existing object.
func (c *Client) UpdateObject(ctx context.Context, spaceID, objectID string, patch map[string]any) (*model.Object, error) {
	const op = "objects.update"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Object
	if err := c.Patch(ctx, op, fmt.Sprintf("/v1/spaces/%s/objects/%s", spaceID, objectID), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteObject deletes an object from a space.
func (c *Client) DeleteObject(ctx context.Context, spaceID, objectID string) error {
	const op = "objects.delete"
	if !c.HasAPIKey() {
		return authRequiredError(op)
	}
	return c.Delete(ctx, op, fmt.Sprintf("/v1/spaces/%s/objects/%s", spaceID, objectID))
}
