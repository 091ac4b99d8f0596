package client

import (
	"context"
	"fmt"

	"github.com/mwatts/anytype-go/pkg/model"
)

// ListTags lists the tags defined for a property.
func (c *Client) ListTags(ctx context.Context, spaceID, propertyID string, limit, offset int) (*model.Page[model.Tag], error) {
	const op = "tags.list"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Page[model.Tag]
	path := fmt.Sprintf("/v1/spaces/%s/properties/%s/tags?limit=%d&offset=%d", spaceID, propertyID, limit, offset)
	if err := c.Get(ctx, op, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTag retrieves a single tag.
func (c *Client) GetTag(ctx context.Context, spaceID, propertyID, tagID string) (*model.Tag, error) {
	const op = "tags.get"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Tag
	if err := c.Get(ctx, op, fmt.Sprintf("/v1/spaces/%s/properties/%s/tags/%s", spaceID, propertyID, tagID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTagRequest is the request payload for tags.create.
type CreateTagRequest struct {
	Name  string          `json:"name"`
	Color model.TagColor  `json:"color,omitempty"`
}

// CreateTag creates a new tag for a property.
func (c *Client) CreateTag(ctx context.Context, spaceID, propertyID string, req CreateTagRequest) (*model.Tag, error) {
	const op = "tags.create"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Tag
	if err := c.Post(ctx, op, fmt.Sprintf("/v1/spaces/%s/properties/%s/tags", spaceID, propertyID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTag applies a partial patch to an existing tag.
func (c *Client) UpdateTag(ctx context.Context, spaceID, propertyID, tagID string, patch map[string]any) (*model.Tag, error) {
	const op = "tags.update"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Tag
	if err := c.Patch(ctx, op, fmt.Sprintf("/v1/spaces/%s/properties/%s/tags/%s", spaceID, propertyID, tagID), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTag deletes a tag.
func (c *Client) DeleteTag(ctx context.Context, spaceID, propertyID, tagID string) error {
	const op = "tags.delete"
	if !c.HasAPIKey() {
		return authRequiredError(op)
	}
	return c.Delete(ctx, op, fmt.Sprintf("/v1/spaces/%s/properties/%s/tags/%s", spaceID, propertyID, tagID))
}
