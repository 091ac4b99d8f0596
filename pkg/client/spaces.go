package client

import (
	"context"
	"fmt"

	"github.com/mwatts/anytype-go/pkg/model"
)

// ListSpaces lists all spaces visible to the credential.
func (c *Client) ListSpaces(ctx context.Context, limit, offset int) (*model.Page[model.Space], error) {
	const op = "spaces.list"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Page[model.Space]
	path := fmt.Sprintf("/v1/spaces?limit=%d&offset=%d", limit, offset)
	if err := c.Get(ctx, op, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSpace retrieves a single space by id.
func (c *Client) GetSpace(ctx context.Context, id string) (*model.Space, error) {
	const op = "spaces.get"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Space
	if err := c.Get(ctx, op, "/v1/spaces/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSpaceRequest is the request payload for spaces.create.
type CreateSpaceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateSpace creates a new space.
func (c *Client) CreateSpace(ctx context.Context, req CreateSpaceRequest) (*model.Space, error) {
	const op = "spaces.create"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Space
	if err := c.Post(ctx, op, "/v1/spaces", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSpace applies a partial patch to an existing space.
func (c *Client) UpdateSpace(ctx context.Context, id string, patch map[string]any) (*model.Space, error) {
	const op = "spaces.update"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Space
	if err := c.Patch(ctx, op, "/v1/spaces/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
