package client

import (
	"context"
	"fmt"

	"github.com/mwatts/anytype-go/pkg/model"
)

// ListTemplates lists the templates available for a type.
func (c *Client) ListTemplates(ctx context.Context, spaceID, typeID string, limit, offset int) (*model.Page[model.Template], error) {
	const op = "templates.list"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Page[model.Template]
	path := fmt.Sprintf("/v1/spaces/%s/types/%s/templates?limit=%d&offset=%d", spaceID, typeID, limit, offset)
	if err := c.Get(ctx, op, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTemplate retrieves a single template.
func (c *Client) GetTemplate(ctx context.Context, spaceID, typeID, templateID string) (*model.Template, error) {
	const op = "templates.get"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Template
	if err := c.Get(ctx, op, fmt.Sprintf("/v1/spaces/%s/types/%s/templates/%s", spaceID, typeID, templateID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
