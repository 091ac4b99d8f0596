package client

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/mwatts/anytype-go/pkg/model"
)

// ListView describes one saved view of a List.
type ListView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListLists enumerates the lists defined in a space. The flat operation
// catalog of spec §4.3 scopes the Lists family by space+list once a
// list id is known; the resolver's name->id cache (spec §4.4) needs this
// space-level enumeration to learn those ids in the first place.
func (c *Client) ListLists(ctx context.Context, spaceID string, limit, offset int) (*model.Page[model.List], error) {
	const op = "lists.list"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Page[model.List]
	path := fmt.Sprintf("/v1/spaces/%s/lists?limit=%d&offset=%d", spaceID, limit, offset)
	if err := c.Get(ctx, op, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddObjectsToList adds objects to a list, scoped by space+list, in a
// single request carrying every object id; a failure is returned as the
// one error of that request, not broken down per object.
func (c *Client) AddObjectsToList(ctx context.Context, spaceID, listID string, objectIDs []string) error {
	const op = "lists.add_objects"
	if !c.HasAPIKey() {
		return authRequiredError(op)
	}
	req := struct {
		ObjectIDs []string `json:"object_ids"`
	}{objectIDs}
	return c.Post(ctx, op, fmt.Sprintf("/v1/spaces/%s/lists/%s/objects", spaceID, listID), req, nil)
}

// ListViews lists the saved views of a list.
func (c *Client) ListViews(ctx context.Context, spaceID, listID string) ([]ListView, error) {
	const op = "lists.views"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out struct {
		Data []ListView `json:"data"`
	}
	if err := c.Get(ctx, op, fmt.Sprintf("/v1/spaces/%s/lists/%s/views", spaceID, listID), &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ListObjectsInList lists the objects a list currently contains.
func (c *Client) ListObjectsInList(ctx context.Context, spaceID, listID string, limit int) (*model.Page[model.Object], error) {
	const op = "lists.objects"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	if limit <= 0 {
		limit = 100
	}
	var out model.Page[model.Object]
	path := fmt.Sprintf("/v1/spaces/%s/lists/%s/objects?limit=%d", spaceID, listID, limit)
	if err := c.Get(ctx, op, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveObjectFromList removes a single object from a list.
func (c *Client) RemoveObjectFromList(ctx context.Context, spaceID, listID, objectID string) error {
	const op = "lists.remove_object"
	if !c.HasAPIKey() {
		return authRequiredError(op)
	}
	return c.Delete(ctx, op, fmt.Sprintf("/v1/spaces/%s/lists/%s/objects/%s", spaceID, listID, objectID))
}

// RemoveObjectsFromList removes multiple objects, collecting any
// per-object failures into a single multierror.
func (c *Client) RemoveObjectsFromList(ctx context.Context, spaceID, listID string, objectIDs []string) error {
	var result *multierror.Error
	for _, id := range objectIDs {
		if err := c.RemoveObjectFromList(ctx, spaceID, listID, id); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
