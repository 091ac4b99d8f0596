package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mwatts/anytype-go/pkg/model"
)

// SearchSort is the closed set of sortable fields (spec §4.3).
type SearchSort string

const (
	SortCreatedDate      SearchSort = "created_date"
	SortLastModifiedDate SearchSort = "last_modified_date"
	SortLastOpenedDate   SearchSort = "last_opened_date"
	SortName             SearchSort = "name"
)

// SearchDirection is the closed set of sort directions.
type SearchDirection string

const (
	DirectionAsc  SearchDirection = "asc"
	DirectionDesc SearchDirection = "desc"
)

// SearchRequest is the request payload shared by search.global and
// search.in_space.
type SearchRequest struct {
	Query     string
	Limit     int
	Offset    int
	Sort      SearchSort
	Direction SearchDirection
}

func (r SearchRequest) validate(op string) error {
	switch r.Sort {
	case "", SortCreatedDate, SortLastModifiedDate, SortLastOpenedDate, SortName:
	default:
		return newBadRequest(op, fmt.Sprintf("sort: unknown value %q", r.Sort))
	}
	switch r.Direction {
	case "", DirectionAsc, DirectionDesc:
	default:
		return newBadRequest(op, fmt.Sprintf("direction: unknown value %q", r.Direction))
	}
	return nil
}

func (r SearchRequest) query() string {
	v := url.Values{}
	if r.Query != "" {
		v.Set("query", r.Query)
	}
	if r.Limit > 0 {
		v.Set("limit", fmt.Sprintf("%d", r.Limit))
	}
	if r.Offset > 0 {
		v.Set("offset", fmt.Sprintf("%d", r.Offset))
	}
	if r.Sort != "" {
		v.Set("sort", string(r.Sort))
	}
	if r.Direction != "" {
		v.Set("direction", string(r.Direction))
	}
	return v.Encode()
}

// SearchGlobal searches across every space visible to the credential.
// Unknown sort/direction values fail client-side with BadRequest before
// any network call is made (spec §4.3, §8.2 S7).
func (c *Client) SearchGlobal(ctx context.Context, req SearchRequest) (*model.Page[model.Object], error) {
	const op = "search.global"
	if err := req.validate(op); err != nil {
		return nil, err
	}
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Page[model.Object]
	path := "/v1/search?" + req.query()
	if err := c.Get(ctx, op, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchInSpace searches within a single space.
func (c *Client) SearchInSpace(ctx context.Context, spaceID string, req SearchRequest) (*model.Page[model.Object], error) {
	const op = "search.in_space"
	if err := req.validate(op); err != nil {
		return nil, err
	}
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Page[model.Object]
	path := fmt.Sprintf("/v1/spaces/%s/search?%s", spaceID, req.query())
	if err := c.Get(ctx, op, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
