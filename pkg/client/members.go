package client

import (
	"context"
	"fmt"

	anytype "github.com/mwatts/anytype-go"
	"github.com/mwatts/anytype-go/pkg/model"
)

// ListMembers lists the members of a space.
func (c *Client) ListMembers(ctx context.Context, spaceID string, limit, offset int) (*model.Page[model.Member], error) {
	const op = "members.list"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Page[model.Member]
	path := fmt.Sprintf("/v1/spaces/%s/members?limit=%d&offset=%d", spaceID, limit, offset)
	if err := c.Get(ctx, op, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMember retrieves a single member.
func (c *Client) GetMember(ctx context.Context, spaceID, memberID string) (*model.Member, error) {
	const op = "members.get"
	if !c.HasAPIKey() {
		return nil, authRequiredError(op)
	}
	var out model.Member
	if err := c.Get(ctx, op, fmt.Sprintf("/v1/spaces/%s/members/%s", spaceID, memberID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InviteMember exists in the service's REST schema but has no
// implementation in the reference source this client was built from
// (spec §9 Open Questions); it is a typed Unimplemented stub so callers
// get a catchable error instead of a missing method.
func (c *Client) InviteMember(ctx context.Context, spaceID, email string, role model.MemberRole) (*model.Member, error) {
	const op = "members.invite"
	return nil, anytype.NewError(anytype.KindUnimplemented, "member", op)
}

// RemoveMember is an Unimplemented stub; see InviteMember.
func (c *Client) RemoveMember(ctx context.Context, spaceID, memberID string) error {
	const op = "members.remove"
	return anytype.NewError(anytype.KindUnimplemented, "member", op)
}

// UpdateMemberRole is an Unimplemented stub; see InviteMember.
func (c *Client) UpdateMemberRole(ctx context.Context, spaceID, memberID string, role model.MemberRole) (*model.Member, error) {
	const op = "members.update_role"
	return nil, anytype.NewError(anytype.KindUnimplemented, "member", op)
}
