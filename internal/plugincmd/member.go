package plugincmd

import (
	"context"
	"fmt"

	"github.com/mwatts/anytype-go/pkg/model"
	"github.com/mwatts/anytype-go/pkg/pluginvalue"
)

// registerMembers wires the Members family. Invite/remove/role-update have
// no implementation in the reference source this client was built from
// (SPEC_FULL.md Open Question resolutions); they dispatch straight to the
// client's typed Unimplemented stubs rather than being left unregistered,
// so a host still gets a catchable error instead of "unknown command".
func (r *Registry) registerMembers() {
	r.register("member.list", memberList)
	r.register("member.get", memberGet)
	r.register("member.invite", memberInvite)
	r.register("member.remove", memberRemove)
	r.register("member.update_role", memberUpdateRole)
}

func memberList(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	page, err := deps.Client.ListMembers(ctx, spaceID, intFlag(req, "limit", 100), intFlag(req, "offset", 0))
	if err != nil {
		return Response{}, err
	}
	resp := Response{}
	for _, m := range page.Data {
		resp.Records = append(resp.Records, pluginvalue.NewMember(m, spaceID).Record())
	}
	return resp, nil
}

func memberGet(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("member get: a member id is required")
	}
	m, err := deps.Client.GetMember(ctx, spaceID, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	return single(pluginvalue.NewMember(*m, spaceID)), nil
}

func memberInvite(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("member invite: an email is required")
	}
	m, err := deps.Client.InviteMember(ctx, spaceID, req.Args[0], model.MemberRole(req.Flag("role")))
	if err != nil {
		return Response{}, err
	}
	return single(pluginvalue.NewMember(*m, spaceID)), nil
}

func memberRemove(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("member remove: a member id is required")
	}
	if err := deps.Client.RemoveMember(ctx, spaceID, req.Args[0]); err != nil {
		return Response{}, err
	}
	return Response{}, nil
}

func memberUpdateRole(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("member update_role: a member id is required")
	}
	m, err := deps.Client.UpdateMemberRole(ctx, spaceID, req.Args[0], model.MemberRole(req.Flag("role")))
	if err != nil {
		return Response{}, err
	}
	return single(pluginvalue.NewMember(*m, spaceID)), nil
}
