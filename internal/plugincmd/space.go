package plugincmd

import (
	"context"
	"fmt"

	"github.com/mwatts/anytype-go/pkg/client"
	"github.com/mwatts/anytype-go/pkg/pluginvalue"
)

func (r *Registry) registerSpaces() {
	r.register("space.list", spaceList)
	r.register("space.get", spaceGet)
	r.register("space.create", spaceCreate)
	r.register("space.update", spaceUpdate)
}

func spaceList(ctx context.Context, deps *Deps, req Request) (Response, error) {
	page, err := deps.Client.ListSpaces(ctx, 100, 0)
	if err != nil {
		return Response{}, err
	}
	resp := Response{}
	for _, s := range page.Data {
		resp.Records = append(resp.Records, pluginvalue.NewSpace(s).Record())
	}
	return resp, nil
}

func spaceGet(ctx context.Context, deps *Deps, req Request) (Response, error) {
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("space get: a space name or id is required")
	}
	id, err := deps.Resolver.ResolveSpace(ctx, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	s, err := deps.Client.GetSpace(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return single(pluginvalue.NewSpace(*s)), nil
}

func spaceCreate(ctx context.Context, deps *Deps, req Request) (Response, error) {
	name := req.Flag("name")
	if name == "" && len(req.Args) > 0 {
		name = req.Args[0]
	}
	s, err := deps.Client.CreateSpace(ctx, client.CreateSpaceRequest{
		Name:        name,
		Description: req.Flag("description"),
	})
	if err != nil {
		return Response{}, err
	}
	return single(pluginvalue.NewSpace(*s)), nil
}

func spaceUpdate(ctx context.Context, deps *Deps, req Request) (Response, error) {
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("space update: a space name or id is required")
	}
	id, err := deps.Resolver.ResolveSpace(ctx, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	patch := map[string]any{}
	if name := req.Flag("name"); name != "" {
		patch["name"] = name
	}
	if desc := req.Flag("description"); desc != "" {
		patch["description"] = desc
	}
	s, err := deps.Client.UpdateSpace(ctx, id, patch)
	if err != nil {
		return Response{}, err
	}
	deps.Resolver.InvalidateSpace(id)
	return single(pluginvalue.NewSpace(*s)), nil
}
