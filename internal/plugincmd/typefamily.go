package plugincmd

import (
	"context"
	"fmt"

	"github.com/mwatts/anytype-go/pkg/client"
	"github.com/mwatts/anytype-go/pkg/model"
	"github.com/mwatts/anytype-go/pkg/pluginvalue"
)

func (r *Registry) registerTypes() {
	r.register("type.list", typeList)
	r.register("type.get", typeGet)
	r.register("type.create", typeCreate)
	r.register("type.update", typeUpdate)
	r.register("type.delete", typeDelete)
}

func typeList(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	page, err := deps.Client.ListTypes(ctx, spaceID, intFlag(req, "limit", 100), intFlag(req, "offset", 0))
	if err != nil {
		return Response{}, err
	}
	resp := Response{}
	for _, t := range page.Data {
		resp.Records = append(resp.Records, pluginvalue.NewType(t, spaceID).Record())
	}
	return resp, nil
}

func typeGet(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("type get: a type name or id is required")
	}
	id, err := deps.Resolver.ResolveType(ctx, spaceID, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	t, err := deps.Client.GetType(ctx, spaceID, id)
	if err != nil {
		return Response{}, err
	}
	return single(pluginvalue.NewType(*t, spaceID)), nil
}

func typeCreate(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	name := req.Flag("name")
	if name == "" {
		name = arg(req, 0)
	}
	emoji := req.Flag("icon")
	if emoji == "" {
		emoji = "\U0001F4C4" // default page emoji, overridable with --icon
	}
	t, err := deps.Client.CreateType(ctx, spaceID, client.CreateTypeRequest{
		Name:   name,
		Key:    req.Flag("key"),
		Icon:   model.Icon{Format: model.IconFormatEmoji, Emoji: emoji},
		Layout: req.Flag("layout"),
	})
	if err != nil {
		return Response{}, err
	}
	return single(pluginvalue.NewType(*t, spaceID)), nil
}

func typeUpdate(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("type update: a type name or id is required")
	}
	id, err := deps.Resolver.ResolveType(ctx, spaceID, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	patch := map[string]any{}
	if name := req.Flag("name"); name != "" {
		patch["name"] = name
	}
	if layout := req.Flag("layout"); layout != "" {
		patch["layout"] = layout
	}
	t, err := deps.Client.UpdateType(ctx, spaceID, id, patch)
	if err != nil {
		return Response{}, err
	}
	deps.Resolver.InvalidateType(spaceID, id)
	return single(pluginvalue.NewType(*t, spaceID)), nil
}

func typeDelete(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("type delete: a type name or id is required")
	}
	id, err := deps.Resolver.ResolveType(ctx, spaceID, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	if err := deps.Client.DeleteType(ctx, spaceID, id); err != nil {
		return Response{}, err
	}
	deps.Resolver.InvalidateType(spaceID, id)
	return Response{}, nil
}
