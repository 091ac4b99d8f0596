package plugincmd

import (
	"context"
	"fmt"

	"github.com/mwatts/anytype-go/pkg/client"
	"github.com/mwatts/anytype-go/pkg/model"
	"github.com/mwatts/anytype-go/pkg/pluginvalue"
)

func (r *Registry) registerProperties() {
	r.register("property.list", propertyList)
	r.register("property.get", propertyGet)
	r.register("property.create", propertyCreate)
	r.register("property.update", propertyUpdate)
	r.register("property.delete", propertyDelete)
}

func propertyList(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	typeID, err := requireType(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	page, err := deps.Client.ListProperties(ctx, spaceID, intFlag(req, "limit", 100), intFlag(req, "offset", 0))
	if err != nil {
		return Response{}, err
	}
	resp := Response{}
	for _, p := range page.Data {
		if p.TypeID != "" && p.TypeID != typeID {
			continue
		}
		resp.Records = append(resp.Records, pluginvalue.NewProperty(p, spaceID, typeID).Record())
	}
	return resp, nil
}

func propertyGet(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	typeID, err := requireType(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("property get: a property name or id is required")
	}
	id, err := deps.Resolver.ResolveProperty(ctx, spaceID, typeID, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	p, err := deps.Client.GetProperty(ctx, spaceID, id)
	if err != nil {
		return Response{}, err
	}
	return single(pluginvalue.NewProperty(*p, spaceID, typeID)), nil
}

func propertyCreate(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	typeID, err := requireType(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	name := req.Flag("name")
	if name == "" {
		name = arg(req, 0)
	}
	p, err := deps.Client.CreateProperty(ctx, spaceID, client.CreatePropertyRequest{
		Name:   name,
		Key:    req.Flag("key"),
		Format: model.PropertyFormat(req.Flag("format")),
	})
	if err != nil {
		return Response{}, err
	}
	return single(pluginvalue.NewProperty(*p, spaceID, typeID)), nil
}

func propertyUpdate(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	typeID, err := requireType(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("property update: a property name or id is required")
	}
	id, err := deps.Resolver.ResolveProperty(ctx, spaceID, typeID, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	patch := map[string]any{}
	if name := req.Flag("name"); name != "" {
		patch["name"] = name
	}
	p, err := deps.Client.UpdateProperty(ctx, spaceID, id, patch)
	if err != nil {
		return Response{}, err
	}
	deps.Resolver.InvalidateProperty(id)
	return single(pluginvalue.NewProperty(*p, spaceID, typeID)), nil
}

func propertyDelete(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	typeID, err := requireType(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("property delete: a property name or id is required")
	}
	id, err := deps.Resolver.ResolveProperty(ctx, spaceID, typeID, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	if err := deps.Client.DeleteProperty(ctx, spaceID, id); err != nil {
		return Response{}, err
	}
	deps.Resolver.InvalidateProperty(id)
	return Response{}, nil
}
