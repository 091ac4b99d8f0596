package plugincmd

import (
	"context"
	"fmt"

	"github.com/mwatts/anytype-go/pkg/client"
	"github.com/mwatts/anytype-go/pkg/pluginvalue"
)

func (r *Registry) registerObjects() {
	r.register("object.list", objectList)
	r.register("object.get", objectGet)
	r.register("object.create", objectCreate)
	r.register("object.update", objectUpdate)
	r.register("object.delete", objectDelete)
}

func objectList(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	page, err := deps.Client.ListObjects(ctx, spaceID, intFlag(req, "limit", 100), intFlag(req, "offset", 0))
	if err != nil {
		return Response{}, err
	}
	resp := Response{}
	for _, o := range page.Data {
		typeID, _ := deps.Resolver.ResolveTypeByKey(ctx, spaceID, o.TypeKey)
		deps.Resolver.ObserveObject(spaceID, o.DisplayName(), o.ID)
		resp.Records = append(resp.Records, pluginvalue.NewObject(o, spaceID, typeID).Record())
	}
	return resp, nil
}

func objectGet(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("object get: an object name or id is required")
	}
	id, err := deps.Resolver.ResolveObject(ctx, spaceID, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	o, err := deps.Client.GetObject(ctx, spaceID, id)
	if err != nil {
		return Response{}, err
	}
	typeID, _ := deps.Resolver.ResolveTypeByKey(ctx, spaceID, o.TypeKey)
	return single(pluginvalue.NewObject(*o, spaceID, typeID)), nil
}

func objectCreate(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	typeID, err := requireType(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	typ, err := deps.Client.GetType(ctx, spaceID, typeID)
	if err != nil {
		return Response{}, err
	}
	name := req.Flag("name")
	if name == "" {
		name = arg(req, 0)
	}
	o, err := deps.Client.CreateObject(ctx, spaceID, client.CreateObjectRequest{
		TypeKey:    typ.Key,
		Name:       name,
		Body:       req.Flag("body"),
		TemplateID: req.Flag("template"),
	})
	if err != nil {
		return Response{}, err
	}
	deps.Resolver.ObserveObject(spaceID, o.DisplayName(), o.ID)
	return single(pluginvalue.NewObject(*o, spaceID, typeID)), nil
}

func objectUpdate(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("object update: an object name or id is required")
	}
	id, err := deps.Resolver.ResolveObject(ctx, spaceID, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	patch := map[string]any{}
	if name := req.Flag("name"); name != "" {
		patch["name"] = name
	}
	if body := req.Flag("body"); body != "" {
		patch["body"] = body
	}
	o, err := deps.Client.UpdateObject(ctx, spaceID, id, patch)
	if err != nil {
		return Response{}, err
	}
	typeID, _ := deps.Resolver.ResolveTypeByKey(ctx, spaceID, o.TypeKey)
	deps.Resolver.ObserveObject(spaceID, o.DisplayName(), o.ID)
	return single(pluginvalue.NewObject(*o, spaceID, typeID)), nil
}

func objectDelete(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("object delete: an object name or id is required")
	}
	id, err := deps.Resolver.ResolveObject(ctx, spaceID, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	if err := deps.Client.DeleteObject(ctx, spaceID, id); err != nil {
		return Response{}, err
	}
	return Response{}, nil
}
