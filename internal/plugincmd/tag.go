package plugincmd

import (
	"context"
	"fmt"

	"github.com/mwatts/anytype-go/pkg/client"
	"github.com/mwatts/anytype-go/pkg/model"
	"github.com/mwatts/anytype-go/pkg/pluginvalue"
)

func (r *Registry) registerTags() {
	r.register("tag.list", tagList)
	r.register("tag.get", tagGet)
	r.register("tag.create", tagCreate)
	r.register("tag.update", tagUpdate)
	r.register("tag.delete", tagDelete)
}

func tagList(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	typeID, err := requireType(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	propertyID, err := requireProperty(ctx, deps, req, spaceID, typeID)
	if err != nil {
		return Response{}, err
	}
	page, err := deps.Client.ListTags(ctx, spaceID, propertyID, intFlag(req, "limit", 100), intFlag(req, "offset", 0))
	if err != nil {
		return Response{}, err
	}
	resp := Response{}
	for _, t := range page.Data {
		resp.Records = append(resp.Records, pluginvalue.NewTag(t, spaceID, propertyID).Record())
	}
	return resp, nil
}

func tagGet(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	typeID, err := requireType(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	propertyID, err := requireProperty(ctx, deps, req, spaceID, typeID)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("tag get: a tag name or id is required")
	}
	id, err := deps.Resolver.ResolveTag(ctx, spaceID, propertyID, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	t, err := deps.Client.GetTag(ctx, spaceID, propertyID, id)
	if err != nil {
		return Response{}, err
	}
	return single(pluginvalue.NewTag(*t, spaceID, propertyID)), nil
}

func tagCreate(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	typeID, err := requireType(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	propertyID, err := requireProperty(ctx, deps, req, spaceID, typeID)
	if err != nil {
		return Response{}, err
	}
	name := req.Flag("name")
	if name == "" {
		name = arg(req, 0)
	}
	t, err := deps.Client.CreateTag(ctx, spaceID, propertyID, client.CreateTagRequest{
		Name:  name,
		Color: model.TagColor(req.Flag("color")),
	})
	if err != nil {
		return Response{}, err
	}
	return single(pluginvalue.NewTag(*t, spaceID, propertyID)), nil
}

func tagUpdate(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	typeID, err := requireType(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	propertyID, err := requireProperty(ctx, deps, req, spaceID, typeID)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("tag update: a tag name or id is required")
	}
	id, err := deps.Resolver.ResolveTag(ctx, spaceID, propertyID, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	patch := map[string]any{}
	if name := req.Flag("name"); name != "" {
		patch["name"] = name
	}
	if color := req.Flag("color"); color != "" {
		patch["color"] = color
	}
	t, err := deps.Client.UpdateTag(ctx, spaceID, propertyID, id, patch)
	if err != nil {
		return Response{}, err
	}
	return single(pluginvalue.NewTag(*t, spaceID, propertyID)), nil
}

func tagDelete(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	typeID, err := requireType(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	propertyID, err := requireProperty(ctx, deps, req, spaceID, typeID)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("tag delete: a tag name or id is required")
	}
	id, err := deps.Resolver.ResolveTag(ctx, spaceID, propertyID, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	if err := deps.Client.DeleteTag(ctx, spaceID, propertyID, id); err != nil {
		return Response{}, err
	}
	return Response{}, nil
}
