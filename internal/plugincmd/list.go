package plugincmd

import (
	"context"
	"fmt"

	"github.com/mwatts/anytype-go/pkg/pluginvalue"
)

func (r *Registry) registerLists() {
	r.register("list.list", listList)
	r.register("list.views", listViews)
	r.register("list.objects", listObjects)
	r.register("list.add_objects", listAddObjects)
	r.register("list.remove_object", listRemoveObject)
	r.register("list.remove_objects", listRemoveObjects)
}

func listList(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	page, err := deps.Client.ListLists(ctx, spaceID, intFlag(req, "limit", 100), intFlag(req, "offset", 0))
	if err != nil {
		return Response{}, err
	}
	resp := Response{}
	for _, l := range page.Data {
		resp.Records = append(resp.Records, pluginvalue.NewList(l, spaceID).Record())
	}
	return resp, nil
}

// listViews has no pluginvalue.Value variant of its own (a view is not
// one of the eight entity kinds of spec §3); it projects ListView
// directly into a Record the same way Record() projects a Value.
func listViews(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	listID, err := requireList(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	views, err := deps.Client.ListViews(ctx, spaceID, listID)
	if err != nil {
		return Response{}, err
	}
	resp := Response{}
	for _, v := range views {
		resp.Records = append(resp.Records, pluginvalue.Record{
			{Key: "_type", Value: "list_view"},
			{Key: "id", Value: v.ID},
			{Key: "list_id", Value: listID},
			{Key: "name", Value: v.Name},
		})
	}
	return resp, nil
}

func listObjects(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	listID, err := requireList(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	page, err := deps.Client.ListObjectsInList(ctx, spaceID, listID, intFlag(req, "limit", 100))
	if err != nil {
		return Response{}, err
	}
	resp := Response{}
	for _, o := range page.Data {
		typeID, _ := deps.Resolver.ResolveTypeByKey(ctx, spaceID, o.TypeKey)
		resp.Records = append(resp.Records, pluginvalue.NewObject(o, spaceID, typeID).Record())
	}
	return resp, nil
}

func listAddObjects(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	listID, err := requireList(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	objectIDs, err := resolveObjectArgs(ctx, deps, spaceID, req.Args)
	if err != nil {
		return Response{}, err
	}
	if err := deps.Client.AddObjectsToList(ctx, spaceID, listID, objectIDs); err != nil {
		return Response{}, err
	}
	return Response{}, nil
}

func listRemoveObject(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	listID, err := requireList(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("list remove_object: an object name or id is required")
	}
	objectID, err := deps.Resolver.ResolveObject(ctx, spaceID, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	if err := deps.Client.RemoveObjectFromList(ctx, spaceID, listID, objectID); err != nil {
		return Response{}, err
	}
	return Response{}, nil
}

func listRemoveObjects(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	listID, err := requireList(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	objectIDs, err := resolveObjectArgs(ctx, deps, spaceID, req.Args)
	if err != nil {
		return Response{}, err
	}
	if err := deps.Client.RemoveObjectsFromList(ctx, spaceID, listID, objectIDs); err != nil {
		return Response{}, err
	}
	return Response{}, nil
}

func resolveObjectArgs(ctx context.Context, deps *Deps, spaceID string, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("at least one object name or id is required")
	}
	ids := make([]string, len(names))
	for i, name := range names {
		id, err := deps.Resolver.ResolveObject(ctx, spaceID, name)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
