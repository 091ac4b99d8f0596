package plugincmd

import (
	"context"

	"github.com/mwatts/anytype-go/pkg/client"
	"github.com/mwatts/anytype-go/pkg/pluginvalue"
)

// registerSearch wires global and space-scoped search (spec §4.3). A bad
// sort or direction flag fails client-side in client.SearchRequest.validate
// before any network call — the handler just forwards the parsed request.
func (r *Registry) registerSearch() {
	r.register("search.global", searchGlobal)
	r.register("search.in_space", searchInSpace)
}

func searchRequest(req Request) client.SearchRequest {
	return client.SearchRequest{
		Query:     req.Flag("query"),
		Limit:     intFlag(req, "limit", 0),
		Offset:    intFlag(req, "offset", 0),
		Sort:      client.SearchSort(req.Flag("sort")),
		Direction: client.SearchDirection(req.Flag("direction")),
	}
}

func objectRecords(ctx context.Context, deps *Deps, objects []pluginvalue.Value) Response {
	resp := Response{}
	for _, v := range objects {
		resp.Records = append(resp.Records, v.Record())
	}
	return resp
}

func searchGlobal(ctx context.Context, deps *Deps, req Request) (Response, error) {
	if len(req.Args) > 0 && req.Flag("query") == "" {
		req.Flags = mergeFlag(req.Flags, "query", req.Args[0])
	}
	page, err := deps.Client.SearchGlobal(ctx, searchRequest(req))
	if err != nil {
		return Response{}, err
	}
	values := make([]pluginvalue.Value, 0, len(page.Data))
	for _, o := range page.Data {
		typeID, _ := deps.Resolver.ResolveTypeByKey(ctx, o.SpaceID, o.TypeKey)
		deps.Resolver.ObserveObject(o.SpaceID, o.DisplayName(), o.ID)
		values = append(values, pluginvalue.NewObject(o, o.SpaceID, typeID))
	}
	return objectRecords(ctx, deps, values), nil
}

func searchInSpace(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) > 0 && req.Flag("query") == "" {
		req.Flags = mergeFlag(req.Flags, "query", req.Args[0])
	}
	page, err := deps.Client.SearchInSpace(ctx, spaceID, searchRequest(req))
	if err != nil {
		return Response{}, err
	}
	values := make([]pluginvalue.Value, 0, len(page.Data))
	for _, o := range page.Data {
		typeID, _ := deps.Resolver.ResolveTypeByKey(ctx, spaceID, o.TypeKey)
		deps.Resolver.ObserveObject(spaceID, o.DisplayName(), o.ID)
		values = append(values, pluginvalue.NewObject(o, spaceID, typeID))
	}
	return objectRecords(ctx, deps, values), nil
}

func mergeFlag(flags map[string]string, key, value string) map[string]string {
	out := make(map[string]string, len(flags)+1)
	for k, v := range flags {
		out[k] = v
	}
	out[key] = value
	return out
}
