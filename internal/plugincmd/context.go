package plugincmd

import (
	"context"

	"github.com/mwatts/anytype-go/pkg/pluginvalue"
)

func defaultSpace(deps *Deps) string {
	if deps.Config == nil {
		return ""
	}
	return deps.Config.DefaultSpace
}

func requireSpace(ctx context.Context, deps *Deps, req Request) (string, error) {
	return pluginvalue.ResolveSpaceContext(ctx, deps.Resolver, req.Flag("space"), req.Pipeline, defaultSpace(deps))
}

func requireType(ctx context.Context, deps *Deps, req Request, spaceID string) (string, error) {
	return pluginvalue.ResolveTypeContext(ctx, deps.Resolver, spaceID, req.Flag("type"), req.Pipeline, "")
}

func requireProperty(ctx context.Context, deps *Deps, req Request, spaceID, typeID string) (string, error) {
	return pluginvalue.ResolvePropertyContext(ctx, deps.Resolver, spaceID, typeID, req.Flag("property"), req.Pipeline, "")
}

func requireList(ctx context.Context, deps *Deps, req Request, spaceID string) (string, error) {
	return pluginvalue.ResolveListContext(ctx, deps.Resolver, spaceID, req.Flag("list"), req.Pipeline, "")
}
