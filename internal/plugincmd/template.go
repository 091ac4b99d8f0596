package plugincmd

import (
	"context"
	"fmt"

	"github.com/mwatts/anytype-go/pkg/pluginvalue"
)

// registerTemplates wires the read-only Templates family (spec §4.3): the
// service exposes no create/update/delete for templates, only listing and
// retrieval.
func (r *Registry) registerTemplates() {
	r.register("template.list", templateList)
	r.register("template.get", templateGet)
}

func templateList(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	typeID, err := requireType(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	page, err := deps.Client.ListTemplates(ctx, spaceID, typeID, intFlag(req, "limit", 100), intFlag(req, "offset", 0))
	if err != nil {
		return Response{}, err
	}
	resp := Response{}
	for _, t := range page.Data {
		resp.Records = append(resp.Records, pluginvalue.NewTemplate(t, spaceID, typeID).Record())
	}
	return resp, nil
}

func templateGet(ctx context.Context, deps *Deps, req Request) (Response, error) {
	spaceID, err := requireSpace(ctx, deps, req)
	if err != nil {
		return Response{}, err
	}
	typeID, err := requireType(ctx, deps, req, spaceID)
	if err != nil {
		return Response{}, err
	}
	if len(req.Args) < 1 {
		return Response{}, fmt.Errorf("template get: a template id is required")
	}
	t, err := deps.Client.GetTemplate(ctx, spaceID, typeID, req.Args[0])
	if err != nil {
		return Response{}, err
	}
	return single(pluginvalue.NewTemplate(*t, spaceID, typeID)), nil
}
