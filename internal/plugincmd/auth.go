package plugincmd

import (
	"context"
	"fmt"

	"github.com/mwatts/anytype-go/pkg/pluginvalue"
)

// registerAuth wires the two-step challenge/response lifecycle of spec
// §4.2. Neither step produces one of the eight entity kinds, so the
// handlers hand back an ad hoc Record the same way listViews does.
func (r *Registry) registerAuth() {
	r.register("auth.create_challenge", authCreateChallenge)
	r.register("auth.create_api_key", authCreateAPIKey)
}

func authCreateChallenge(ctx context.Context, deps *Deps, req Request) (Response, error) {
	ch, err := deps.Client.CreateChallenge(ctx)
	if err != nil {
		return Response{}, err
	}
	return Response{Records: []pluginvalue.Record{{
		{Key: "_type", Value: "challenge"},
		{Key: "challenge_id", Value: ch.ChallengeID},
	}}}, nil
}

func authCreateAPIKey(ctx context.Context, deps *Deps, req Request) (Response, error) {
	if len(req.Args) < 2 {
		return Response{}, fmt.Errorf("auth create_api_key: a challenge id and code are required")
	}
	key, err := deps.Client.CreateAPIKey(ctx, req.Args[0], req.Args[1])
	if err != nil {
		return Response{}, err
	}
	deps.Client.SetAPIKey(key.APIKey)
	return Response{Records: []pluginvalue.Record{{
		{Key: "_type", Value: "api_key"},
		{Key: "api_key", Value: key.APIKey},
	}}}, nil
}
