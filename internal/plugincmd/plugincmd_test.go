package plugincmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	anytype "github.com/mwatts/anytype-go"
	"github.com/mwatts/anytype-go/internal/config"
	"github.com/mwatts/anytype-go/pkg/client"
	"github.com/mwatts/anytype-go/pkg/model"
	"github.com/mwatts/anytype-go/pkg/pluginvalue"
	"github.com/mwatts/anytype-go/pkg/resolver"
)

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func newTestDeps(t *testing.T, mux *http.ServeMux) *Deps {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := client.New(client.WithBaseURL(srv.URL), client.WithHTTPClient(srv.Client()))
	c.SetAPIKey("test-key")
	return &Deps{
		Client:   c,
		Resolver: resolver.New(c),
		Config:   &config.Config{},
	}
}

func TestDispatch_SpaceList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/spaces", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, model.Page[model.Space]{
			Data: []model.Space{{ID: "sp1", Name: "Work"}},
		})
	})
	deps := newTestDeps(t, mux)
	reg := New(deps)

	resp, err := reg.Dispatch(context.Background(), "space.list", Request{})
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	name, ok := resp.Records[0].Get("name")
	require.True(t, ok)
	require.Equal(t, "Work", name)
}

func TestDispatch_SpaceGetResolvesNameToID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/spaces", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, model.Page[model.Space]{
			Data: []model.Space{{ID: "sp1", Name: "Work"}},
		})
	})
	mux.HandleFunc("/v1/spaces/sp1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, model.Space{ID: "sp1", Name: "Work", Description: "team space"})
	})
	deps := newTestDeps(t, mux)
	reg := New(deps)

	resp, err := reg.Dispatch(context.Background(), "space.get", Request{Args: []string{"Work"}})
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	id, _ := resp.Records[0].Get("id")
	require.Equal(t, "sp1", id)
}

func TestDispatch_ObjectCreateWithoutSpaceContextIsMissingContext(t *testing.T) {
	deps := newTestDeps(t, http.NewServeMux())
	reg := New(deps)

	_, err := reg.Dispatch(context.Background(), "object.create", Request{})
	require.Error(t, err)
	var aerr *anytype.Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, anytype.KindMissingContext, aerr.Kind)
	require.Equal(t, "space", aerr.Needed)
}

func TestDispatch_SearchGlobalBadSortNeverHitsNetwork(t *testing.T) {
	hits := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		hits++
		writeJSON(t, w, model.Page[model.Object]{})
	})
	deps := newTestDeps(t, mux)
	reg := New(deps)

	_, err := reg.Dispatch(context.Background(), "search.global", Request{
		Flags: map[string]string{"sort": "not_a_real_field"},
	})
	require.Error(t, err)
	var aerr *anytype.Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, anytype.KindBadRequest, aerr.Kind)
	require.Equal(t, 0, hits)
}

func TestDispatch_MemberInviteIsUnimplemented(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/spaces", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, model.Page[model.Space]{Data: []model.Space{{ID: "sp1", Name: "Work"}}})
	})
	deps := newTestDeps(t, mux)
	reg := New(deps)

	_, err := reg.Dispatch(context.Background(), "member.invite", Request{
		Flags: map[string]string{"space": "Work"},
		Args:  []string{"person@example.com"},
	})
	require.Error(t, err)
	var aerr *anytype.Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, anytype.KindUnimplemented, aerr.Kind)
}

func TestDispatch_UnknownCommandIsUnimplementedNotPanic(t *testing.T) {
	deps := newTestDeps(t, http.NewServeMux())
	reg := New(deps)

	_, err := reg.Dispatch(context.Background(), "nonexistent.command", Request{})
	require.Error(t, err)
	var aerr *anytype.Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, anytype.KindUnimplemented, aerr.Kind)
}

func TestDispatch_ObjectGetUsesPipelinedSpaceWithoutResolving(t *testing.T) {
	spaceListHits := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/spaces", func(w http.ResponseWriter, r *http.Request) {
		spaceListHits++
		writeJSON(t, w, model.Page[model.Space]{Data: []model.Space{{ID: "sp1", Name: "Work"}}})
	})
	mux.HandleFunc("/v1/spaces/sp1/objects", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, model.Page[model.Object]{
			Data: []model.Object{{ID: "obj1", Name: "Note", SpaceID: "sp1"}},
		})
	})
	mux.HandleFunc("/v1/spaces/sp1/objects/obj1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, model.Object{ID: "obj1", Name: "Note", SpaceID: "sp1"})
	})
	deps := newTestDeps(t, mux)
	reg := New(deps)

	pipeline := pluginvalue.NewSpace(model.Space{ID: "sp1", Name: "Work"})
	resp, err := reg.Dispatch(context.Background(), "object.get", Request{
		Args:     []string{"Note"},
		Pipeline: pipeline,
	})
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	require.Equal(t, 0, spaceListHits, "a pipelined space id must not trigger resolve_space's list call")
}
