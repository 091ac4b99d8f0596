package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	anytype "github.com/mwatts/anytype-go"
	"github.com/mwatts/anytype-go/pkg/client"
)

// newTestClient wires a client.Client at an httptest.Server that serves
// a fixed set of handlers, counting hits per path so tests can assert
// on the "exactly one list call per cache miss" property (spec §8.1 #4,
// #10).
func newTestClient(t *testing.T, handlers map[string]http.HandlerFunc, hits *int32) *client.Client {
	t.Helper()
	mux := http.NewServeMux()
	for path, h := range handlers {
		h := h
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if hits != nil {
				atomic.AddInt32(hits, 1)
			}
			h(w, r)
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := client.New(client.WithBaseURL(srv.URL), client.WithHTTPClient(srv.Client()))
	c.SetAPIKey("test-key")
	return c
}

func writeSpaces(w http.ResponseWriter, spaces []map[string]string) {
	data := make([]map[string]any, len(spaces))
	for i, s := range spaces {
		data[i] = map[string]any{"id": s["id"], "name": s["name"]}
	}
	body, _ := json.Marshal(map[string]any{
		"data":       data,
		"pagination": map[string]any{"offset": 0, "limit": 1000, "total": len(data), "has_more": false},
	})
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func TestResolveSpace_IDShapeShortCircuits(t *testing.T) {
	var hits int32
	c := newTestClient(t, map[string]http.HandlerFunc{}, &hits)
	r := New(c)

	id := uuid.New().String()
	got, err := r.ResolveSpace(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, id, got)
	require.EqualValues(t, 0, hits, "an id-shaped name must not issue any network call")
}

func TestResolveSpace_CachesAfterFirstFill(t *testing.T) {
	var hits int32
	c := newTestClient(t, map[string]http.HandlerFunc{
		"/v1/spaces": func(w http.ResponseWriter, r *http.Request) {
			writeSpaces(w, []map[string]string{{"id": "SP1", "name": "Work"}})
		},
	}, &hits)
	r := New(c)

	id1, err := r.ResolveSpace(context.Background(), "Work")
	require.NoError(t, err)
	require.Equal(t, "SP1", id1)
	require.EqualValues(t, 1, hits)

	id2, err := r.ResolveSpace(context.Background(), "Work")
	require.NoError(t, err)
	require.Equal(t, "SP1", id2)
	require.EqualValues(t, 1, hits, "a cache hit must not issue a second list call")
}

func TestResolveSpace_CaseInsensitiveByDefault(t *testing.T) {
	c := newTestClient(t, map[string]http.HandlerFunc{
		"/v1/spaces": func(w http.ResponseWriter, r *http.Request) {
			writeSpaces(w, []map[string]string{{"id": "SP1", "name": "Work"}})
		},
	}, nil)
	r := New(c)

	id, err := r.ResolveSpace(context.Background(), "WORK")
	require.NoError(t, err)
	require.Equal(t, "SP1", id)
}

func TestResolveSpace_NotFound(t *testing.T) {
	c := newTestClient(t, map[string]http.HandlerFunc{
		"/v1/spaces": func(w http.ResponseWriter, r *http.Request) {
			writeSpaces(w, []map[string]string{{"id": "SP1", "name": "Work"}})
		},
	}, nil)
	r := New(c)

	_, err := r.ResolveSpace(context.Background(), "Nope")
	require.Error(t, err)
	require.True(t, anytype.IsKind(err, anytype.KindNotFound))
}

func TestResolveSpace_MultipleMatchesReturnsFirst(t *testing.T) {
	c := newTestClient(t, map[string]http.HandlerFunc{
		"/v1/spaces": func(w http.ResponseWriter, r *http.Request) {
			writeSpaces(w, []map[string]string{
				{"id": "SP1", "name": "Work"},
				{"id": "SP2", "name": "Work"},
			})
		},
	}, nil)
	r := New(c)

	id, err := r.ResolveSpace(context.Background(), "Work")
	require.NoError(t, err)
	require.Equal(t, "SP1", id, "the first server-ordered match wins")
}

func TestResolveSpace_TTLExpiryRefetches(t *testing.T) {
	var hits int32
	c := newTestClient(t, map[string]http.HandlerFunc{
		"/v1/spaces": func(w http.ResponseWriter, r *http.Request) {
			writeSpaces(w, []map[string]string{{"id": "SP1", "name": "Work"}})
		},
	}, &hits)
	r := New(c, WithTTL(10*time.Millisecond))

	_, err := r.ResolveSpace(context.Background(), "Work")
	require.NoError(t, err)
	require.EqualValues(t, 1, hits)

	time.Sleep(20 * time.Millisecond)

	_, err = r.ResolveSpace(context.Background(), "Work")
	require.NoError(t, err)
	require.EqualValues(t, 2, hits, "an expired entry must be refetched")
}

func TestResolveSpace_ConcurrentMissesDedupWithSingleflight(t *testing.T) {
	var hits int32
	release := make(chan struct{})
	c := newTestClient(t, map[string]http.HandlerFunc{
		"/v1/spaces": func(w http.ResponseWriter, r *http.Request) {
			<-release
			writeSpaces(w, []map[string]string{{"id": "SP1", "name": "Work"}})
		},
	}, &hits)
	r := New(c)

	const n = 10
	results := make([]string, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = r.ResolveSpace(context.Background(), "Work")
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, "SP1", results[i])
	}
	require.EqualValues(t, 1, hits, "concurrent resolves against an empty cache must issue exactly one list call")
}

func TestResolveTypeByKey(t *testing.T) {
	c := newTestClient(t, map[string]http.HandlerFunc{
		"/v1/spaces/SP1/types": func(w http.ResponseWriter, r *http.Request) {
			data := []map[string]any{
				{"id": "T1", "key": "ot_task", "name": "Task", "icon": map[string]any{"format": "emoji", "emoji": "📌"}, "space_id": "SP1"},
				{"id": "T2", "key": "ot_note", "name": "Note", "icon": map[string]any{"format": "emoji", "emoji": "📝"}, "space_id": "SP1"},
			}
			body, _ := json.Marshal(map[string]any{
				"data":       data,
				"pagination": map[string]any{"offset": 0, "limit": 1000, "total": 2, "has_more": false},
			})
			w.Write(body)
		},
	}, nil)
	r := New(c)

	id, err := r.ResolveTypeByKey(context.Background(), "SP1", "ot_task")
	require.NoError(t, err)
	require.Equal(t, "T1", id)

	byName, err := r.ResolveType(context.Background(), "SP1", "Note")
	require.NoError(t, err)
	require.Equal(t, "T2", byName)
}

func TestCascadeInvalidation(t *testing.T) {
	r := New(client.New())

	r.spaces.put("work", "SP1")
	r.types.put(compositeKey("SP1", "task"), "T1")
	r.properties.put(compositeKey("T1", "status"), "P1")
	r.tags.put(compositeKey("P1", "done"), "G1")

	r.InvalidateSpace("SP1")

	_, ok := r.types.get(compositeKey("SP1", "task"))
	require.False(t, ok)
	_, ok = r.properties.get(compositeKey("T1", "status"))
	require.False(t, ok)
	_, ok = r.tags.get(compositeKey("P1", "done"))
	require.False(t, ok)
}

func TestResolveObject_IDShapeShortCircuits(t *testing.T) {
	r := New(client.New())
	id := uuid.New().String()
	got, err := r.ResolveObject(context.Background(), "SP1", id)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestPageSizeCappedAtServiceMaximum(t *testing.T) {
	var seenLimit string
	c := newTestClient(t, map[string]http.HandlerFunc{
		"/v1/spaces": func(w http.ResponseWriter, r *http.Request) {
			seenLimit = r.URL.Query().Get("limit")
			writeSpaces(w, nil)
		},
	}, nil)
	r := New(c)

	_, err := r.ResolveSpace(context.Background(), "anything")
	require.Error(t, err)
	require.Equal(t, fmt.Sprintf("%d", listPageSize), seenLimit)
}
