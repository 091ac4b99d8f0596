package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	anytype "github.com/mwatts/anytype-go"
	"github.com/mwatts/anytype-go/pkg/model"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return New(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestListSpaces_WithoutAPIKeyNeverHitsNetwork(t *testing.T) {
	hit := false
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/spaces", func(w http.ResponseWriter, r *http.Request) {
		hit = true
	})
	c := newTestClient(t, mux)

	_, err := c.ListSpaces(context.Background(), 50, 0)
	if hit {
		t.Fatal("expected ListSpaces to refuse the request before any network call")
	}
	aerr, ok := err.(*anytype.Error)
	if !ok || aerr.Kind != anytype.KindAuth {
		t.Fatalf("expected KindAuth, got %#v", err)
	}
}

func TestListSpaces_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/spaces", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "50" {
			t.Fatalf("expected limit=50, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(model.Page[model.Space]{
			Data:       []model.Space{{ID: "sp1", Name: "Work"}, {ID: "sp2", Name: "Personal"}},
			Pagination: model.Pagination{Total: 2, Limit: 50, Offset: 0},
		})
	})
	c := newTestClient(t, mux)
	c.SetAPIKey("test-key")

	page, err := c.ListSpaces(context.Background(), 50, 0)
	if err != nil {
		t.Fatalf("ListSpaces: %v", err)
	}
	if len(page.Data) != 2 || page.Data[0].Name != "Work" {
		t.Fatalf("unexpected page contents: %#v", page)
	}
}

func TestGetSpace_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/spaces/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	c := newTestClient(t, mux)
	c.SetAPIKey("test-key")

	_, err := c.GetSpace(context.Background(), "missing")
	aerr, ok := err.(*anytype.Error)
	if !ok || aerr.Kind != anytype.KindNotFound {
		t.Fatalf("expected KindNotFound, got %#v", err)
	}
}

func TestCreateSpace_BadRequestSurfacesDetails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/spaces", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "name must not be empty"},
		})
	})
	c := newTestClient(t, mux)
	c.SetAPIKey("test-key")

	_, err := c.CreateSpace(context.Background(), CreateSpaceRequest{Name: ""})
	aerr, ok := err.(*anytype.Error)
	if !ok || aerr.Kind != anytype.KindBadRequest {
		t.Fatalf("expected KindBadRequest, got %#v", err)
	}
	if aerr.Details != "name must not be empty" {
		t.Fatalf("expected server message surfaced verbatim, got %q", aerr.Details)
	}
}

func TestUpdateSpace_SendsPatchBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/spaces/sp1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Fatalf("expected PATCH, got %s", r.Method)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["name"] != "Renamed" {
			t.Fatalf("expected name=Renamed in patch body, got %v", body["name"])
		}
		json.NewEncoder(w).Encode(model.Space{ID: "sp1", Name: "Renamed"})
	})
	c := newTestClient(t, mux)
	c.SetAPIKey("test-key")

	got, err := c.UpdateSpace(context.Background(), "sp1", map[string]any{"name": "Renamed"})
	if err != nil {
		t.Fatalf("UpdateSpace: %v", err)
	}
	if got.Name != "Renamed" {
		t.Fatalf("expected Renamed, got %q", got.Name)
	}
}

func TestGetSpace_ServerErrorClassifiesAsKindServer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/spaces/sp1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c := newTestClient(t, mux)
	c.SetAPIKey("test-key")

	_, err := c.GetSpace(context.Background(), "sp1")
	aerr, ok := err.(*anytype.Error)
	if !ok || aerr.Kind != anytype.KindServer {
		t.Fatalf("expected KindServer, got %#v", err)
	}
}
