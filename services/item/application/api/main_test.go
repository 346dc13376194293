package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/logger"
	appsvcs "github.com/ghuser/wardrobe/services/item/application/services"
	"github.com/ghuser/wardrobe/services/item/infrastructure/persistence/memory"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type detail struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Color       string  `json:"color"`
	Brand       *string `json:"brand"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type testServer struct {
	t     *testing.T
	h     http.Handler
	store *memory.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.NewStore()
	svcs := appsvcs.NewWithRepositories(memory.NewItemWriteRepository(store), memory.NewItemReadRepository(store))
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		Register(r, svcs, logger.NewWithWriter(io.Discard, "error"))
	})
	return &testServer{t: t, h: r, store: store}
}

func (s *testServer) do(method, path, body string) (int, envelope) {
	s.t.Helper()
	var rd io.Reader = http.NoBody
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.h.ServeHTTP(rr, req)

	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		s.t.Fatalf("%s %s: body is not JSON: %v (%s)", method, path, err, rr.Body.String())
	}
	return rr.Code, env
}

func (s *testServer) create(body string) detail {
	s.t.Helper()
	code, env := s.do(http.MethodPost, "/api/items", body)
	if code != http.StatusCreated {
		s.t.Fatalf("create: expected 201, got %d (%+v)", code, env.Error)
	}
	var d detail
	if err := json.Unmarshal(env.Data, &d); err != nil {
		s.t.Fatalf("decode detail: %v", err)
	}
	return d
}

func errMsg(env envelope) string {
	if env.Error == nil {
		return ""
	}
	return env.Error.Message
}

func TestItemsCRUD(t *testing.T) {
	s := newTestServer(t)

	created := s.create(`{"name":"White T-Shirt","category":"tops","color":"white"}`)
	if created.ID != 1 || created.Name != "White T-Shirt" || created.Brand != nil {
		t.Fatalf("unexpected created item: %+v", created)
	}

	code, env := s.do(http.MethodGet, fmt.Sprintf("/api/items/%d", created.ID), "")
	if code != http.StatusOK || !env.Success {
		t.Fatalf("get: expected 200, got %d", code)
	}
	var got detail
	_ = json.Unmarshal(env.Data, &got)
	if got != created {
		t.Fatalf("get returned %+v, want %+v", got, created)
	}

	code, env = s.do(http.MethodPut, "/api/items/1", `{"name":"Renamed","brand":"Uniqlo"}`)
	if code != http.StatusOK {
		t.Fatalf("put: expected 200, got %d (%s)", code, errMsg(env))
	}
	var updated detail
	_ = json.Unmarshal(env.Data, &updated)
	if updated.Name != "Renamed" || updated.Category != "tops" || updated.Brand == nil || *updated.Brand != "Uniqlo" {
		t.Fatalf("unexpected update: %+v", updated)
	}

	code, env = s.do(http.MethodPut, "/api/items/1", `{"brand":null}`)
	if code != http.StatusOK {
		t.Fatalf("put null: expected 200, got %d", code)
	}
	_ = json.Unmarshal(env.Data, &updated)
	if updated.Brand != nil {
		t.Fatalf("expected brand cleared, got %q", *updated.Brand)
	}

	code, env = s.do(http.MethodDelete, "/api/items/1", "")
	if code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", code)
	}
	var msg struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(env.Data, &msg)
	if msg.Message != "Item deleted successfully" {
		t.Fatalf("unexpected delete message: %q", msg.Message)
	}

	code, env = s.do(http.MethodGet, "/api/items/1", "")
	if code != http.StatusNotFound || errMsg(env) != "Item not found: id=1" {
		t.Fatalf("expected 404 after delete, got %d %q", code, errMsg(env))
	}
}

func TestListItems(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodGet, "/api/items", "")
	if code != http.StatusOK || string(env.Data) != "[]" {
		t.Fatalf("expected empty list, got %d %s", code, env.Data)
	}

	s.create(`{"name":"Parka","category":"outer","color":"olive"}`)
	s.create(`{"name":"Tee","category":"tops","color":"white","brand":"Hanes"}`)

	var all []map[string]any
	_, env = s.do(http.MethodGet, "/api/items", "")
	_ = json.Unmarshal(env.Data, &all)
	if len(all) != 2 || all[0]["name"] != "Tee" {
		t.Fatalf("expected newest first, got %v", all)
	}
	if _, ok := all[0]["description"]; ok {
		t.Fatal("list entries must not carry description")
	}

	var outer []map[string]any
	_, env = s.do(http.MethodGet, "/api/items?category=outer", "")
	_ = json.Unmarshal(env.Data, &outer)
	if len(outer) != 1 || outer[0]["name"] != "Parka" {
		t.Fatalf("unexpected category filter result: %v", outer)
	}

	code, env = s.do(http.MethodGet, "/api/items?category=shoes", "")
	if code != http.StatusOK || string(env.Data) != "[]" {
		t.Fatalf("expected empty category list, got %d %s", code, env.Data)
	}

	code, env = s.do(http.MethodGet, "/api/items?category=hats", "")
	if code != http.StatusBadRequest || !strings.Contains(errMsg(env), "category") {
		t.Fatalf("expected 400 for invalid category, got %d %q", code, errMsg(env))
	}
}

func TestBadRequests(t *testing.T) {
	s := newTestServer(t)
	s.create(`{"name":"Tee","category":"tops","color":"white"}`)

	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		wantMsg string
	}{
		{"non-numeric id", http.MethodGet, "/api/items/abc", "", "Invalid id: must be a positive integer"},
		{"zero id", http.MethodDelete, "/api/items/0", "", "Invalid id: must be a positive integer"},
		{"negative id", http.MethodPut, "/api/items/-1", `{}`, "Invalid id: must be a positive integer"},
		{"malformed json", http.MethodPost, "/api/items", `{"name":`, "Invalid JSON in request body"},
		{"missing color", http.MethodPost, "/api/items", `{"name":"Tee","category":"tops"}`, "color: This field is required"},
		{"blank name", http.MethodPost, "/api/items", `{"name":"   ","category":"tops","color":"white"}`, "ItemName cannot be empty"},
		{"bad category on update", http.MethodPut, "/api/items/1", `{"category":"hats"}`, ""},
		{"blank color on update", http.MethodPut, "/api/items/1", `{"color":" "}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := s.do(tt.method, tt.path, tt.body)
			if code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (%s)", code, errMsg(env))
			}
			if env.Success {
				t.Fatal("expected success=false")
			}
			if tt.wantMsg != "" && errMsg(env) != tt.wantMsg {
				t.Fatalf("message: got %q, want %q", errMsg(env), tt.wantMsg)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		code, env := s.do(method, "/api/items/77", `{"name":"x"}`)
		if code != http.StatusNotFound || errMsg(env) != "Item not found: id=77" {
			t.Errorf("%s: expected 404, got %d %q", method, code, errMsg(env))
		}
	}
}

func TestDatabaseErrorIsHidden(t *testing.T) {
	s := newTestServer(t)
	s.store.FailWith(errors.New("pq: connection refused"))

	code, env := s.do(http.MethodGet, "/api/items", "")
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if errMsg(env) != "Internal server error" {
		t.Fatalf("cause leaked: %q", errMsg(env))
	}
}

func TestCategories(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodGet, "/api/categories", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var cats []struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}
	_ = json.Unmarshal(env.Data, &cats)
	if len(cats) != 5 || cats[0].Value != "outer" || cats[0].Label != "アウター" || cats[4].Value != "accessories" {
		t.Fatalf("unexpected categories: %+v", cats)
	}
}
