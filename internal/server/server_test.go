package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/errors"
	"github.com/dominauta/padring/pkg/pipeline"
)

const testDeviceJSON = `{
  "name": "amp",
  "outline": {"min": {"x": -100, "y": -100}, "max": {"x": 100, "y": 100}},
  "ports": {
    "in":  {"center": {"x": -100, "y": 0}, "class": "electrical"},
    "out": {"center": {"x": 100, "y": 0}, "class": "electrical"}
  }
}`

// memStore is an in-memory Store for handler tests.
type memStore struct {
	layouts map[string]*circuit.Layout
}

func newMemStore() *memStore {
	return &memStore{layouts: map[string]*circuit.Layout{}}
}

func (m *memStore) Save(_ context.Context, l *circuit.Layout) (string, error) {
	if l.ID == "" {
		l.ID = "aaaabbbbccccdddd"
	}
	m.layouts[l.ID] = l
	return l.ID, nil
}

func (m *memStore) Get(_ context.Context, id string) (*circuit.Layout, error) {
	l, ok := m.layouts[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeLayoutNotFound, "layout %s not found", id)
	}
	return l, nil
}

func (m *memStore) Close(context.Context) error { return nil }

func testServer(t *testing.T) (*Server, *memStore) {
	t.Helper()
	st := newMemStore()
	s := New(Config{
		Runner: pipeline.NewRunner(nil, nil, nil),
		Store:  st,
	})
	return s, st
}

func postFanout(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/fanout", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHandleFanout(t *testing.T) {
	s, st := testServer(t)

	body := `{"device": ` + testDeviceJSON + `, "formats": ["svg", "json"]}`
	w := postFanout(t, s, body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		LayoutID  string            `json:"layout_id"`
		Device    string            `json:"device"`
		Pads      int               `json:"pads"`
		Routes    int               `json:"routes"`
		Artifacts map[string][]byte `json:"artifacts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Device != "amp" || resp.Pads != 2 || resp.Routes != 2 {
		t.Errorf("response = %+v", resp)
	}
	if !strings.Contains(string(resp.Artifacts["svg"]), "<svg") {
		t.Error("svg artifact missing")
	}
	if resp.LayoutID == "" {
		t.Error("layout not persisted")
	}
	if _, ok := st.layouts[resp.LayoutID]; !ok {
		t.Error("layout missing from store")
	}
}

func TestHandleFanoutNoStore(t *testing.T) {
	s, st := testServer(t)

	body := `{"device": ` + testDeviceJSON + `, "no_store": true}`
	w := postFanout(t, s, body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if len(st.layouts) != 0 {
		t.Error("no_store run should not persist")
	}
}

func TestHandleFanoutErrors(t *testing.T) {
	s, _ := testServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed body",
			body:       `{"device":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_FORMAT",
		},
		{
			name:       "device path rejected",
			body:       `{"device_path": "amp.json"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "missing device",
			body:       `{"formats": ["svg"]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "invalid device",
			body:       `{"device": {"name": "", "outline": {"min": {"x": 0, "y": 0}, "max": {"x": 1, "y": 1}}, "ports": {}}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_DEVICE",
		},
		{
			name:       "unknown pad port",
			body:       `{"device": ` + testDeviceJSON + `, "pad_port": "nope"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postFanout(t, s, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.wantStatus, w.Body.String())
			}

			var resp errorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", resp.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleGetLayout(t *testing.T) {
	s, st := testServer(t)
	st.layouts["deadbeefdeadbeef"] = &circuit.Layout{ID: "deadbeefdeadbeef", Device: "amp", Baseline: 22}

	req := httptest.NewRequest(http.MethodGet, "/v1/layouts/deadbeefdeadbeef", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var l circuit.Layout
	if err := json.Unmarshal(w.Body.Bytes(), &l); err != nil {
		t.Fatalf("decode layout: %v", err)
	}
	if l.Device != "amp" || l.Baseline != 22 {
		t.Errorf("layout = %+v", l)
	}
}

func TestHandleGetLayoutNotFound(t *testing.T) {
	s, _ := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/layouts/deadbeefdeadbeef", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestHandleGetLayoutBadID(t *testing.T) {
	s, _ := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/layouts/not%20a%20valid%20id!", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleListPads(t *testing.T) {
	s, _ := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/pads", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Pads []struct {
			Name    string   `json:"name"`
			Default bool     `json:"default"`
			Ports   []string `json:"ports"`
		} `json:"pads"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode pads: %v", err)
	}
	if len(resp.Pads) == 0 || resp.Pads[0].Name != "dc" || !resp.Pads[0].Default {
		t.Errorf("pads = %+v", resp.Pads)
	}
}

func TestHandleHealth(t *testing.T) {
	s, _ := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
	if body["version"] == "" {
		t.Error("health response should carry the build version")
	}
}
