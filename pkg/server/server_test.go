package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ballotviz/ballotviz/pkg/cache"
	"github.com/ballotviz/ballotviz/pkg/config"
	"github.com/ballotviz/ballotviz/pkg/pipeline"
)

const testCSV = "候選人姓名,推薦政黨,得票數\n" +
	"王小明,民主進步黨,18000\n" +
	"李大同,中國國民黨,22000\n" +
	"陳阿花,無,9000\n"

func testServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "2024.csv"), []byte(testCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
	return New(runner, config.Default(), dir, ":0", nil)
}

func TestHealthz(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestRenderSVG(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/v1/render?viz=parliament&format=svg&dataset=2024")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, body: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/svg+xml") {
		t.Errorf("Content-Type = %q", ct)
	}
	if h := resp.Header.Get("X-Cache"); h != "hit" && h != "miss" {
		t.Errorf("X-Cache = %q", h)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `class="seat"`) {
		t.Error("SVG body missing seats")
	}
}

func TestRenderJSON(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/v1/render?viz=bars&format=json&dataset=2024")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var layout struct {
		VizType string `json:"viz_type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&layout); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if layout.VizType != "bars" {
		t.Errorf("viz_type = %q, want bars", layout.VizType)
	}
}

func TestRenderErrors(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantCode   string
	}{
		{"missing dataset", "viz=parliament&dataset=absent", http.StatusNotFound, "NOT_FOUND"},
		{"bad viz type", "viz=tower&dataset=2024", http.StatusBadRequest, "INVALID_VIZ_TYPE"},
		{"bad format", "viz=parliament&format=png&dataset=2024", http.StatusBadRequest, "INVALID_FORMAT"},
		{"empty dataset name", "viz=parliament", http.StatusBadRequest, "INVALID_DATASET"},
		{"traversal name", "viz=parliament&dataset=..%2Fetc", http.StatusBadRequest, "INVALID_DATASET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/v1/render?" + tt.query)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var body errorBody
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("error body is not JSON: %v", err)
			}
			if body.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
			}
		})
	}
}

func TestRenderEmptyGridDataset(t *testing.T) {
	dir := t.TempDir()
	empty := `{"type":"FeatureCollection","features":[]}`
	if err := os.WriteFile(filepath.Join(dir, "empty.geojson"), []byte(empty), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
	srv := New(runner, config.Default(), dir, ":0", nil)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/v1/render?viz=gridmap&dataset=empty")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set("X-Request-ID", "upstream-id-1")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Request-ID"); got != "upstream-id-1" {
		t.Errorf("X-Request-ID = %q, want passthrough", got)
	}
}
