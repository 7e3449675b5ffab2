package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/rail-ticket-query/kyfw"
	"github.com/theoremus-urban-solutions/rail-ticket-query/service"
)

const testScript = `var station_names ='@bjn|北京南|VNP|beijingnan|bjn|2|0357|北京|||` +
	`@bji|北京|BJP|beijing|bj|1|0357|北京|||` +
	`@shq|上海虹桥|AOH|shanghaihongqiao|shhq|3|0712|上海|||';`

// newTestRegistry bootstraps a service against a fake 12306.
func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/index/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<script src="/script/core/common/station_name_v10001.js"></script>`))
	})
	mux.HandleFunc("/script/core/common/station_name_v10001.js", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testScript))
	})
	mux.HandleFunc("/otn/lcQuery/init", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<script> var lc_search_url = '/lcquery/queryG';</script>`))
	})
	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	client := kyfw.NewClient(kyfw.Options{
		APIBase:        upstream.URL,
		SearchAPIBase:  upstream.URL,
		WebURL:         upstream.URL + "/index/",
		LCQueryInitURL: upstream.URL + "/otn/lcQuery/init",
		Timeout:        2 * time.Second,
	})
	svc, err := service.Bootstrap(context.Background(), client, service.Options{
		Now: func() time.Time { return time.Date(2025, 4, 30, 2, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	return NewRegistry(svc)
}

func TestRegistry_Call(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		tool    string
		args    string
		want    string
		wantErr error
	}{
		{"current date", "get-current-date", "", "2025-04-30", nil},
		{"city stations", "get-stations-code-in-city", `{"city":"上海"}`, `[{"station_code":"AOH","station_name":"上海虹桥"}]`, nil},
		{"telecode", "get-station-by-telecode", `{"stationTelecode":"NOPE"}`, "Error: Station not found. ", nil},
		{"past date", "get-tickets", `{"date":"2025-01-01","fromStation":"VNP","toStation":"AOH"}`,
			"Error: The date cannot be earlier than today.", nil},
		{"unknown tool", "get-weather", `{}`, "", ErrUnknownTool},
		{"unknown argument", "get-tickets", `{"dat":"2025-05-01"}`, "", ErrBadArguments},
		{"wrong argument type", "get-interline-tickets", `{"limitedNum":"ten"}`, "", ErrBadArguments},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Call(ctx, tt.tool, []byte(tt.args))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRegistry_Tools(t *testing.T) {
	reg := newTestRegistry(t)
	tools := reg.Tools()
	if len(tools) != 8 || tools[0].Name != "get-current-date" {
		t.Fatalf("unexpected tools: %+v", tools)
	}
	for _, ti := range tools {
		if !reg.Has(ti.Name) || ti.Description == "" {
			t.Errorf("tool %q is not fully registered", ti.Name)
		}
	}
}

func TestRegistry_RecoversPanics(t *testing.T) {
	reg := newTestRegistry(t)
	reg.add(tool{
		ToolInfo: ToolInfo{Name: "boom"},
		call:     func(context.Context, []byte) (string, error) { panic("boom") },
	})
	got, err := reg.Call(context.Background(), "boom", nil)
	if err != nil || got != internalFailure {
		t.Errorf("expected the panic to become %q, got %q, %v", internalFailure, got, err)
	}
}

func TestRouter(t *testing.T) {
	srv := New(newTestRegistry(t), 0)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantType   string
		wantBody   string
	}{
		{"health", http.MethodGet, "/api/health", "", http.StatusOK, "application/json", `"stations":4`},
		{"list tools", http.MethodGet, "/api/tools", "", http.StatusOK, "application/json", `"get-train-route-stations"`},
		{"call tool", http.MethodPost, "/api/tools/get-station-code-by-names", `{"stationNames":"北京站"}`,
			http.StatusOK, "text/plain", `"北京":{"station_code":"BJP","station_name":"北京"}`},
		{"unknown tool", http.MethodPost, "/api/tools/nope", `{}`, http.StatusNotFound, "application/json", "unknown tool"},
		{"bad arguments", http.MethodPost, "/api/tools/get-tickets", `{`, http.StatusBadRequest, "application/json", "malformed"},
		{"stations resource", http.MethodGet, "/api/resources/stations", "", http.StatusOK, "application/json", `"WEI":{`},
		{"wrong method", http.MethodGet, "/api/tools/get-tickets", "", http.StatusMethodNotAllowed, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			defer func() { _ = resp.Body.Close() }()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			if tt.wantType != "" && !strings.HasPrefix(resp.Header.Get("Content-Type"), tt.wantType) {
				t.Errorf("expected content type %s, got %s", tt.wantType, resp.Header.Get("Content-Type"))
			}
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(body), tt.wantBody) {
				t.Errorf("expected %q in body %q", tt.wantBody, body)
			}
		})
	}
}

func TestHealthPayload(t *testing.T) {
	srv := New(newTestRegistry(t), 0)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	var h healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &h); err != nil {
		t.Fatalf("health is not JSON: %v", err)
	}
	if h.Status != "ok" || h.Stations != 4 {
		t.Errorf("unexpected health: %+v", h)
	}
}
