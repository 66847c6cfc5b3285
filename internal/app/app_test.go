package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/marketboost/core/internal/config"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg, err := config.Load("does-not-exist.yml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	a, err := New(zap.NewNop(), cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(a.Shutdown)
	return a
}

func get(t *testing.T, a *App, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, req)
	return w
}

func TestNewSeedsDefaultContent(t *testing.T) {
	a := newTestApp(t)

	w := get(t, a, "/api/cms/features")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var features []struct {
		Icon  string `json:"icon"`
		Order int    `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &features); err != nil {
		t.Fatalf("decode features: %v", err)
	}
	if len(features) != 4 {
		t.Fatalf("expected 4 seeded features, got %d", len(features))
	}
	if features[0].Icon != "Laptop" || features[0].Order != 1 {
		t.Fatalf("unexpected first feature: %+v", features[0])
	}

	w = get(t, a, "/api/cms/hero")
	if strings.TrimSpace(w.Body.String()) == "null" {
		t.Fatal("expected seeded hero content")
	}

	w = get(t, a, "/api/cms/pricing")
	var plans []struct {
		Name    string `json:"name"`
		Popular bool   `json:"isPopular"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &plans); err != nil {
		t.Fatalf("decode plans: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("expected 3 seeded plans, got %d", len(plans))
	}
	if plans[1].Name != "Professional" || !plans[1].Popular {
		t.Fatalf("expected Professional as the popular plan, got %+v", plans[1])
	}
}

func TestUnknownRouteReturns404Envelope(t *testing.T) {
	a := newTestApp(t)

	w := get(t, a, "/api/nope")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body struct {
		Code int `json:"code"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.Code != http.StatusNotFound {
		t.Fatalf("expected error envelope, got %s", w.Body.String())
	}
}

func TestPing(t *testing.T) {
	a := newTestApp(t)

	w := get(t, a, "/api/ping")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
