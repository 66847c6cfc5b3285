package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/marketboost/core/internal/store/memory"
)

func newRouter(st *memory.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	NewHandler(st).RegisterRoutes(api)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateContactValid(t *testing.T) {
	st := memory.New()
	r := newRouter(st)

	w := postJSON(r, "/api/contact", `{"name":"Sam","email":"sam@example.com","message":"I would like a demo."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ID == "" {
		t.Fatal("expected assigned identifier in response")
	}
	if body.Name != "Sam" || body.Email != "sam@example.com" {
		t.Fatalf("response does not echo the submission: %+v", body)
	}

	stored, _ := st.GetContacts(context.Background())
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored submission, got %d", len(stored))
	}
}

func TestCreateContactInvalidEmail(t *testing.T) {
	st := memory.New()
	r := newRouter(st)

	w := postJSON(r, "/api/contact", `{"name":"Sam","email":"not-an-email","message":"I would like a demo."}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body struct {
		Message string `json:"message"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.Message != "Please enter a valid email address" {
		t.Fatalf("unexpected validation message: %q", body.Message)
	}

	stored, _ := st.GetContacts(context.Background())
	if len(stored) != 0 {
		t.Fatal("rejected submission must not be persisted")
	}
}

func TestCreateContactMessageLength(t *testing.T) {
	tests := []struct {
		name    string
		message string
		code    int
	}{
		{name: "below minimum", message: "too short", code: http.StatusBadRequest},
		{name: "exactly minimum", message: "exactly10!", code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(memory.New())
			w := postJSON(r, "/api/contact",
				`{"name":"Sam","email":"sam@example.com","message":"`+tt.message+`"}`)
			if w.Code != tt.code {
				t.Fatalf("expected %d, got %d: %s", tt.code, w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateContactMissingName(t *testing.T) {
	r := newRouter(memory.New())

	w := postJSON(r, "/api/contact", `{"email":"sam@example.com","message":"I would like a demo."}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListContactsNewestFirst(t *testing.T) {
	st := memory.New()
	r := newRouter(st)

	postJSON(r, "/api/contact", `{"name":"First","email":"a@example.com","message":"first message here"}`)
	postJSON(r, "/api/contact", `{"name":"Second","email":"b@example.com","message":"second message here"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var items []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(items))
	}
	if items[0].Name != "Second" || items[1].Name != "First" {
		t.Fatalf("expected newest first, got %+v", items)
	}
}
