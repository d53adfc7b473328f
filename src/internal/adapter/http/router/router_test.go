package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubRegistrar struct {
	registered bool
}

func (s *stubRegistrar) RegisterRoutes(mux *http.ServeMux) {
	s.registered = true
	mux.HandleFunc("/sessions", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

func TestNewRegistersRoutes(t *testing.T) {
	stub := &stubRegistrar{}
	mux := New(stub)
	assert.True(t, stub.registered)

	tests := []struct {
		path string
		code int
	}{
		{path: "/", code: http.StatusOK},
		{path: "/missing", code: http.StatusNotFound},
		{path: "/swagger", code: http.StatusMovedPermanently},
		{path: "/swagger/", code: http.StatusOK},
		{path: "/swagger/openapi.json", code: http.StatusOK},
		{path: "/sessions", code: http.StatusTeapot},
	}
	for _, tt := range tests {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.code, rr.Code, tt.path)
	}
}

func TestIndexPage(t *testing.T) {
	rr := httptest.NewRecorder()
	New(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), `fetch("/sessions"`)
}
