package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID_GeneratesID(t *testing.T) {
	var ctxID string
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if ctxID == "" {
		t.Fatal("expected request ID in context")
	}
	if _, err := uuid.Parse(ctxID); err != nil {
		t.Errorf("expected generated ID to be a UUID, got %q: %v", ctxID, err)
	}
	if got := rec.Header().Get(RequestIDHeader); got != ctxID {
		t.Errorf("expected response header %q, got %q", ctxID, got)
	}
}

func TestRequestID_KeepsClientSuppliedID(t *testing.T) {
	var ctxID string
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "client-id-123")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if ctxID != "client-id-123" {
		t.Errorf("expected client-supplied ID to be kept, got %q", ctxID)
	}
	if got := rec.Header().Get(RequestIDHeader); got != "client-id-123" {
		t.Errorf("expected response header client-id-123, got %q", got)
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty string for missing request ID, got %q", got)
	}
}
