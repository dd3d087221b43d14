package pinclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/currentlyhq/currently/internal/app/ports"
)

func TestForwardPinSendsRequest(t *testing.T) {
	t.Parallel()

	var got ports.PinRequest
	var auth, contentType, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)

	client := New(server.URL+"/", "token-1")
	req := ports.PinRequest{
		ProjectID:   7,
		UserID:      42,
		ChannelID:   "C200",
		ChannelName: "general",
		MessageTS:   "1712345678.000100",
		Text:        "ship it friday",
		AuthorID:    "U900",
		AuthorName:  "jo",
	}
	if err := client.ForwardPin(context.Background(), req); err != nil {
		t.Fatalf("forward pin: %v", err)
	}

	if path != "/api/v1/pins" {
		t.Fatalf("unexpected path: %q", path)
	}
	if auth != "Bearer token-1" {
		t.Fatalf("unexpected authorization header: %q", auth)
	}
	if contentType != "application/json" {
		t.Fatalf("unexpected content type: %q", contentType)
	}
	if got != req {
		t.Fatalf("unexpected forwarded request: %+v", got)
	}
}

func TestForwardPinOmitsAuthorizationWithoutToken(t *testing.T) {
	t.Parallel()

	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)

	client := New(server.URL, "  ")
	if err := client.ForwardPin(context.Background(), ports.PinRequest{ProjectID: 1, UserID: 1, MessageTS: "1.0"}); err != nil {
		t.Fatalf("forward pin: %v", err)
	}
	if auth != "" {
		t.Fatalf("expected no authorization header, got %q", auth)
	}
}

func TestForwardPinSurfacesDownstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "You are not a member of that project."})
	}))
	t.Cleanup(server.Close)

	client := New(server.URL, "")
	err := client.ForwardPin(context.Background(), ports.PinRequest{ProjectID: 1, UserID: 1, MessageTS: "1.0"})
	if err == nil {
		t.Fatalf("expected error for forbidden response")
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %T: %v", err, err)
	}
	if reqErr.StatusCode != http.StatusForbidden {
		t.Fatalf("unexpected status: %d", reqErr.StatusCode)
	}
	if reqErr.DownstreamMessage() != "You are not a member of that project." {
		t.Fatalf("unexpected downstream message: %q", reqErr.DownstreamMessage())
	}
}

func TestForwardPinHandlesNonJSONErrorBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := New(server.URL, "")
	err := client.ForwardPin(context.Background(), ports.PinRequest{ProjectID: 1, UserID: 1, MessageTS: "1.0"})

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %T: %v", err, err)
	}
	if reqErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("unexpected status: %d", reqErr.StatusCode)
	}
	if reqErr.DownstreamMessage() != "" {
		t.Fatalf("expected empty downstream message, got %q", reqErr.DownstreamMessage())
	}
}
