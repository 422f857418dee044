package recaptcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestVerify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if got := r.PostFormValue("secret"); got != "test-secret" {
			t.Errorf("expected secret forwarded, got %q", got)
		}
		if got := r.PostFormValue("response"); got != "client-token" {
			t.Errorf("expected token forwarded, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "score": 0.9, "action": "submit"}`))
	}))
	defer server.Close()

	client := NewClient("test-secret", zerolog.Nop()).WithEndpoint(server.URL)
	result := client.Verify(context.Background(), "client-token")

	if !result.Success {
		t.Error("expected success")
	}
	if result.Score != 0.9 {
		t.Errorf("expected score 0.9, got %v", result.Score)
	}
	if result.Action != "submit" {
		t.Errorf("expected action submit, got %q", result.Action)
	}
}

func TestVerify_FailClosed(t *testing.T) {
	t.Run("MalformedResponse", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := NewClient("test-secret", zerolog.Nop()).WithEndpoint(server.URL)
		result := client.Verify(context.Background(), "token")
		if result.Success || result.Score != 0 {
			t.Errorf("expected fail-closed result, got %+v", result)
		}
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient("test-secret", zerolog.Nop()).WithEndpoint(server.URL)
		result := client.Verify(context.Background(), "token")
		if result.Success || result.Score != 0 {
			t.Errorf("expected fail-closed result, got %+v", result)
		}
	})
}
