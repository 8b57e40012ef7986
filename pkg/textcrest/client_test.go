package textcrest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New("test-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client, srv
}

func TestNewRejectsMissingAPIKey(t *testing.T) {
	for _, key := range []string{"", "   ", "\t"} {
		if _, err := New(key); err != ErrMissingAPIKey {
			t.Fatalf("New(%q) error = %v, want ErrMissingAPIKey", key, err)
		}
	}
}

func TestNewAcceptsAnyNonEmptyAPIKey(t *testing.T) {
	client, err := New("k")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if client.BaseURL() != DefaultBaseURL {
		t.Fatalf("BaseURL = %s, want %s", client.BaseURL(), DefaultBaseURL)
	}
}

func TestNewStripsTrailingSlashOnce(t *testing.T) {
	cases := map[string]string{
		"https://api.textcrest.com/v1/":  "https://api.textcrest.com/v1",
		"https://api.textcrest.com/v1":   "https://api.textcrest.com/v1",
		"https://api.textcrest.com/v1//": "https://api.textcrest.com/v1/",
	}
	for in, want := range cases {
		client, err := New("k", WithBaseURL(in))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if got := client.BaseURL(); got != want {
			t.Fatalf("BaseURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRequestsCarryAuthHeaders(t *testing.T) {
	var auth, contentType string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	})

	if _, err := client.Balance(context.Background()); err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if auth != "ApiKey test-key" {
		t.Fatalf("Authorization = %q", auth)
	}
	if contentType != "application/json" {
		t.Fatalf("Content-Type = %q", contentType)
	}
}
