package entitlement

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHasSubscription_DecodesResponse(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"has_subscription": true}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, WithHTTPClient(server.Client()))
	if !c.HasSubscription(context.Background(), 42) {
		t.Fatalf("expected subscription for user 42")
	}
	if gotPath != "/api/subscription/42" {
		t.Fatalf("path=%q, want /api/subscription/42", gotPath)
	}
}

func TestHasSubscription_ServerErrorDefaultsToFreeTier(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL, WithHTTPClient(server.Client()))
	if c.HasSubscription(context.Background(), 42) {
		t.Fatalf("server error must default to free tier")
	}
}

func TestHasSubscription_UnreachableDefaultsToFreeTier(t *testing.T) {
	t.Parallel()

	c := NewClient("http://127.0.0.1:1")
	if c.HasSubscription(context.Background(), 42) {
		t.Fatalf("unreachable API must default to free tier")
	}
}

func TestHasSubscription_NoBaseURL(t *testing.T) {
	t.Parallel()

	c := NewClient("")
	if c.HasSubscription(context.Background(), 42) {
		t.Fatalf("empty base URL must default to free tier")
	}
}

func TestUnlocked(t *testing.T) {
	t.Parallel()

	cases := []struct {
		lessonID   int
		subscribed bool
		want       bool
	}{
		{1, false, true},
		{1, true, true},
		{2, false, false},
		{2, true, true},
		{10, false, false},
		{10, true, true},
	}
	for _, tc := range cases {
		if got := Unlocked(tc.lessonID, tc.subscribed); got != tc.want {
			t.Fatalf("Unlocked(%d, %v)=%v, want %v", tc.lessonID, tc.subscribed, got, tc.want)
		}
	}
}
