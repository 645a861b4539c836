package theme

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_Sync(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("POST /api/theme", NewSyncHandler(DefaultCookieOptions()))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	got, err := NewClient(srv.URL+"/", srv.Client()).Sync(context.Background(), Dark)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if got != Dark {
		t.Errorf("server cookie = %q, want dark", got)
	}
}

func TestClient_SyncRejected(t *testing.T) {
	srv := httptest.NewServer(NewSyncHandler(DefaultCookieOptions()))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).Sync(context.Background(), Theme("blue"))
	if err == nil {
		t.Fatal("expected error for rejected theme")
	}
	if !strings.Contains(err.Error(), "invalid theme") {
		t.Errorf("err = %v, want server message", err)
	}
}
