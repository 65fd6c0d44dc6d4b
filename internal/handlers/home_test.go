package handlers

import (
	"net/http"
	"strings"
	"testing"
)

func TestHomeRendersDefaultTheme(t *testing.T) {
	sm := withTestSessionManager(t)
	c := newClient(t, sm, routes)

	rr := c.get("/")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `data-theme="default" data-mode="dark"`) {
		t.Fatalf("expected default dark document: %s", body)
	}
	if !strings.Contains(body, "--primary:#A78BFA") {
		t.Fatalf("expected default dark primary on root element: %s", body)
	}
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	sm := withTestSessionManager(t)
	c := newClient(t, sm, routes)

	rr := c.get("/no/such/page?preset=Ocean")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "PAGE NOT FOUND") || !strings.Contains(body, `id="generator"`) {
		t.Fatalf("expected generator on not found page: %s", body)
	}
	if !strings.Contains(body, `data-state="active">`) {
		t.Fatalf("expected a selected preset: %s", body)
	}
}

func TestDocsRendersSections(t *testing.T) {
	sm := withTestSessionManager(t)
	c := newClient(t, sm, routes)

	rr := c.get("/docs")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `id="tailwind"`) {
		t.Fatalf("expected docs sections: %s", rr.Body.String())
	}
}

func TestHomeRejectsPost(t *testing.T) {
	sm := withTestSessionManager(t)
	c := newClient(t, sm, routes)

	rr := c.post("/", nil)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rr.Code)
	}
}
