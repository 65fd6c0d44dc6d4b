package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"vartheme/internal/theme"
	"vartheme/internal/views/components"
)

func renderWithDocument(t *testing.T, c templ.Component, setup func(context.Context, *theme.Store)) string {
	t.Helper()

	ctx := context.Background()
	doc := theme.NewDocument(theme.NewMemoryPersistence())
	active := doc.Active(ctx, nil)
	defer active.Unmount()
	if setup != nil {
		setup(ctx, doc.Store)
	}

	var buf bytes.Buffer
	if err := c.Render(theme.WithDocument(ctx, doc), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestHomeRendersLandingSections(t *testing.T) {
	out := renderWithDocument(t, Home(), nil)

	for _, token := range []string{
		`data-theme="default"`,
		"--background:#0A0A0F",
		"Zero Config",
		"CSS Variables",
		`hx-get="/fragments/stats"`,
		`data-nav-section="home" data-state="active"`,
	} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected %q in home page: %s", token, out)
		}
	}
	if got := strings.Count(out, `class="code-block"`); got != len(HomeSteps) {
		t.Fatalf("expected %d code blocks, got %d", len(HomeSteps), got)
	}
}

func TestHomeFollowsChosenTheme(t *testing.T) {
	out := renderWithDocument(t, Home(), func(ctx context.Context, s *theme.Store) {
		s.SetTheme(ctx, "ocean")
		s.SetMode(ctx, "light")
	})

	if !strings.Contains(out, `data-theme="ocean" data-mode="light"`) {
		t.Fatalf("expected ocean light root element: %s", out)
	}
	if !strings.Contains(out, `data-mode="light"`) || strings.Contains(out, `class="code-block" data-language="bash" data-mode="dark"`) {
		t.Fatalf("expected code blocks to follow light mode: %s", out)
	}
}

func TestDocsListsEverySection(t *testing.T) {
	out := renderWithDocument(t, Docs(), nil)

	for _, section := range DocSections {
		if !strings.Contains(out, `id="`+section.ID+`"`) {
			t.Fatalf("expected section %q in docs: %s", section.ID, out)
		}
		if !strings.Contains(out, `href="#`+section.ID+`"`) {
			t.Fatalf("expected sidebar link for %q", section.ID)
		}
	}
	for _, v := range LibraryVariables {
		if !strings.Contains(out, v.Name) {
			t.Fatalf("expected variable %q in docs", v.Name)
		}
	}
}

func TestNotFoundHostsGenerator(t *testing.T) {
	state := components.NewCustomizeState(theme.DefaultPreset(), theme.DefaultSliders())
	out := renderWithDocument(t, NotFound("/missing", state), nil)

	for _, token := range []string{"404", "PAGE NOT FOUND", `id="generator"`, `action="/missing"`, "#9952E0"} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected %q in not found page: %s", token, out)
		}
	}
}

func TestCustomizeRendersGenerator(t *testing.T) {
	state := components.NewCustomizeState(theme.DefaultPreset(), theme.DefaultSliders())
	out := renderWithDocument(t, Customize(state), nil)

	if !strings.Contains(out, `data-nav-section="customize" data-state="active"`) {
		t.Fatalf("expected customize nav link to be active: %s", out)
	}
	if !strings.Contains(out, `action="/preferences/custom"`) {
		t.Fatalf("expected apply form: %s", out)
	}
}
