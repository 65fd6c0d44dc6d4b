package models

import "testing"

func TestValidTheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{"default", "default", true},
		{"ocean", "ocean", true},
		{"custom", "custom", true},
		{"mixed case", " Rose ", true},
		{"unknown", "galaxy", false},
		{"empty", "", false},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidTheme(tt.value); got != tt.want {
				t.Fatalf("ValidTheme(%q) = %t, want %t", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalizeTheme(t *testing.T) {
	t.Parallel()

	if got := NormalizeTheme("Forest"); got != "forest" {
		t.Fatalf("NormalizeTheme returned %q, want %q", got, "forest")
	}

	if got := NormalizeTheme("  invalid  "); got != DefaultTheme {
		t.Fatalf("NormalizeTheme returned %q, want %q", got, DefaultTheme)
	}
}

func TestBeforeSaveNormalizesIdentity(t *testing.T) {
	t.Parallel()

	v := &Visitor{Token: "abc", ThemeName: "SUNSET", ThemeMode: "dim"}
	if err := v.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave returned error: %v", err)
	}
	if v.ThemeName != "sunset" {
		t.Fatalf("ThemeName = %q, want sunset", v.ThemeName)
	}
	if v.ThemeMode != DefaultMode {
		t.Fatalf("ThemeMode = %q, want %q", v.ThemeMode, DefaultMode)
	}
}
