package icon

import (
	"context"
	"strings"
	"testing"
)

func render(t *testing.T, name, class string) string {
	t.Helper()
	var b strings.Builder
	if err := Lucide(name, class).Render(context.Background(), &b); err != nil {
		t.Fatalf("Lucide(%q) render: %v", name, err)
	}
	return b.String()
}

func TestLucideRendersSymbolReference(t *testing.T) {
	got := render(t, "x", "size-4 shrink-0")
	if !strings.Contains(got, `href="#lucide-x"`) {
		t.Fatalf("expected symbol reference, got %q", got)
	}
	if !strings.Contains(got, `class="size-4 shrink-0"`) {
		t.Fatalf("expected class attribute, got %q", got)
	}
	if !strings.Contains(got, `aria-hidden="true"`) {
		t.Fatalf("expected aria-hidden, got %q", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Chevron_Right", want: "chevron-right"},
		{in: "  x  ", want: "x"},
		{in: "circle check", want: "circle-check"},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSymbolID(t *testing.T) {
	if got := SymbolID("chevron-right"); got != "lucide-chevron-right" {
		t.Fatalf("SymbolID = %q", got)
	}
}

func TestSpriteContainsKitSymbols(t *testing.T) {
	var b strings.Builder
	if err := Sprite().Render(context.Background(), &b); err != nil {
		t.Fatalf("Sprite render: %v", err)
	}
	got := b.String()
	for _, name := range []string{"x", "chevron-right", "info", "circle-check", "triangle-alert"} {
		if !strings.Contains(got, `id="lucide-`+name+`"`) {
			t.Fatalf("sprite missing symbol %q", name)
		}
	}
}
