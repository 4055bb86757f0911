package style

import "testing"

func TestResolveMapsDeclaredValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "extra small", value: SizeExtraSmall, expected: "p-1"},
		{name: "small", value: SizeSmall, expected: "p-2"},
		{name: "medium", value: SizeMedium, expected: "p-3"},
		{name: "large", value: SizeLarge, expected: "p-4"},
		{name: "extra large", value: SizeExtraLarge, expected: "p-5"},
		{name: "none", value: SizeNone, expected: "p-0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Padding(tc.value, SizeSmall)
			if got != tc.expected {
				t.Fatalf("Padding(%q) = %q, want %q", tc.value, got, tc.expected)
			}
		})
	}
}

func TestResolvePassesUnknownStringsThroughVerbatim(t *testing.T) {
	got := Padding("my-custom-pad", SizeSmall)
	if got != "my-custom-pad" {
		t.Fatalf("Padding pass-through = %q, want %q", got, "my-custom-pad")
	}
	got = Rounded("rounded-[11px]", SizeSmall)
	if got != "rounded-[11px]" {
		t.Fatalf("Rounded pass-through = %q, want %q", got, "rounded-[11px]")
	}
}

func TestResolveFallsBackToDefaultWhenAbsent(t *testing.T) {
	if got := Padding("", SizeSmall); got != "p-2" {
		t.Fatalf("omitted padding = %q, want %q", got, "p-2")
	}
	if got := Rounded("", SizeSmall); got != "rounded" {
		t.Fatalf("omitted rounded = %q, want %q", got, "rounded")
	}
	if got := Padding("   ", SizeSmall); got != "p-2" {
		t.Fatalf("blank padding = %q, want %q", got, "p-2")
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	inputs := []string{"", SizeLarge, "custom-class"}
	for _, input := range inputs {
		first := BorderWidth(input, SizeExtraSmall)
		second := BorderWidth(input, SizeExtraSmall)
		if first != second {
			t.Fatalf("BorderWidth(%q) not stable: %q then %q", input, first, second)
		}
	}
}

func TestClassesSkipsEmptyFragments(t *testing.T) {
	got := Classes("banner", "", "  ", "p-2", "text-sm")
	if got != "banner p-2 text-sm" {
		t.Fatalf("Classes = %q", got)
	}
}

func TestSizeTables(t *testing.T) {
	tests := []struct {
		name     string
		resolve  func(string, string) string
		value    string
		expected string
	}{
		{name: "text extra small", resolve: TextSize, value: SizeExtraSmall, expected: "text-xs"},
		{name: "text extra large", resolve: TextSize, value: SizeExtraLarge, expected: "text-xl"},
		{name: "rounded full", resolve: Rounded, value: SizeFull, expected: "rounded-full"},
		{name: "rounded none", resolve: Rounded, value: SizeNone, expected: "rounded-none"},
		{name: "space medium", resolve: SpaceY, value: SizeMedium, expected: "space-y-4"},
		{name: "border medium", resolve: BorderWidth, value: SizeMedium, expected: "border-[3px]"},
		{name: "max width large", resolve: MaxWidth, value: SizeLarge, expected: "max-w-xl"},
		{name: "panel width medium", resolve: PanelWidth, value: SizeMedium, expected: "w-60"},
		{name: "grid three columns", resolve: GridCols, value: "3", expected: "grid-cols-3"},
		{name: "grid gap small", resolve: GridGap, value: SizeSmall, expected: "gap-2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.resolve(tc.value, SizeMedium)
			if got != tc.expected {
				t.Fatalf("resolve(%q) = %q, want %q", tc.value, got, tc.expected)
			}
		})
	}
}
