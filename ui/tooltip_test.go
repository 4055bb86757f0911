package ui

import (
	"strings"
	"testing"
)

func TestTooltipDefaults(t *testing.T) {
	got := renderToString(t, Tooltip(TooltipProps{
		ID:      "tip",
		Trigger: textComponent("Hover me"),
		Content: textComponent("More detail"),
	}))
	for _, want := range []string{
		`id="tip"`,
		"group",
		"Hover me",
		`role="tooltip"`,
		"invisible opacity-0 group-hover:visible group-hover:opacity-100",
		"bottom-full",
		"bg-[#1E1E1E] text-white",
		"More detail",
		"tooltip-arrow",
		"rotate-45",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("tooltip missing %q in %q", want, got)
		}
	}
}

func TestTooltipPlacements(t *testing.T) {
	tests := []struct {
		position string
		expected string
	}{
		{position: "", expected: "bottom-full"},
		{position: PositionBottom, expected: "top-full"},
		{position: PositionLeft, expected: "right-full"},
		{position: PositionRight, expected: "left-full"},
	}
	for _, tc := range tests {
		got := renderToString(t, Tooltip(TooltipProps{Position: tc.position}))
		if !strings.Contains(got, tc.expected) {
			t.Fatalf("tooltip position %q missing %q: %q", tc.position, tc.expected, got)
		}
	}
}

func TestTooltipClickableKeepsFocusVisibility(t *testing.T) {
	got := renderToString(t, Tooltip(TooltipProps{Clickable: true}))
	if !strings.Contains(got, "group-focus-within:visible") {
		t.Fatalf("clickable tooltip missing focus visibility: %q", got)
	}
}

func TestTooltipArrowMatchesBubbleTheme(t *testing.T) {
	got := renderToString(t, Tooltip(TooltipProps{Color: "danger"}))
	theme := "bg-[#FFE6E6] text-[#E73B3B] border-[#E73B3B]"
	if strings.Count(got, theme) != 2 {
		t.Fatalf("expected bubble and arrow to share the theme, got %q", got)
	}
}
