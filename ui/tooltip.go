package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/calyx-ui/calyx/style"
)

var tooltipPlacements = map[string]string{
	PositionTop:    "bottom-full left-1/2 -translate-x-1/2 mb-2",
	PositionBottom: "top-full left-1/2 -translate-x-1/2 mt-2",
	PositionLeft:   "right-full top-1/2 -translate-y-1/2 mr-2",
	PositionRight:  "left-full top-1/2 -translate-y-1/2 ml-2",
}

var tooltipArrows = map[string]string{
	PositionTop:    "top-full left-1/2 -translate-x-1/2 -mt-1",
	PositionBottom: "bottom-full left-1/2 -translate-x-1/2 -mb-1",
	PositionLeft:   "left-full top-1/2 -translate-y-1/2 -ml-1",
	PositionRight:  "right-full top-1/2 -translate-y-1/2 -mr-1",
}

// TooltipProps configures a hover-revealed bubble anchored to a trigger.
type TooltipProps struct {
	ID    string
	Color string
	// Variant defaults to default; transparent treatments render text-only
	// bubbles.
	Variant string
	// Position places the bubble relative to the trigger: top (default),
	// bottom, left or right.
	Position string
	// Size scales the text (default extra_small), Rounded the corners
	// (default small) and Padding the bubble padding (default extra_small).
	Size    string
	Rounded string
	Padding string
	// Clickable keeps the bubble visible while the trigger holds focus.
	Clickable bool
	Class     string
	Attrs     templ.Attributes
	// Trigger is the always-visible anchor; Content fills the bubble.
	Trigger templ.Component
	Content templ.Component
}

// Tooltip renders a trigger and its hover bubble.
func Tooltip(props TooltipProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		variant := props.Variant
		if variant == "" {
			variant = style.VariantDefault
		}
		color := props.Color
		if color == "" {
			color = style.ColorDark
		}
		position := props.Position
		if position == "" {
			position = PositionTop
		}

		visibility := "invisible opacity-0 group-hover:visible group-hover:opacity-100"
		if props.Clickable {
			visibility += " group-focus-within:visible group-focus-within:opacity-100"
		}

		m := newMarkup(ctx, w)
		m.open("div")
		m.attr("id", props.ID)
		m.attr("class", style.Classes("tooltip-wrapper relative inline-block w-fit group", props.Class))
		m.bag(props.Attrs)
		m.gt()

		m.slot(props.Trigger)

		m.open("div")
		m.attr("role", "tooltip")
		m.attr("class", style.Classes(
			"tooltip absolute z-10 w-max transition-opacity duration-200",
			visibility,
			style.Resolve(position, tooltipPlacements, PositionTop),
			style.Theme(variant, color),
			style.Rounded(props.Rounded, style.SizeSmall),
			style.Padding(props.Padding, style.SizeExtraSmall),
			style.TextSize(props.Size, style.SizeExtraSmall),
		))
		m.gt()
		m.slot(props.Content)
		m.open("span")
		m.attr("class", style.Classes(
			"tooltip-arrow absolute size-2 rotate-45",
			style.Resolve(position, tooltipArrows, PositionTop),
			style.Theme(variant, color),
		))
		m.attr("aria-hidden", "true")
		m.gt()
		m.close("span")
		m.close("div")

		m.close("div")
		return m.done()
	})
}
