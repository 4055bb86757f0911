package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/calyx-ui/calyx/i18n"
	"github.com/calyx-ui/calyx/style"
)

// SidebarProps configures an edge-anchored drawer.
type SidebarProps struct {
	// ID identifies the drawer for ShowSidebar/HideSidebar commands.
	ID      string
	Color   string
	Variant string
	// Size controls the drawer width (default medium), Border the edge
	// border width (default extra_small) and Padding the inner padding
	// (default medium).
	Size    string
	Border  string
	Padding string
	// Position anchors the drawer to the left (default) or right edge.
	Position string
	// Show renders the drawer on canvas at page load.
	Show bool
	// Dismissable adds a close control wired to HideSidebar.
	Dismissable bool
	Class       string
	Loc         i18n.Localizer
	Attrs       templ.Attributes
	Content     templ.Component
}

// Sidebar renders a drawer that slides on and off canvas.
func Sidebar(props SidebarProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		variant := props.Variant
		if variant == "" {
			variant = style.VariantDefault
		}
		position := props.Position
		if position == "" {
			position = PositionLeft
		}

		edge := "left-0"
		borderEdge := "border-e"
		offCanvas := "-translate-x-full"
		if position == PositionRight {
			edge = "right-0"
			borderEdge = "border-s"
			offCanvas = "translate-x-full"
		}
		state := offCanvas
		if props.Show {
			state = "translate-x-0"
		}
		border := ""
		if !style.Borderless(variant) {
			border = style.Classes(borderEdge, style.BorderWidth(props.Border, style.SizeExtraSmall))
		}

		m := newMarkup(ctx, w)
		m.open("aside")
		m.attr("id", props.ID)
		m.attr("class", style.Classes(
			"sidebar fixed inset-y-0 z-40 transform transition-transform duration-300",
			edge,
			state,
			style.PanelWidth(props.Size, style.SizeMedium),
			style.Theme(variant, props.Color),
			border,
			style.Padding(props.Padding, style.SizeMedium),
			props.Class,
		))
		m.bag(props.Attrs)
		m.gt()
		if props.Dismissable {
			m.open("div")
			m.attr("class", "flex justify-end")
			m.gt()
			writeDismiss(m, props.Loc, HideSidebar(props.ID, position), "shrink-0")
			m.close("div")
		}
		m.slot(props.Content)
		m.close("aside")
		return m.done()
	})
}
