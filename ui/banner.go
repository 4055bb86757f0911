package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/calyx-ui/calyx/i18n"
	"github.com/calyx-ui/calyx/style"
)

var bannerPositions = map[string]string{
	PositionTop:    "top-0",
	PositionBottom: "bottom-0",
}

// BannerProps configures a positioned notice bar.
type BannerProps struct {
	// ID identifies the banner for reveal/conceal commands.
	ID string
	// Color selects the palette; Variant the visual treatment family.
	Color   string
	Variant string
	// Size scales the text (default small), Border the border width
	// (default extra_small), Rounded the corners (default none), Padding
	// the inner padding (default small, "p-2") and Space the vertical
	// rhythm of stacked content (default small).
	Size    string
	Border  string
	Rounded string
	Padding string
	Space   string
	// Position anchors the bar to the top (default) or bottom edge.
	Position string
	// Hidden renders the banner concealed; ShowBanner reveals it later.
	Hidden bool
	// Dismissable adds a close control wired to HideBanner.
	Dismissable bool
	// Class appends verbatim utility classes to the root element.
	Class string
	Loc   i18n.Localizer
	// Attrs is merged verbatim onto the root element.
	Attrs   templ.Attributes
	Content templ.Component
}

// Banner renders a fixed notice bar spanning the viewport edge.
func Banner(props BannerProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		variant := props.Variant
		if variant == "" {
			variant = style.VariantDefault
		}

		border := ""
		if !style.Borderless(variant) {
			border = style.BorderWidth(props.Border, style.SizeExtraSmall)
		}
		hidden := ""
		if props.Hidden {
			hidden = "hidden"
		}
		classes := style.Classes(
			"banner fixed z-40 inset-x-0",
			style.Resolve(props.Position, bannerPositions, PositionTop),
			style.Theme(variant, props.Color),
			border,
			style.Rounded(props.Rounded, style.SizeNone),
			style.Padding(props.Padding, style.SizeSmall),
			style.TextSize(props.Size, style.SizeSmall),
			style.SpaceY(props.Space, style.SizeSmall),
			hidden,
			props.Class,
		)

		m := newMarkup(ctx, w)
		m.open("div")
		m.attr("id", props.ID)
		m.attr("class", classes)
		m.attr("role", "alert")
		m.bag(props.Attrs)
		m.gt()

		m.open("div")
		m.attr("class", "flex items-center justify-between gap-2")
		m.gt()
		m.slot(props.Content)
		if props.Dismissable {
			writeDismiss(m, props.Loc, HideBanner(props.ID), "shrink-0")
		}
		m.close("div")

		m.close("div")
		return m.done()
	})
}
