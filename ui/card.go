package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/calyx-ui/calyx/icon"
	"github.com/calyx-ui/calyx/style"
)

// CardProps configures the card container. Sections (CardTitle, CardMedia,
// CardContent, CardFooter) are composed by the caller inside Content.
type CardProps struct {
	ID      string
	Color   string
	Variant string
	// Rounded (default small), Border (default extra_small), Padding
	// (default none) and Space (default small) accept tokens or raw
	// classes.
	Rounded string
	Border  string
	Padding string
	Space   string
	Class   string
	Attrs   templ.Attributes
	Content templ.Component
}

// Card renders the card container.
func Card(props CardProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		variant := props.Variant
		if variant == "" {
			variant = style.VariantDefault
		}
		border := ""
		if !style.Borderless(variant) {
			border = style.BorderWidth(props.Border, style.SizeExtraSmall)
		}

		m := newMarkup(ctx, w)
		m.open("div")
		m.attr("id", props.ID)
		m.attr("class", style.Classes(
			"card overflow-hidden",
			style.Theme(variant, props.Color),
			border,
			style.Rounded(props.Rounded, style.SizeSmall),
			style.Padding(props.Padding, style.SizeNone),
			style.SpaceY(props.Space, style.SizeSmall),
			props.Class,
		))
		m.bag(props.Attrs)
		m.gt()
		m.slot(props.Content)
		m.close("div")
		return m.done()
	})
}

var cardTitlePositions = map[string]string{
	"start":  "justify-start",
	"center": "justify-center",
	"end":    "justify-end",
}

// CardTitleProps configures the card heading region.
type CardTitleProps struct {
	Title string
	Icon  string
	// Position aligns the heading row: start (default), center or end.
	Position string
	// Size scales the heading text (default large).
	Size    string
	Padding string
	Class   string
	Attrs   templ.Attributes
	Content templ.Component
}

// CardTitle renders the heading region with an optional leading icon.
func CardTitle(props CardTitleProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.open("div")
		m.attr("class", style.Classes(
			"card-title flex items-center gap-2 font-semibold",
			style.Resolve(props.Position, cardTitlePositions, "start"),
			style.TextSize(props.Size, style.SizeLarge),
			style.Padding(props.Padding, style.SizeNone),
			props.Class,
		))
		m.bag(props.Attrs)
		m.gt()
		if props.Icon != "" {
			m.slot(icon.Lucide(props.Icon, "size-5 shrink-0"))
		}
		if props.Title != "" {
			m.open("h3")
			m.gt()
			m.text(props.Title)
			m.close("h3")
		}
		m.slot(props.Content)
		m.close("div")
		return m.done()
	})
}

// CardMediaProps configures the card media region.
type CardMediaProps struct {
	Src     string
	Alt     string
	Rounded string
	Class   string
	Attrs   templ.Attributes
}

// CardMedia renders the media region.
func CardMedia(props CardMediaProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.open("img")
		m.attr("src", props.Src)
		m.attr("alt", props.Alt)
		m.attr("loading", "lazy")
		m.attr("class", style.Classes(
			"card-media max-w-full",
			style.Rounded(props.Rounded, style.SizeNone),
			props.Class,
		))
		m.bag(props.Attrs)
		m.gt()
		return m.done()
	})
}

// CardContentProps configures the card body region.
type CardContentProps struct {
	// Padding defaults to medium, Space to small.
	Padding string
	Space   string
	Class   string
	Attrs   templ.Attributes
	Content templ.Component
}

// CardContent renders the body region.
func CardContent(props CardContentProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.open("div")
		m.attr("class", style.Classes(
			"card-content",
			style.Padding(props.Padding, style.SizeMedium),
			style.SpaceY(props.Space, style.SizeSmall),
			props.Class,
		))
		m.bag(props.Attrs)
		m.gt()
		m.slot(props.Content)
		m.close("div")
		return m.done()
	})
}

// CardFooterProps configures the card action region.
type CardFooterProps struct {
	Padding string
	Class   string
	Attrs   templ.Attributes
	Content templ.Component
}

// CardFooter renders the action region.
func CardFooter(props CardFooterProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.open("div")
		m.attr("class", style.Classes(
			"card-footer",
			style.Padding(props.Padding, style.SizeMedium),
			props.Class,
		))
		m.bag(props.Attrs)
		m.gt()
		m.slot(props.Content)
		m.close("div")
		return m.done()
	})
}
