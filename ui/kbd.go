package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/calyx-ui/calyx/style"
)

// KbdProps configures an inline keyboard key.
type KbdProps struct {
	ID      string
	Color   string
	Variant string
	// Size scales the text (default extra_small), Rounded the corners
	// (default small, "rounded"), Border the border width (default
	// extra_small) and Padding the inner padding (default extra_small).
	Size    string
	Rounded string
	Border  string
	Padding string
	Class   string
	Attrs   templ.Attributes
	// Key is the literal key label; Content supersedes it when set.
	Key     string
	Content templ.Component
}

// Kbd renders a keyboard key element.
func Kbd(props KbdProps) templ.Component {
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
		m.open("kbd")
		m.attr("id", props.ID)
		m.attr("class", style.Classes(
			"kbd inline-flex items-center font-mono",
			style.Theme(variant, props.Color),
			border,
			style.Rounded(props.Rounded, style.SizeSmall),
			style.Padding(props.Padding, style.SizeExtraSmall),
			style.TextSize(props.Size, style.SizeExtraSmall),
			props.Class,
		))
		m.bag(props.Attrs)
		m.gt()
		if props.Content != nil {
			m.slot(props.Content)
		} else {
			m.text(props.Key)
		}
		m.close("kbd")
		return m.done()
	})
}
