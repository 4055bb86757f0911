package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/calyx-ui/calyx/i18n"
	"github.com/calyx-ui/calyx/icon"
	"github.com/calyx-ui/calyx/style"
)

// BreadcrumbItem is one entry in a breadcrumb trail. Items with a Link
// render as anchors; the rest render as plain text.
type BreadcrumbItem struct {
	Label string
	Link  string
	Icon  string
	// Attrs is merged verbatim onto the item element.
	Attrs templ.Attributes
}

// BreadcrumbProps configures an ordered navigation trail.
type BreadcrumbProps struct {
	ID string
	// Color selects a text palette (transparent treatment, no box).
	Color string
	// Size scales the text (default small).
	Size string
	// Space controls the gap between entries (default extra_small).
	Space string
	// Separator names the icon rendered between entries
	// (default chevron-right).
	Separator string
	Class     string
	Loc       i18n.Localizer
	Attrs     templ.Attributes
	Items     []BreadcrumbItem
}

var breadcrumbGaps = map[string]string{
	style.SizeExtraSmall: "gap-1",
	style.SizeSmall:      "gap-1.5",
	style.SizeMedium:     "gap-2",
	style.SizeLarge:      "gap-2.5",
	style.SizeExtraLarge: "gap-3",
}

// Breadcrumb renders a navigation trail with len(Items)-1 separators.
func Breadcrumb(props BreadcrumbProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		color := props.Color
		if color == "" {
			color = style.ColorDark
		}
		separator := props.Separator
		if separator == "" {
			separator = "chevron-right"
		}

		m := newMarkup(ctx, w)
		m.open("nav")
		m.attr("id", props.ID)
		m.attr("aria-label", i18n.T(props.Loc, "ui.breadcrumb.label"))
		m.attr("class", style.Classes(
			"breadcrumb",
			style.Theme(style.VariantTransparent, color),
			style.TextSize(props.Size, style.SizeSmall),
			props.Class,
		))
		m.bag(props.Attrs)
		m.gt()

		m.open("ol")
		m.attr("class", style.Classes(
			"flex items-center flex-wrap",
			style.Resolve(props.Space, breadcrumbGaps, style.SizeExtraSmall),
		))
		m.gt()
		for i, item := range props.Items {
			if i > 0 {
				m.open("li")
				m.attr("class", "breadcrumb-separator shrink-0 opacity-60")
				m.attr("aria-hidden", "true")
				m.gt()
				m.slot(icon.Lucide(separator, "size-3.5"))
				m.close("li")
			}
			writeBreadcrumbItem(m, item)
		}
		m.close("ol")

		m.close("nav")
		return m.done()
	})
}

func writeBreadcrumbItem(m *markup, item BreadcrumbItem) {
	m.open("li")
	m.attr("class", "flex items-center gap-1")
	m.bag(item.Attrs)
	m.gt()
	if item.Icon != "" {
		m.slot(icon.Lucide(item.Icon, "size-3.5 shrink-0"))
	}
	if item.Link != "" {
		m.open("a")
		m.attr("href", item.Link)
		m.attr("class", "hover:underline")
		m.gt()
		m.text(item.Label)
		m.close("a")
	} else {
		m.open("span")
		m.gt()
		m.text(item.Label)
		m.close("span")
	}
	m.close("li")
}
