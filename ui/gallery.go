package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/calyx-ui/calyx/style"
)

// GalleryMedia is one image in a gallery grid.
type GalleryMedia struct {
	Src string
	Alt string
	// Rounded accepts a corner token or raw classes (default small).
	Rounded string
	Shadow  bool
	Class   string
	Attrs   templ.Attributes
}

// GalleryProps configures a responsive media grid.
type GalleryProps struct {
	ID string
	// Cols is the column count "1" through "12" (default "3"); raw grid
	// classes pass through.
	Cols string
	// Gap spaces the grid cells (default small).
	Gap   string
	Class string
	Attrs templ.Attributes
	Items []GalleryMedia
}

// Gallery renders a grid of media items.
func Gallery(props GalleryProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.open("div")
		m.attr("id", props.ID)
		m.attr("class", style.Classes(
			"gallery grid",
			style.GridCols(props.Cols, "3"),
			style.GridGap(props.Gap, style.SizeSmall),
			props.Class,
		))
		m.bag(props.Attrs)
		m.gt()
		for _, item := range props.Items {
			shadow := ""
			if item.Shadow {
				shadow = "shadow-md"
			}
			m.open("img")
			m.attr("src", item.Src)
			m.attr("alt", item.Alt)
			m.attr("loading", "lazy")
			m.attr("class", style.Classes(
				"gallery-media w-full h-auto object-cover",
				style.Rounded(item.Rounded, style.SizeSmall),
				shadow,
				item.Class,
			))
			m.bag(item.Attrs)
			m.gt()
		}
		m.close("div")
		return m.done()
	})
}
