package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/calyx-ui/calyx/style"
)

// Chat bubble flow positions.
const (
	ChatNormal  = "normal"
	ChatFlipped = "flipped"
)

// ChatProps configures a chat bubble with optional avatar, meta and status
// regions.
type ChatProps struct {
	ID      string
	Color   string
	Variant string
	// Size scales the text (default small), Rounded the bubble corners
	// (default large), Padding the bubble padding (default small) and
	// Space the rhythm between meta, bubble and status (default
	// extra_small).
	Size    string
	Rounded string
	Padding string
	Space   string
	// Position flips the bubble to the other side of the conversation:
	// normal (default) or flipped.
	Position string
	Class    string
	Attrs    templ.Attributes
	// Avatar renders beside the bubble; Meta above it (sender, timestamp);
	// Status below it (delivery state). Absent slots render nothing.
	Avatar  templ.Component
	Meta    templ.Component
	Status  templ.Component
	Content templ.Component
}

// Chat renders a chat bubble.
func Chat(props ChatProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		variant := props.Variant
		if variant == "" {
			variant = style.VariantDefault
		}
		flipped := props.Position == ChatFlipped

		direction := "flex-row"
		tail := "rounded-bl-none"
		if flipped {
			direction = "flex-row-reverse"
			tail = "rounded-br-none"
		}

		m := newMarkup(ctx, w)
		m.open("div")
		m.attr("id", props.ID)
		m.attr("class", style.Classes(
			"chat flex items-end gap-2",
			direction,
			style.TextSize(props.Size, style.SizeSmall),
			props.Class,
		))
		m.bag(props.Attrs)
		m.gt()

		m.slot(props.Avatar)

		m.open("div")
		m.attr("class", style.Classes(
			"chat-body",
			style.SpaceY(props.Space, style.SizeExtraSmall),
		))
		m.gt()
		if props.Meta != nil {
			m.open("div")
			m.attr("class", "chat-meta text-xs opacity-70")
			m.gt()
			m.slot(props.Meta)
			m.close("div")
		}
		m.open("div")
		m.attr("class", style.Classes(
			"chat-bubble w-fit",
			style.Theme(variant, props.Color),
			style.Rounded(props.Rounded, style.SizeLarge),
			tail,
			style.Padding(props.Padding, style.SizeSmall),
		))
		m.gt()
		m.slot(props.Content)
		m.close("div")
		if props.Status != nil {
			m.open("div")
			m.attr("class", "chat-status text-xs opacity-70")
			m.gt()
			m.slot(props.Status)
			m.close("div")
		}
		m.close("div")

		m.close("div")
		return m.done()
	})
}
