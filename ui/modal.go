package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/calyx-ui/calyx/i18n"
	"github.com/calyx-ui/calyx/icon"
	"github.com/calyx-ui/calyx/style"
)

// ModalProps configures an overlay dialog.
type ModalProps struct {
	// ID identifies the modal for ShowModal/HideModal commands and the
	// derived "-content" and "-title" element ids.
	ID    string
	Title string
	Icon  string
	Color string
	// Variant defaults to default; the dialog always renders as a box.
	Variant string
	// Size controls the dialog width (default medium), Rounded the corners
	// (default medium), Padding the dialog padding (default large) and
	// Space the content rhythm (default small).
	Size    string
	Rounded string
	Padding string
	Space   string
	// Show renders the modal visible at page load. The initial state feeds
	// the reveal/conceal toggle; a second reveal on a visible modal is a
	// no-op class-wise.
	Show  bool
	Class string
	Loc   i18n.Localizer
	Attrs templ.Attributes
	// Content fills the dialog below the heading row.
	Content templ.Component
}

// Modal renders an overlay dialog with a heading row and close control.
func Modal(props ModalProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		variant := props.Variant
		if variant == "" {
			variant = style.VariantDefault
		}
		border := ""
		if !style.Borderless(variant) {
			border = style.BorderWidth("", style.SizeExtraSmall)
		}

		// The hidden visual state lives on the wrapper because that is the
		// element the reveal command targets; its transition frames clear
		// these classes when the modal is shown.
		wrapper := "modal fixed inset-0 z-50"
		if !props.Show {
			wrapper += " hidden opacity-0 scale-95"
		}

		m := newMarkup(ctx, w)
		m.open("div")
		m.attr("id", props.ID)
		m.attr("class", style.Classes(wrapper, props.Class))
		m.attr("role", "dialog")
		m.attr("aria-modal", "true")
		if props.Title != "" {
			m.attr("aria-labelledby", props.ID+"-title")
		}
		m.bag(props.Attrs)
		m.gt()

		m.open("div")
		m.attr("class", "modal-overlay fixed inset-0 bg-black/60")
		m.attr("aria-hidden", "true")
		m.gt()
		m.close("div")

		m.open("div")
		m.attr("class", "modal-frame fixed inset-0 flex items-center justify-center p-4 overflow-y-auto")
		m.gt()

		m.open("section")
		m.attr("id", props.ID+"-content")
		m.attr("class", style.Classes(
			"modal-content relative w-full",
			style.MaxWidth(props.Size, style.SizeMedium),
			style.Theme(variant, props.Color),
			border,
			style.Rounded(props.Rounded, style.SizeMedium),
			style.Padding(props.Padding, style.SizeLarge),
			style.SpaceY(props.Space, style.SizeSmall),
		))
		m.gt()

		m.open("div")
		m.attr("class", "flex items-center justify-between gap-2")
		m.gt()
		if props.Icon != "" || props.Title != "" {
			m.open("div")
			m.attr("class", "flex items-center gap-2")
			m.gt()
			if props.Icon != "" {
				m.slot(icon.Lucide(props.Icon, "size-5 shrink-0"))
			}
			if props.Title != "" {
				m.open("h2")
				m.attr("id", props.ID+"-title")
				m.attr("class", "font-semibold")
				m.gt()
				m.text(props.Title)
				m.close("h2")
			}
			m.close("div")
		}
		writeDismiss(m, props.Loc, HideModal(props.ID), "shrink-0 ms-auto")
		m.close("div")

		m.slot(props.Content)

		m.close("section")
		m.close("div")
		m.close("div")
		return m.done()
	})
}
