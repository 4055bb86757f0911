package ui

import (
	"time"

	"github.com/calyx-ui/calyx/js"
)

// Reveal and conceal transitions are mirror images: each conceal starts from
// the paired reveal's final frame and ends on its starting frame, so a
// reveal followed by a conceal restores the original hidden class set with
// nothing left behind.
var (
	bannerReveal = js.Transition{
		Base: "transition-all transform ease-out",
		From: "opacity-0 -translate-y-4",
		To:   "opacity-100 translate-y-0",
	}
	bannerConceal = js.Transition{
		Base: "transition-all transform ease-in",
		From: "opacity-100 translate-y-0",
		To:   "opacity-0 -translate-y-4",
	}

	modalReveal = js.Transition{
		Base: "transition-all transform ease-out",
		From: "opacity-0 scale-95",
		To:   "opacity-100 scale-100",
	}
	modalConceal = js.Transition{
		Base: "transition-all transform ease-in",
		From: "opacity-100 scale-100",
		To:   "opacity-0 scale-95",
	}
)

// ShowBanner reveals the identified banner.
func ShowBanner(id string) js.Command {
	return js.Show("#"+id,
		js.Duration(300*time.Millisecond),
		js.WithTransition(bannerReveal),
	)
}

// HideBanner conceals the identified banner.
func HideBanner(id string) js.Command {
	return js.Hide("#"+id,
		js.Duration(200*time.Millisecond),
		js.WithTransition(bannerConceal),
	)
}

// ShowModal reveals the identified modal, suppresses body scroll while it is
// visible and moves focus into the dialog.
func ShowModal(id string) js.Command {
	return js.Show("#"+id,
		js.Display("flex"),
		js.Duration(300*time.Millisecond),
		js.WithTransition(modalReveal),
	).
		AddClass("overflow-y-hidden", js.To("body")).
		FocusFirst("#" + id + "-content")
}

// HideModal conceals the identified modal, restores body scroll and returns
// focus to the element focused before the reveal.
func HideModal(id string) js.Command {
	return js.Hide("#"+id,
		js.Duration(200*time.Millisecond),
		js.WithTransition(modalConceal),
	).
		RemoveClass("overflow-y-hidden", js.To("body")).
		PopFocus()
}

// ShowSidebar slides the identified drawer on canvas.
func ShowSidebar(id string) js.Command {
	return js.RemoveClass("-translate-x-full translate-x-full", js.To("#"+id)).
		AddClass("translate-x-0", js.To("#"+id), js.Duration(300*time.Millisecond))
}

// HideSidebar slides the identified drawer off canvas toward its position
// edge ("left" or "right").
func HideSidebar(id, position string) js.Command {
	off := "-translate-x-full"
	if position == PositionRight {
		off = "translate-x-full"
	}
	return js.RemoveClass("translate-x-0", js.To("#"+id)).
		AddClass(off, js.To("#"+id), js.Duration(300*time.Millisecond))
}
