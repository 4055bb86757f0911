package ui

import (
	"github.com/calyx-ui/calyx/i18n"
	"github.com/calyx-ui/calyx/icon"
	"github.com/calyx-ui/calyx/js"
)

// Position tokens for edge-anchored and directional components.
const (
	PositionLeft   = "left"
	PositionRight  = "right"
	PositionTop    = "top"
	PositionBottom = "bottom"
)

// writeDismiss renders a close control carrying a conceal command. The
// interaction runtime executes the data-action payload on click.
func writeDismiss(m *markup, loc i18n.Localizer, command js.Command, class string) {
	m.open("button")
	m.attr("type", "button")
	m.attr("class", class)
	m.attr("aria-label", i18n.T(loc, "ui.close"))
	m.attr("data-action", command.String())
	m.gt()
	m.slot(icon.Lucide("x", "size-4"))
	m.close("button")
}
