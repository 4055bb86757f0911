package preview

import (
	"github.com/a-h/templ"

	"github.com/calyx-ui/calyx/i18n"
	"github.com/calyx-ui/calyx/icon"
	"github.com/calyx-ui/calyx/style"
	"github.com/calyx-ui/calyx/ui"
)

// showcaseOrder fixes the index listing order.
var showcaseOrder = []string{
	"banner",
	"breadcrumb",
	"card",
	"chat",
	"gallery",
	"kbd",
	"modal",
	"sidebar",
	"tooltip",
}

// showcases maps the URL component name to its showcase builder.
var showcases = map[string]func(loc i18n.Localizer) templ.Component{
	"banner":     bannerShowcase,
	"breadcrumb": breadcrumbShowcase,
	"card":       cardShowcase,
	"chat":       chatShowcase,
	"gallery":    galleryShowcase,
	"kbd":        kbdShowcase,
	"modal":      modalShowcase,
	"sidebar":    sidebarShowcase,
	"tooltip":    tooltipShowcase,
}

// section groups one demonstration under a small heading.
func section(title string, parts ...templ.Component) templ.Component {
	children := append([]templ.Component{
		el("h2", "text-lg font-semibold", text(title)),
	}, parts...)
	return el("section", "space-y-4", children...)
}

func bannerShowcase(loc i18n.Localizer) templ.Component {
	palette := make([]templ.Component, 0, 4)
	for _, color := range []string{style.ColorSuccess, style.ColorWarning, style.ColorDanger, style.ColorInfo} {
		palette = append(palette, ui.Banner(ui.BannerProps{
			Color: color,
			// Static keeps the grid examples in flow instead of pinned
			// to the viewport edge.
			Class:   "static",
			Loc:     loc,
			Content: text("A " + color + " notice."),
		}))
	}
	live := ui.Banner(ui.BannerProps{
		ID:          "banner-demo",
		Color:       style.ColorPrimary,
		Position:    ui.PositionBottom,
		Hidden:      true,
		Dismissable: true,
		Loc:         loc,
		Content:     text("Revealed by the button below."),
	})
	return el("div", "space-y-10",
		section("Palette", el("div", "space-y-3", palette...)),
		section("Reveal and conceal",
			live,
			trigger("Show banner", ui.ShowBanner("banner-demo").String()),
		),
	)
}

func breadcrumbShowcase(loc i18n.Localizer) templ.Component {
	trail := []ui.BreadcrumbItem{
		{Label: "Home", Link: "/", Icon: "panel-left"},
		{Label: "Components", Link: "/"},
		{Label: "Breadcrumb"},
	}
	return el("div", "space-y-10",
		section("Default", ui.Breadcrumb(ui.BreadcrumbProps{Loc: loc, Items: trail})),
		section("Custom separator and size", ui.Breadcrumb(ui.BreadcrumbProps{
			Loc:       loc,
			Size:      style.SizeMedium,
			Space:     style.SizeMedium,
			Separator: "chevron-left",
			Items:     trail,
		})),
	)
}

func cardShowcase(loc i18n.Localizer) templ.Component {
	full := ui.Card(ui.CardProps{
		Variant: style.VariantShadow,
		Class:   "max-w-sm",
		Content: templ.Join(
			ui.CardMedia(ui.CardMediaProps{Src: "https://picsum.photos/seed/card/640/360", Alt: "Sample media"}),
			ui.CardTitle(ui.CardTitleProps{Title: "Expedition notes", Icon: "sparkle", Padding: style.SizeMedium}),
			ui.CardContent(ui.CardContentProps{Content: text("Composable sections stack inside the card container.")}),
			ui.CardFooter(ui.CardFooterProps{Content: trigger("Open modal", ui.ShowModal("card-modal").String())}),
		),
	})
	variants := make([]templ.Component, 0, 3)
	for _, variant := range []string{style.VariantOutline, style.VariantUnbordered, style.VariantGradient} {
		variants = append(variants, ui.Card(ui.CardProps{
			Variant: variant,
			Color:   style.ColorMisc,
			Content: ui.CardContent(ui.CardContentProps{Content: text("The " + variant + " treatment.")}),
		}))
	}
	modal := ui.Modal(ui.ModalProps{
		ID:      "card-modal",
		Title:   "From the card footer",
		Loc:     loc,
		Content: text("Opened by the footer action."),
	})
	return el("div", "space-y-10",
		section("Composition", full),
		section("Variants", el("div", "grid grid-cols-3 gap-4", variants...)),
		modal,
	)
}

func chatShowcase(loc i18n.Localizer) templ.Component {
	avatar := el("div", "flex size-8 items-center justify-center rounded-full bg-[#4363EC] text-white",
		icon.Lucide("sparkle", "size-4"))
	received := ui.Chat(ui.ChatProps{
		Color:   style.ColorLight,
		Avatar:  avatar,
		Meta:    text("Ada, 09:12"),
		Content: text("Did the gallery page render for you?"),
	})
	sent := ui.Chat(ui.ChatProps{
		Color:    style.ColorPrimary,
		Position: ui.ChatFlipped,
		Meta:     text("You, 09:13"),
		Status:   text("Delivered"),
		Content:  text("Yes, all twelve columns."),
	})
	return el("div", "space-y-10",
		section("Conversation", el("div", "max-w-md space-y-4", received, sent)),
	)
}

func galleryShowcase(loc i18n.Localizer) templ.Component {
	items := make([]ui.GalleryMedia, 0, 6)
	for _, seed := range []string{"aster", "briar", "cedar", "dahlia", "elm", "fern"} {
		items = append(items, ui.GalleryMedia{
			Src:    "https://picsum.photos/seed/" + seed + "/400/300",
			Alt:    "Placeholder " + seed,
			Shadow: true,
		})
	}
	return el("div", "space-y-10",
		section("Three columns", ui.Gallery(ui.GalleryProps{Items: items})),
		section("Two columns, large gap", ui.Gallery(ui.GalleryProps{
			Cols:  "2",
			Gap:   style.SizeExtraLarge,
			Items: items[:4],
		})),
	)
}

func kbdShowcase(loc i18n.Localizer) templ.Component {
	rows := make([]templ.Component, 0, len(style.Variants()))
	for _, variant := range style.Variants() {
		keys := make([]templ.Component, 0, len(style.Colors()))
		for _, color := range style.Colors() {
			keys = append(keys, ui.Kbd(ui.KbdProps{Variant: variant, Color: color, Key: color}))
		}
		rows = append(rows, el("div", "flex flex-wrap items-center gap-2",
			append([]templ.Component{el("span", "w-28 text-sm text-gray-500", text(variant))}, keys...)...))
	}
	combo := el("p", "flex items-center gap-1 text-sm",
		text("Press "),
		ui.Kbd(ui.KbdProps{Key: "Ctrl"}),
		text(" + "),
		ui.Kbd(ui.KbdProps{Key: "K"}),
		text(" to search."),
	)
	return el("div", "space-y-10",
		section("Every variant and color", el("div", "space-y-3", rows...)),
		section("Inline combination", combo),
	)
}

func modalShowcase(loc i18n.Localizer) templ.Component {
	modal := ui.Modal(ui.ModalProps{
		ID:    "modal-demo",
		Title: "Confirm action",
		Icon:  "triangle-alert",
		Loc:   loc,
		Content: templ.Join(
			text("Revealing locks body scroll and moves focus into the dialog."),
			el("div", "flex justify-end gap-2 pt-2",
				trigger("Close", ui.HideModal("modal-demo").String()),
			),
		),
	})
	return el("div", "space-y-10",
		section("Overlay dialog",
			trigger("Open modal", ui.ShowModal("modal-demo").String()),
			modal,
		),
	)
}

func sidebarShowcase(loc i18n.Localizer) templ.Component {
	left := ui.Sidebar(ui.SidebarProps{
		ID:          "sidebar-left",
		Dismissable: true,
		Loc:         loc,
		Content: templ.Join(
			el("p", "font-semibold", text("Navigation")),
			el("p", "text-sm text-gray-600", text("Slides in from the left edge.")),
		),
	})
	right := ui.Sidebar(ui.SidebarProps{
		ID:          "sidebar-right",
		Position:    ui.PositionRight,
		Color:       style.ColorDark,
		Dismissable: true,
		Loc:         loc,
		Content:     el("p", "text-sm", text("Slides in from the right edge.")),
	})
	return el("div", "space-y-10",
		section("Drawers",
			el("div", "flex gap-2",
				trigger("Open left drawer", ui.ShowSidebar("sidebar-left").String()),
				trigger("Open right drawer", ui.ShowSidebar("sidebar-right").String()),
			),
			left,
			right,
		),
	)
}

func tooltipShowcase(loc i18n.Localizer) templ.Component {
	positions := make([]templ.Component, 0, 4)
	for _, position := range []string{ui.PositionTop, ui.PositionBottom, ui.PositionLeft, ui.PositionRight} {
		positions = append(positions, ui.Tooltip(ui.TooltipProps{
			Position: position,
			Trigger:  ui.Kbd(ui.KbdProps{Key: position}),
			Content:  text("Shown on the " + position + " side."),
		}))
	}
	clickable := ui.Tooltip(ui.TooltipProps{
		Color:     style.ColorInfo,
		Clickable: true,
		Trigger:   trigger("Focus me", ""),
		Content:   text("Stays visible while the trigger holds focus."),
	})
	return el("div", "space-y-10",
		section("Placements", el("div", "flex items-center justify-center gap-12 py-16", positions...)),
		section("Clickable", el("div", "py-8", clickable)),
	)
}
