package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	// Component microcopy
	message.SetString(lang, "ui.close", "Close")
	message.SetString(lang, "ui.dismiss", "Dismiss")
	message.SetString(lang, "ui.breadcrumb.label", "Breadcrumb")

	// Preview server
	message.SetString(lang, "preview.title", "%s | Component preview")
	message.SetString(lang, "preview.heading", "Component preview")
	message.SetString(lang, "preview.intro", "Server-rendered showcase of every component and its style tokens.")
	message.SetString(lang, "preview.not_found", "Unknown component.")

	// Component names
	message.SetString(lang, "preview.component.banner", "Banner")
	message.SetString(lang, "preview.component.breadcrumb", "Breadcrumb")
	message.SetString(lang, "preview.component.card", "Card")
	message.SetString(lang, "preview.component.chat", "Chat bubble")
	message.SetString(lang, "preview.component.gallery", "Gallery")
	message.SetString(lang, "preview.component.kbd", "Keyboard key")
	message.SetString(lang, "preview.component.modal", "Modal")
	message.SetString(lang, "preview.component.sidebar", "Sidebar")
	message.SetString(lang, "preview.component.tooltip", "Tooltip")
}
