package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	// Component microcopy
	message.SetString(lang, "ui.close", "Fechar")
	message.SetString(lang, "ui.dismiss", "Dispensar")
	message.SetString(lang, "ui.breadcrumb.label", "Trilha de navegação")

	// Preview server
	message.SetString(lang, "preview.title", "%s | Galeria de componentes")
	message.SetString(lang, "preview.heading", "Galeria de componentes")
	message.SetString(lang, "preview.intro", "Demonstração renderizada no servidor de cada componente e seus tokens de estilo.")
	message.SetString(lang, "preview.not_found", "Componente desconhecido.")

	// Component names
	message.SetString(lang, "preview.component.banner", "Banner")
	message.SetString(lang, "preview.component.breadcrumb", "Trilha de navegação")
	message.SetString(lang, "preview.component.card", "Cartão")
	message.SetString(lang, "preview.component.chat", "Balão de conversa")
	message.SetString(lang, "preview.component.gallery", "Galeria")
	message.SetString(lang, "preview.component.kbd", "Tecla")
	message.SetString(lang, "preview.component.modal", "Modal")
	message.SetString(lang, "preview.component.sidebar", "Barra lateral")
	message.SetString(lang, "preview.component.tooltip", "Dica flutuante")
}
