package icon

// lucideSprite carries the subset of Lucide icons the kit's own chrome uses:
// dismiss controls, breadcrumb separators and status glyphs.
var lucideSprite = `<svg xmlns="http://www.w3.org/2000/svg" style="display:none" aria-hidden="true">` +
	symbol("x", `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`) +
	symbol("chevron-right", `<path d="m9 18 6-6-6-6"/>`) +
	symbol("chevron-left", `<path d="m15 18-6-6 6-6"/>`) +
	symbol("check", `<path d="M20 6 9 17l-5-5"/>`) +
	symbol("info", `<circle cx="12" cy="12" r="10"/><path d="M12 16v-4"/><path d="M12 8h.01"/>`) +
	symbol("circle-check", `<circle cx="12" cy="12" r="10"/><path d="m9 12 2 2 4-4"/>`) +
	symbol("circle-alert", `<circle cx="12" cy="12" r="10"/><line x1="12" x2="12" y1="8" y2="12"/><line x1="12" x2="12.01" y1="16" y2="16"/>`) +
	symbol("triangle-alert", `<path d="m21.73 18-8-14a2 2 0 0 0-3.48 0l-8 14A2 2 0 0 0 4 20h16a2 2 0 0 0 1.73-2Z"/><path d="M12 9v4"/><path d="M12 17h.01"/>`) +
	symbol("panel-left", `<rect width="18" height="18" x="3" y="3" rx="2"/><path d="M9 3v18"/>`) +
	symbol("sparkle", `<path d="M9.937 15.5A2 2 0 0 0 8.5 14.063l-6.135-1.582a.5.5 0 0 1 0-.962L8.5 9.936A2 2 0 0 0 9.937 8.5l1.582-6.135a.5.5 0 0 1 .963 0L14.063 8.5A2 2 0 0 0 15.5 9.937l6.135 1.581a.5.5 0 0 1 0 .964L15.5 14.063a2 2 0 0 0-1.437 1.437l-1.582 6.135a.5.5 0 0 1-.963 0z"/>`) +
	`</svg>`

func symbol(name, body string) string {
	return `<symbol id="` + lucideSymbolPrefix + name + `" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` + body + `</symbol>`
}
