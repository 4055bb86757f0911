package icon

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const lucideSymbolPrefix = "lucide-"

// Normalize canonicalizes an icon name for symbol lookup.
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "-")
	return strings.ReplaceAll(name, " ", "-")
}

// SymbolID returns the sprite symbol id for a Lucide icon name.
func SymbolID(name string) string {
	return lucideSymbolPrefix + Normalize(name)
}

// Lucide renders an inline icon referencing the page sprite.
//
// Unknown names still render a symbol reference; whether the symbol exists
// is the embedding page's concern.
func Lucide(name, class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<svg class="`)
		b.WriteString(templ.EscapeString(class))
		b.WriteString(`" aria-hidden="true" focusable="false"><use href="#`)
		b.WriteString(templ.EscapeString(SymbolID(name)))
		b.WriteString(`"></use></svg>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Sprite returns the embedded sprite markup for the icons the kit uses.
func Sprite() templ.Component {
	return templ.Raw(lucideSprite)
}
