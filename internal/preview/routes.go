package preview

import (
	"log"
	"net/http"

	"github.com/calyx-ui/calyx/htmx"
	"github.com/calyx-ui/calyx/i18n"
)

// NewHandler wires the preview routes with language and telemetry middleware.
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handleIndex)
	mux.HandleFunc("GET /components/{name}", handleComponent)
	mux.HandleFunc("/", handleNotFound)
	return withTelemetry(withLanguage(mux))
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	loc := localizer(r)
	title := i18n.T(loc, "preview.heading")
	content := indexContent(loc)
	if err := htmx.RenderPage(w, r, content, layout(loc, pageLang(r), title, content), htmx.TitleTag(title)); err != nil {
		log.Printf("render index: %v", err)
	}
}

func handleComponent(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	showcase, ok := showcases[name]
	if !ok {
		handleNotFound(w, r)
		return
	}

	loc := localizer(r)
	label := i18n.T(loc, "preview.component."+name)
	title := i18n.T(loc, "preview.title", label)
	content := componentContent(loc, name, showcase(loc))
	if err := htmx.RenderPage(w, r, content, layout(loc, pageLang(r), title, content), htmx.TitleTag(label)); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	loc := localizer(r)
	title := i18n.T(loc, "preview.heading")
	content := notFoundContent(loc)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := htmx.RenderPage(w, r, content, layout(loc, pageLang(r), title, content), ""); err != nil {
		log.Printf("render not found: %v", err)
	}
}
