package preview

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"

	"github.com/calyx-ui/calyx/i18n"
)

type contextKey string

const (
	printerKey contextKey = "preview.printer"
	langKey    contextKey = "preview.lang"
)

// withLanguage resolves the request locale and stores a message printer and
// the resolved tag in the request context. Explicit ?lang selections are
// persisted as a cookie.
func withLanguage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag, persist := i18n.ResolveTag(r)
		if persist {
			i18n.SetLanguageCookie(w, tag)
		}
		ctx := context.WithValue(r.Context(), printerKey, i18n.Printer(tag))
		ctx = context.WithValue(ctx, langKey, tag.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// localizer returns the request's message printer, falling back to the
// default language when the middleware did not run.
func localizer(r *http.Request) i18n.Localizer {
	if printer, ok := r.Context().Value(printerKey).(*message.Printer); ok {
		return printer
	}
	return i18n.Printer(i18n.Default())
}

// pageLang returns the resolved language tag for the document lang attribute.
func pageLang(r *http.Request) string {
	if lang, ok := r.Context().Value(langKey).(string); ok {
		return lang
	}
	return i18n.Default().String()
}

// withTelemetry opens a span per request. Spans are no-ops unless tracing
// was enabled at startup.
func withTelemetry(next http.Handler) http.Handler {
	tracer := otel.Tracer("github.com/calyx-ui/calyx/internal/preview")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
