// Package htmx detects HTMX-initiated requests and renders either a page
// fragment or the full document accordingly.
package htmx

import (
	"bytes"
	"html"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeader is the HTMX request header used to detect partial updates.
const RequestHeader = "HX-Request"

// IsRequest reports whether the request was initiated by HTMX.
func IsRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeader), "true")
}

// TitleTag formats an escaped `<title>` element for fragment responses so
// HTMX can swap the document title alongside the content.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// RenderPage renders fragment for HTMX requests and full otherwise. When the
// fragment response carries no title element, title is prepended so swaps
// keep the document title in sync. A nil fragment falls back to full.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment, full templ.Component, title string) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if IsRequest(r) {
		target := fragment
		if target == nil {
			target = full
		}
		if target == nil {
			return nil
		}
		var body bytes.Buffer
		if err := target.Render(r.Context(), &body); err != nil {
			return err
		}
		rendered := body.Bytes()
		if title != "" && !bytes.Contains(bytes.ToLower(rendered), []byte("<title")) {
			if _, err := w.Write([]byte(title)); err != nil {
				return err
			}
		}
		_, err := w.Write(rendered)
		return err
	}

	if full == nil {
		full = fragment
	}
	if full == nil {
		return nil
	}
	return full.Render(r.Context(), w)
}
