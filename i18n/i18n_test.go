package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagPrefersQueryParam(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil)
	r.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en-US"})
	r.Header.Set("Accept-Language", "en-US")

	tag, persist := ResolveTag(r)
	if tag != language.BrazilianPortuguese {
		t.Fatalf("tag = %v, want pt-BR", tag)
	}
	if !persist {
		t.Fatal("query-selected language should be persisted")
	}
}

func TestResolveTagFallsBackToCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: LangCookieName, Value: "pt-BR"})

	tag, persist := ResolveTag(r)
	if tag != language.BrazilianPortuguese {
		t.Fatalf("tag = %v, want pt-BR", tag)
	}
	if persist {
		t.Fatal("cookie-selected language should not be re-persisted")
	}
}

func TestResolveTagUsesAcceptLanguage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.8")

	tag, persist := ResolveTag(r)
	if tag != language.BrazilianPortuguese {
		t.Fatalf("tag = %v, want pt-BR", tag)
	}
	if persist {
		t.Fatal("accept-language should not be persisted")
	}
}

func TestResolveTagDefaultsWhenNothingMatches(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?lang=zz", nil)
	tag, persist := ResolveTag(r)
	if tag != Default() {
		t.Fatalf("tag = %v, want default", tag)
	}
	if persist {
		t.Fatal("unmatched language should not be persisted")
	}
}

func TestParseTagRejectsGarbage(t *testing.T) {
	if _, ok := ParseTag("!!"); ok {
		t.Fatal("expected parse failure for invalid tag")
	}
	if _, ok := ParseTag(""); ok {
		t.Fatal("expected parse failure for empty tag")
	}
}

func TestTFallsBackToKey(t *testing.T) {
	if got := T(nil, "ui.close"); got != "ui.close" {
		t.Fatalf("T(nil) = %q, want key fallback", got)
	}
	if got := T(nil, "hello %s", "world"); got != "hello world" {
		t.Fatalf("T(nil, args) = %q", got)
	}
}

func TestPrinterTranslatesMicrocopy(t *testing.T) {
	en := Printer(language.AmericanEnglish)
	if got := en.Sprintf("ui.close"); got != "Close" {
		t.Fatalf("en close = %q", got)
	}
	pt := Printer(language.BrazilianPortuguese)
	if got := pt.Sprintf("ui.close"); got != "Fechar" {
		t.Fatalf("pt close = %q", got)
	}
}

func TestSetLanguageCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetLanguageCookie(w, language.BrazilianPortuguese)
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].Name != LangCookieName || cookies[0].Value != "pt-BR" {
		t.Fatalf("cookie = %s=%s", cookies[0].Name, cookies[0].Value)
	}
}
