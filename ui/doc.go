// Package ui renders the kit's presentation components.
//
// Every component is a pure function from an immutable props value to a
// templ.Component: no shared state, no side effects, identical inputs yield
// identical markup. Enumerated style attributes are plain strings resolved
// through the style package's two-tier tables, so callers can pick
// design-system tokens or pass raw utility classes straight through. The
// Attrs bag on every props struct is merged verbatim onto the component's
// root element for ARIA and data-* extensibility.
//
// Interactive components (banner, modal, sidebar) pair with Show*/Hide*
// command constructors whose js.Command encodings drive the client-side
// interaction runtime.
package ui
