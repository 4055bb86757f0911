// Package style resolves enumerated component attributes into utility
// class strings.
//
// Every resolver is a total function: values from a table's declared set map
// to their documented classes, any other non-empty string passes through
// verbatim as a raw class override, and an empty value resolves to the
// caller's documented default. Components pick from the design-system tokens
// or supply fully custom styling without the resolver ever erroring.
package style
