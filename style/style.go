package style

import "strings"

// Enumerated size tokens shared by every component attribute that scales.
const (
	SizeExtraSmall = "extra_small"
	SizeSmall      = "small"
	SizeMedium     = "medium"
	SizeLarge      = "large"
	SizeExtraLarge = "extra_large"
	SizeNone       = "none"
	SizeFull       = "full"
)

// Resolve maps an enumerated attribute value to its utility classes.
//
// Values present in table resolve to their mapped classes. Any other
// non-empty value is returned unchanged so callers can author raw class
// overrides. An empty or blank value resolves to table[fallback].
func Resolve(value string, table map[string]string, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return table[fallback]
	}
	if classes, ok := table[value]; ok {
		return classes
	}
	return value
}

// Classes joins non-empty class fragments with single spaces.
func Classes(fragments ...string) string {
	parts := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		parts = append(parts, fragment)
	}
	return strings.Join(parts, " ")
}
