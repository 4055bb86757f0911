package style

var textSizes = map[string]string{
	SizeExtraSmall: "text-xs",
	SizeSmall:      "text-sm",
	SizeMedium:     "text-base",
	SizeLarge:      "text-lg",
	SizeExtraLarge: "text-xl",
}

var roundedSizes = map[string]string{
	SizeNone:       "rounded-none",
	SizeExtraSmall: "rounded-sm",
	SizeSmall:      "rounded",
	SizeMedium:     "rounded-md",
	SizeLarge:      "rounded-lg",
	SizeExtraLarge: "rounded-xl",
	SizeFull:       "rounded-full",
}

var paddingSizes = map[string]string{
	SizeNone:       "p-0",
	SizeExtraSmall: "p-1",
	SizeSmall:      "p-2",
	SizeMedium:     "p-3",
	SizeLarge:      "p-4",
	SizeExtraLarge: "p-5",
}

var spaceSizes = map[string]string{
	SizeExtraSmall: "space-y-2",
	SizeSmall:      "space-y-3",
	SizeMedium:     "space-y-4",
	SizeLarge:      "space-y-5",
	SizeExtraLarge: "space-y-6",
}

var borderSizes = map[string]string{
	SizeNone:       "border-0",
	SizeExtraSmall: "border",
	SizeSmall:      "border-2",
	SizeMedium:     "border-[3px]",
	SizeLarge:      "border-4",
	SizeExtraLarge: "border-[5px]",
}

var maxWidthSizes = map[string]string{
	SizeExtraSmall: "max-w-sm",
	SizeSmall:      "max-w-md",
	SizeMedium:     "max-w-lg",
	SizeLarge:      "max-w-xl",
	SizeExtraLarge: "max-w-2xl",
}

var panelWidthSizes = map[string]string{
	SizeExtraSmall: "w-48",
	SizeSmall:      "w-52",
	SizeMedium:     "w-60",
	SizeLarge:      "w-64",
	SizeExtraLarge: "w-72",
}

var gridCols = map[string]string{
	"1":  "grid-cols-1",
	"2":  "grid-cols-2",
	"3":  "grid-cols-3",
	"4":  "grid-cols-4",
	"5":  "grid-cols-5",
	"6":  "grid-cols-6",
	"7":  "grid-cols-7",
	"8":  "grid-cols-8",
	"9":  "grid-cols-9",
	"10": "grid-cols-10",
	"11": "grid-cols-11",
	"12": "grid-cols-12",
}

var gridGaps = map[string]string{
	SizeExtraSmall: "gap-1",
	SizeSmall:      "gap-2",
	SizeMedium:     "gap-3",
	SizeLarge:      "gap-4",
	SizeExtraLarge: "gap-5",
}

// TextSize resolves a text size token, defaulting to fallback when absent.
func TextSize(value, fallback string) string {
	return Resolve(value, textSizes, fallback)
}

// Rounded resolves a corner radius token.
func Rounded(value, fallback string) string {
	return Resolve(value, roundedSizes, fallback)
}

// Padding resolves a padding token.
func Padding(value, fallback string) string {
	return Resolve(value, paddingSizes, fallback)
}

// SpaceY resolves a vertical spacing token.
func SpaceY(value, fallback string) string {
	return Resolve(value, spaceSizes, fallback)
}

// BorderWidth resolves a border width token.
func BorderWidth(value, fallback string) string {
	return Resolve(value, borderSizes, fallback)
}

// MaxWidth resolves a dialog width token.
func MaxWidth(value, fallback string) string {
	return Resolve(value, maxWidthSizes, fallback)
}

// PanelWidth resolves a drawer width token.
func PanelWidth(value, fallback string) string {
	return Resolve(value, panelWidthSizes, fallback)
}

// GridCols resolves a column count ("1" through "12") to a grid class.
func GridCols(value, fallback string) string {
	return Resolve(value, gridCols, fallback)
}

// GridGap resolves a grid gap token.
func GridGap(value, fallback string) string {
	return Resolve(value, gridGaps, fallback)
}
