package style

// Color theme tokens. Each maps to a fixed semantic palette.
const (
	ColorWhite     = "white"
	ColorPrimary   = "primary"
	ColorSecondary = "secondary"
	ColorDark      = "dark"
	ColorSuccess   = "success"
	ColorWarning   = "warning"
	ColorDanger    = "danger"
	ColorInfo      = "info"
	ColorLight     = "light"
	ColorMisc      = "misc"
	ColorDawn      = "dawn"
)

// Variant tokens. Each names a visual treatment family.
const (
	VariantDefault     = "default"
	VariantOutline     = "outline"
	VariantTransparent = "transparent"
	VariantShadow      = "shadow"
	VariantUnbordered  = "unbordered"
	VariantGradient    = "gradient"
)

type themeKey struct {
	variant string
	color   string
}

var themes = map[themeKey]string{
	{VariantDefault, ColorWhite}:     "bg-white text-[#3E3E3E] border-[#DADADA]",
	{VariantDefault, ColorPrimary}:   "bg-[#4363EC] text-white border-[#2441de]",
	{VariantDefault, ColorSecondary}: "bg-[#6B6E7C] text-white border-[#877C7C]",
	{VariantDefault, ColorDark}:      "bg-[#1E1E1E] text-white border-[#050404]",
	{VariantDefault, ColorSuccess}:   "bg-[#ECFEF3] text-[#047857] border-[#6EE7B7]",
	{VariantDefault, ColorWarning}:   "bg-[#FFF8E6] text-[#FF8B08] border-[#FF8B08]",
	{VariantDefault, ColorDanger}:    "bg-[#FFE6E6] text-[#E73B3B] border-[#E73B3B]",
	{VariantDefault, ColorInfo}:      "bg-[#E5F0FF] text-[#004FC4] border-[#004FC4]",
	{VariantDefault, ColorLight}:     "bg-[#E3E7F1] text-[#707483] border-[#707483]",
	{VariantDefault, ColorMisc}:      "bg-[#FFE6FF] text-[#52059C] border-[#52059C]",
	{VariantDefault, ColorDawn}:      "bg-[#FFECDA] text-[#4D4137] border-[#4D4137]",

	{VariantOutline, ColorWhite}:     "text-white border-white",
	{VariantOutline, ColorPrimary}:   "text-[#4363EC] border-[#4363EC]",
	{VariantOutline, ColorSecondary}: "text-[#6B6E7C] border-[#6B6E7C]",
	{VariantOutline, ColorDark}:      "text-[#1E1E1E] border-[#1E1E1E]",
	{VariantOutline, ColorSuccess}:   "text-[#047857] border-[#047857]",
	{VariantOutline, ColorWarning}:   "text-[#FF8B08] border-[#FF8B08]",
	{VariantOutline, ColorDanger}:    "text-[#E73B3B] border-[#E73B3B]",
	{VariantOutline, ColorInfo}:      "text-[#004FC4] border-[#004FC4]",
	{VariantOutline, ColorLight}:     "text-[#707483] border-[#707483]",
	{VariantOutline, ColorMisc}:      "text-[#52059C] border-[#52059C]",
	{VariantOutline, ColorDawn}:      "text-[#4D4137] border-[#4D4137]",

	{VariantTransparent, ColorWhite}:     "text-white",
	{VariantTransparent, ColorPrimary}:   "text-[#4363EC]",
	{VariantTransparent, ColorSecondary}: "text-[#6B6E7C]",
	{VariantTransparent, ColorDark}:      "text-[#1E1E1E]",
	{VariantTransparent, ColorSuccess}:   "text-[#047857]",
	{VariantTransparent, ColorWarning}:   "text-[#FF8B08]",
	{VariantTransparent, ColorDanger}:    "text-[#E73B3B]",
	{VariantTransparent, ColorInfo}:      "text-[#004FC4]",
	{VariantTransparent, ColorLight}:     "text-[#707483]",
	{VariantTransparent, ColorMisc}:      "text-[#52059C]",
	{VariantTransparent, ColorDawn}:      "text-[#4D4137]",

	{VariantShadow, ColorWhite}:     "bg-white text-[#3E3E3E] border-[#DADADA] shadow",
	{VariantShadow, ColorPrimary}:   "bg-[#4363EC] text-white border-[#4363EC] shadow",
	{VariantShadow, ColorSecondary}: "bg-[#6B6E7C] text-white border-[#6B6E7C] shadow",
	{VariantShadow, ColorDark}:      "bg-[#1E1E1E] text-white border-[#1E1E1E] shadow",
	{VariantShadow, ColorSuccess}:   "bg-[#ECFEF3] text-[#047857] border-[#ECFEF3] shadow",
	{VariantShadow, ColorWarning}:   "bg-[#FFF8E6] text-[#FF8B08] border-[#FFF8E6] shadow",
	{VariantShadow, ColorDanger}:    "bg-[#FFE6E6] text-[#E73B3B] border-[#FFE6E6] shadow",
	{VariantShadow, ColorInfo}:      "bg-[#E5F0FF] text-[#004FC4] border-[#E5F0FF] shadow",
	{VariantShadow, ColorLight}:     "bg-[#E3E7F1] text-[#707483] border-[#E3E7F1] shadow",
	{VariantShadow, ColorMisc}:      "bg-[#FFE6FF] text-[#52059C] border-[#FFE6FF] shadow",
	{VariantShadow, ColorDawn}:      "bg-[#FFECDA] text-[#4D4137] border-[#FFECDA] shadow",

	{VariantUnbordered, ColorWhite}:     "bg-white text-[#3E3E3E] border-transparent",
	{VariantUnbordered, ColorPrimary}:   "bg-[#4363EC] text-white border-transparent",
	{VariantUnbordered, ColorSecondary}: "bg-[#6B6E7C] text-white border-transparent",
	{VariantUnbordered, ColorDark}:      "bg-[#1E1E1E] text-white border-transparent",
	{VariantUnbordered, ColorSuccess}:   "bg-[#ECFEF3] text-[#047857] border-transparent",
	{VariantUnbordered, ColorWarning}:   "bg-[#FFF8E6] text-[#FF8B08] border-transparent",
	{VariantUnbordered, ColorDanger}:    "bg-[#FFE6E6] text-[#E73B3B] border-transparent",
	{VariantUnbordered, ColorInfo}:      "bg-[#E5F0FF] text-[#004FC4] border-transparent",
	{VariantUnbordered, ColorLight}:     "bg-[#E3E7F1] text-[#707483] border-transparent",
	{VariantUnbordered, ColorMisc}:      "bg-[#FFE6FF] text-[#52059C] border-transparent",
	{VariantUnbordered, ColorDawn}:      "bg-[#FFECDA] text-[#4D4137] border-transparent",

	{VariantGradient, ColorWhite}:     "bg-gradient-to-br from-white to-[#E0E0E0] text-[#3E3E3E]",
	{VariantGradient, ColorPrimary}:   "bg-gradient-to-br from-[#4363EC] to-[#6A80F3] text-white",
	{VariantGradient, ColorSecondary}: "bg-gradient-to-br from-[#6B6E7C] to-[#9DA1AD] text-white",
	{VariantGradient, ColorDark}:      "bg-gradient-to-br from-[#1E1E1E] to-[#4B4B4B] text-white",
	{VariantGradient, ColorSuccess}:   "bg-gradient-to-br from-[#047857] to-[#6EE7B7] text-white",
	{VariantGradient, ColorWarning}:   "bg-gradient-to-br from-[#FF8B08] to-[#FFB45B] text-white",
	{VariantGradient, ColorDanger}:    "bg-gradient-to-br from-[#E73B3B] to-[#F58080] text-white",
	{VariantGradient, ColorInfo}:      "bg-gradient-to-br from-[#004FC4] to-[#3680DF] text-white",
	{VariantGradient, ColorLight}:     "bg-gradient-to-br from-[#707483] to-[#A0A5B4] text-white",
	{VariantGradient, ColorMisc}:      "bg-gradient-to-br from-[#52059C] to-[#8535C3] text-white",
	{VariantGradient, ColorDawn}:      "bg-gradient-to-br from-[#4D4137] to-[#947F6B] text-white",
}

// Theme resolves a (variant, color) pair to its palette classes. Unknown
// pairs fall back to the (default, white) entry so resolution stays total.
func Theme(variant, color string) string {
	if classes, ok := themes[themeKey{variant, color}]; ok {
		return classes
	}
	return themes[themeKey{VariantDefault, ColorWhite}]
}

// Borderless reports whether a variant renders without a border box, in
// which case components skip the border width class entirely.
func Borderless(variant string) bool {
	switch variant {
	case VariantTransparent, VariantUnbordered, VariantGradient:
		return true
	}
	return false
}

// Colors lists the color theme tokens in display order.
func Colors() []string {
	return []string{
		ColorWhite, ColorPrimary, ColorSecondary, ColorDark, ColorSuccess,
		ColorWarning, ColorDanger, ColorInfo, ColorLight, ColorMisc, ColorDawn,
	}
}

// Variants lists the visual treatment tokens in display order.
func Variants() []string {
	return []string{
		VariantDefault, VariantOutline, VariantTransparent, VariantShadow,
		VariantUnbordered, VariantGradient,
	}
}
