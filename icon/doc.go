// Package icon renders inline Lucide icons from an embedded SVG sprite.
//
// Components treat the renderer as opaque: they pass an icon name and a
// class string and get back markup. Pages embed the sprite once and every
// icon on the page resolves against it by symbol id.
package icon
