package models

import "regexp"

// DefaultIconColor is used until the user picks a colour.
const DefaultIconColor = "#000000"

var palette = []string{
	"#FF6B6B", // red
	"#4ECDC4", // turquoise
	"#45B7D1", // blue
	"#96CEB4", // green
	"#FFEEAD", // yellow
	"#D4A5A5", // pink
	"#9370DB", // purple
	"#FFFFFF",
	"#000000",
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Palette returns a copy of the fixed icon colour palette.
func Palette() []string {
	out := make([]string, len(palette))
	copy(out, palette)
	return out
}

// ValidColor reports whether c is a #RRGGBB colour.
func ValidColor(c string) bool {
	return hexColor.MatchString(c)
}
