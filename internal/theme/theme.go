// Package theme defines the shell palette and the glass styles built from it.
package theme

import "github.com/1broseidon/glasshell/internal/glass"

// Palette.
const (
	Wallpaper     glass.Color = 0xFFFF4500
	DesktopDark   glass.Color = 0xFF1A1A2E
	GlassBG       glass.Color = 0xC01E1E28
	GlassBGHover  glass.Color = 0xD02A2A38
	GlassBGActive glass.Color = 0xE03A3A4C
	GlassBorder   glass.Color = 0x40FFFFFF
	GlassBorderHi glass.Color = 0x20FFFFFF
	MenuBG        glass.Color = 0xF0252530
	MenuItemHover glass.Color = 0xFF3A3A4C
	Accent        glass.Color = 0xFFFF6B35
	White         glass.Color = 0xFFFFFFFF
	TextPrimary   glass.Color = 0xFFF0F0F5
	IconNormal    glass.Color = 0xFFDADAE0
	MenuSeparator glass.Color = 0x30FFFFFF
	BGMedium      glass.Color = 0xFF2A2A36
	TextSecondary glass.Color = 0xFFAAAAAA
	TextDisabled  glass.Color = 0xFF666666
	Green         glass.Color = 0xFF3FB950
	Transparent   glass.Color = 0x00000000

	WallpaperTop    glass.Color = 0xFF1A1A2E
	WallpaperBottom glass.Color = 0xFF0F3460
)

// Bar is the style of the three floating taskbar bars.
func Bar(radius int) glass.Style {
	return glass.Style{
		Background:      GlassBG,
		Border:          GlassBorder,
		Highlight:       GlassBorderHi,
		CornerRadius:    radius,
		BorderThickness: 1,
	}
}

// Panel is the style of the popup panels.
func Panel(radius int) glass.Style {
	return glass.Style{
		Background:      MenuBG,
		Border:          GlassBorder,
		Highlight:       GlassBorderHi,
		CornerRadius:    radius,
		BorderThickness: 1,
	}
}

func Button() glass.Style {
	return glass.Style{CornerRadius: 8}
}

func ButtonHover() glass.Style {
	return glass.Style{
		Background:      GlassBGHover,
		Border:          0x20FFFFFF,
		Highlight:       0x10FFFFFF,
		CornerRadius:    8,
		BorderThickness: 1,
	}
}

func ButtonActive() glass.Style {
	return glass.Style{
		Background:      GlassBGActive,
		Border:          Accent,
		Highlight:       0x05FFFFFF,
		CornerRadius:    8,
		BorderThickness: 1,
	}
}

// AppColor picks a stable tile color for an app or window label.
func AppColor(key string) glass.Color {
	palette := [...]glass.Color{
		0xFF4682B4, 0xFF3FB950, 0xFFFF6B35, 0xFF8957E5,
		0xFFDB61A2, 0xFF2F81F7, 0xFFD29922, 0xFF1F9E89,
	}
	var h uint32 = 2166136261
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= 16777619
	}
	return palette[h%uint32(len(palette))]
}
