package ui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/tartampluch/go-age/internal/config"
)

// variantTheme pins the default theme to one variant regardless of the OS setting.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

// ApplyTheme installs the variant selected by DarkMode.
func (app *AgeCalcApp) ApplyTheme() {
	variant := theme.VariantLight
	if app.DarkMode {
		variant = theme.VariantDark
	}
	app.App.Settings().SetTheme(variantTheme{Theme: theme.DefaultTheme(), variant: variant})
}

// ToggleTheme flips between dark and light. The choice lives for the session only.
func (app *AgeCalcApp) ToggleTheme() {
	app.DarkMode = !app.DarkMode
	app.ApplyTheme()

	slog.Debug(config.MsgThemeToggled,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyDark, app.DarkMode)
}
