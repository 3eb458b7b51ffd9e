package ui

import (
	"context"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// AgeCalcApp encapsulates the window state and wires the form to the engine.
// All fields are touched from the Fyne main goroutine only.
type AgeCalcApp struct {
	App    fyne.App
	Window fyne.Window
	Ctx    context.Context
	Clock  engine.Clock // Injected clock for testability
	I18n   *Translator

	DarkMode bool

	// Result is the last successful calculation, nil after a rejected input.
	Result *engine.AgeResult

	// Contacts State
	Contacts       []engine.ContactAge
	contactsWindow fyne.Window

	dayEntry     *NumericalEntry
	monthEntry   *NumericalEntry
	yearEntry    *NumericalEntry
	calcButton   *widget.Button
	themeButton  *widget.Button
	exportButton *widget.Button
	errorLabel   *widget.Label

	resultBox     *fyne.Container
	yearsLabel    *widget.Label
	subtitleLabel *widget.Label
	nextLabel     *widget.Label
	statDays      *widget.Card
	statWeeks     *widget.Card
	statHours     *widget.Card
	statUntil     *widget.Card
}

// NewAgeCalcApp constructs the application and wires dependencies.
func NewAgeCalcApp(a fyne.App, ctx context.Context, clock engine.Clock, tr *Translator) *AgeCalcApp {
	return &AgeCalcApp{
		App:      a,
		Ctx:      ctx,
		Clock:    clock,
		I18n:     tr,
		DarkMode: true,
	}
}

// Run builds the main window and blocks in the UI loop until it closes.
func (app *AgeCalcApp) Run() {
	app.ApplyTheme()
	app.buildMainWindow()
	app.Window.ShowAndRun()
}

// buildMainWindow lays out the form and the (initially hidden) result panel.
func (app *AgeCalcApp) buildMainWindow() fyne.Window {
	w := app.App.NewWindow(app.I18n.Msg(config.TKeyWinTitle))
	app.Window = w

	// --- Header ---
	heading := widget.NewLabelWithStyle(app.I18n.Msg(config.TKeyLblHeading), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	subheading := widget.NewLabel(app.I18n.Msg(config.TKeyLblSubheading))
	app.themeButton = widget.NewButtonWithIcon(app.I18n.Msg(config.TKeyBtnTheme), theme.ColorPaletteIcon(), app.ToggleTheme)
	header := container.NewBorder(nil, nil, nil, app.themeButton, container.NewVBox(heading, subheading))

	// --- Form ---
	app.dayEntry = newDateEntry(config.PlaceholderDay, config.DayDigits)
	app.monthEntry = newDateEntry(config.PlaceholderMonth, config.MonthDigits)
	app.yearEntry = newDateEntry(config.PlaceholderYear, config.YearDigits)

	app.calcButton = widget.NewButtonWithIcon(app.I18n.Msg(config.TKeyBtnCalculate), theme.ConfirmIcon(), app.Calculate)
	app.calcButton.Importance = widget.HighImportance

	// Filling a field moves the focus forward like a paper form.
	app.dayEntry.OnComplete = func() { w.Canvas().Focus(app.monthEntry) }
	app.monthEntry.OnComplete = func() { w.Canvas().Focus(app.yearEntry) }
	app.yearEntry.OnComplete = func() { w.Canvas().Focus(app.calcButton) }
	app.yearEntry.OnSubmitted = func(string) { app.Calculate() }

	app.errorLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	app.errorLabel.Importance = widget.DangerImportance
	app.errorLabel.Hide()

	dateRow := container.NewGridWithColumns(3,
		labelled(app.I18n.Msg(config.TKeyLblDay), app.dayEntry),
		labelled(app.I18n.Msg(config.TKeyLblMonth), app.monthEntry),
		labelled(app.I18n.Msg(config.TKeyLblYear), app.yearEntry),
	)
	formCard := widget.NewCard("", app.I18n.Msg(config.TKeyLblBirthDate),
		container.NewVBox(dateRow, app.errorLabel, app.calcButton))

	// --- Result ---
	app.yearsLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	yearsOld := widget.NewLabelWithStyle(app.I18n.Msg(config.TKeyLblYearsOld), fyne.TextAlignCenter, fyne.TextStyle{})
	app.subtitleLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	app.statDays = widget.NewCard("", app.I18n.Msg(config.TKeyStatDays), nil)
	app.statWeeks = widget.NewCard("", app.I18n.Msg(config.TKeyStatWeeks), nil)
	app.statHours = widget.NewCard("", app.I18n.Msg(config.TKeyStatHours), nil)
	app.statUntil = widget.NewCard("", app.I18n.Msg(config.TKeyStatUntil), nil)

	app.nextLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	app.resultBox = container.NewVBox(
		widget.NewCard("", "", container.NewVBox(app.yearsLabel, yearsOld, app.subtitleLabel)),
		container.NewGridWithColumns(config.LayoutColumnsDouble, app.statDays, app.statWeeks, app.statHours, app.statUntil),
		app.nextLabel,
	)
	app.resultBox.Hide()

	// --- Contacts & Footer ---
	importButton := widget.NewButtonWithIcon(app.I18n.Msg(config.TKeyBtnImport), theme.FolderOpenIcon(), app.showImportDialog)
	app.exportButton = widget.NewButtonWithIcon(app.I18n.Msg(config.TKeyBtnExport), theme.DocumentSaveIcon(), app.showExportDialog)
	app.exportButton.Disable()

	footerLabel := widget.NewLabelWithStyle(
		app.I18n.MsgWith(config.TKeyLblFooter, map[string]interface{}{"Version": config.Version}, config.AppName+" "+config.Version),
		fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	w.SetContent(container.NewVScroll(container.NewPadded(container.NewVBox(
		header,
		formCard,
		app.resultBox,
		container.NewGridWithColumns(config.LayoutColumnsDouble, importButton, app.exportButton),
		footerLabel,
	))))
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	w.Canvas().Focus(app.dayEntry)

	return w
}

func labelled(text string, obj fyne.CanvasObject) fyne.CanvasObject {
	return container.NewVBox(widget.NewLabel(text), obj)
}

// Calculate validates the form and either renders the result or the
// message for the first failing check. A failure never leaves a stale result.
func (app *AgeCalcApp) Calculate() {
	now := app.Clock.Now()

	birth, err := engine.ParseBirthDate(app.dayEntry.Text, app.monthEntry.Text, app.yearEntry.Text, now)
	if err != nil {
		slog.Info(config.MsgValidationFail,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)

		app.Result = nil
		app.resultBox.Hide()
		app.errorLabel.SetText(app.I18n.ErrorMessage(err))
		app.errorLabel.Show()
		return
	}

	res := engine.Calculate(birth, now)
	app.Result = &res

	app.errorLabel.SetText("")
	app.errorLabel.Hide()
	app.renderResult(res)
	app.resultBox.Show()

	slog.Debug(config.MsgAgeCalculated,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyYears, res.Years,
		config.LogKeyUntil, res.DaysUntilNextBirthday)
}

func (app *AgeCalcApp) renderResult(res engine.AgeResult) {
	app.yearsLabel.SetText(strconv.Itoa(res.Years))
	app.subtitleLabel.SetText(app.I18n.MsgWith(config.TKeyLblSubtitle,
		map[string]interface{}{"Months": res.Months, "Days": res.Days}, res.Subtitle()))

	app.statDays.SetTitle(engine.FormatCount(res.TotalDays))
	app.statWeeks.SetTitle(engine.FormatCount(res.TotalWeeks))
	app.statHours.SetTitle(engine.FormatCount(res.TotalHours))
	app.statUntil.SetTitle(engine.FormatCount(res.DaysUntilNextBirthday))

	app.nextLabel.SetText(app.I18n.MsgWith(config.TKeyLblNextBday,
		map[string]interface{}{"Date": res.NextBirthdayDate}, res.NextBirthdayDate))
}
