package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// ImportContacts replaces the contact list with the birthdays found in r.
func (app *AgeCalcApp) ImportContacts(r io.Reader) error {
	contacts, err := engine.ReadContacts(app.Ctx, r, app.Clock.Now())
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrImportFailed, err)
	}

	app.Contacts = contacts
	if app.exportButton != nil {
		if len(contacts) > 0 {
			app.exportButton.Enable()
		} else {
			app.exportButton.Disable()
		}
	}

	app.App.SendNotification(fyne.NewNotification(config.AppName,
		app.I18n.MsgWith(config.TKeyNotifImported, map[string]interface{}{"Count": len(contacts)}, strconv.Itoa(len(contacts)))))
	return nil
}

// ExportCalendar writes the next birthday of every imported contact as iCalendar.
func (app *AgeCalcApp) ExportCalendar(w io.Writer) error {
	if len(app.Contacts) == 0 {
		return errors.New(config.ErrNothingToExport)
	}
	if err := engine.EncodeCalendar(w, app.Contacts, app.Clock.Now()); err != nil {
		return fmt.Errorf("%s: %w", config.ErrExportFailed, err)
	}
	return nil
}

func (app *AgeCalcApp) showImportDialog() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		if reader == nil {
			return // Cancelled
		}
		defer func() { _ = reader.Close() }()

		if err := app.ImportContacts(reader); err != nil {
			slog.Error(config.ErrImportFailed,
				config.LogKeyComponent, config.CompContacts,
				config.LogKeyError, err)
			dialog.ShowError(err, app.Window)
			return
		}
		app.ShowContactsWindow()
	}, app.Window)

	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
	d.Show()
}

func (app *AgeCalcApp) showExportDialog() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		if writer == nil {
			return
		}

		err = app.ExportCalendar(writer)
		if cerr := writer.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			slog.Error(config.ErrExportFailed,
				config.LogKeyComponent, config.CompContacts,
				config.LogKeyError, err)
			dialog.ShowError(err, app.Window)
			return
		}
		app.App.SendNotification(fyne.NewNotification(config.AppName, app.I18n.Msg(config.TKeyNotifExported)))
	}, app.Window)

	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtICS}))
	d.SetFileName(config.ExportFileName)
	d.Show()
}

// sortContacts orders contacts by the given column. Ties keep their previous order.
func sortContacts(contacts []engine.ContactAge, col int, asc bool) {
	less := func(a, b engine.ContactAge) bool {
		switch col {
		case config.ColIDName:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case config.ColIDDate:
			return a.Birth.String() < b.Birth.String()
		case config.ColIDAge:
			return a.Age.TotalDays < b.Age.TotalDays
		default: // config.ColIDUntil
			return a.Age.DaysUntilNextBirthday < b.Age.DaysUntilNextBirthday
		}
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		if asc {
			return less(contacts[i], contacts[j])
		}
		return less(contacts[j], contacts[i])
	})
}

// contactCell renders one table cell.
func contactCell(c engine.ContactAge, col int) string {
	switch col {
	case config.ColIDName:
		return c.Name
	case config.ColIDDate:
		return c.Birth.Midnight(c.Age.NextBirthday.Location()).Format(config.DateFormatDisplay)
	case config.ColIDAge:
		return strconv.Itoa(c.Age.Years)
	default:
		return engine.FormatCount(c.Age.DaysUntilNextBirthday)
	}
}

var columnKeys = map[int]string{
	config.ColIDName:  config.TKeyColName,
	config.ColIDDate:  config.TKeyColDate,
	config.ColIDAge:   config.TKeyColAge,
	config.ColIDUntil: config.TKeyColUntil,
}

// ShowContactsWindow displays the imported contacts, soonest birthday first.
// If the window is already open it only requests focus.
func (app *AgeCalcApp) ShowContactsWindow() {
	if app.contactsWindow != nil {
		app.contactsWindow.RequestFocus()
		return
	}

	app.contactsWindow = app.App.NewWindow(app.I18n.Msg(config.TKeyWinContacts))
	app.contactsWindow.Resize(fyne.NewSize(config.ContactsWinWidth, config.ContactsWinHeight))

	// Local copy so re-sorting never reorders the exported list.
	displayContacts := make([]engine.ContactAge, len(app.Contacts))
	copy(displayContacts, app.Contacts)

	slog.Info(config.MsgOpenContacts,
		config.LogKeyComponent, config.CompContacts,
		config.LogKeyCount, len(displayContacts))

	currentSortCol := config.ColIDUntil
	sortAsc := true

	var table *widget.Table
	refreshTable := func() {
		sortContacts(displayContacts, currentSortCol, sortAsc)
		slog.Debug(config.MsgContactsSorted,
			config.LogKeyComponent, config.CompContacts,
			config.LogKeySortCol, currentSortCol,
			config.LogKeySortAsc, sortAsc)
		table.Refresh()
	}

	table = widget.NewTable(
		func() (int, int) {
			return len(displayContacts), config.ColCount
		},
		func() fyne.CanvasObject {
			return widget.NewLabel(config.TablePlaceholder)
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			if id.Row >= len(displayContacts) {
				return
			}
			o.(*widget.Label).SetText(contactCell(displayContacts[id.Row], id.Col))
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton("Header", func() {})
	}
	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		btn := o.(*widget.Button)

		text := app.I18n.Msg(columnKeys[id.Col])
		if id.Col == currentSortCol {
			if sortAsc {
				text += config.SortIconAsc
			} else {
				text += config.SortIconDesc
			}
		}
		btn.SetText(text)

		btn.OnTapped = func() {
			if currentSortCol == id.Col {
				sortAsc = !sortAsc
			} else {
				currentSortCol = id.Col
				sortAsc = true
			}
			refreshTable()
		}
	}

	table.SetColumnWidth(config.ColIDName, config.ColWidthName)
	table.SetColumnWidth(config.ColIDDate, config.ColWidthDate)
	table.SetColumnWidth(config.ColIDAge, config.ColWidthAge)
	table.SetColumnWidth(config.ColIDUntil, config.ColWidthUntil)

	sortContacts(displayContacts, currentSortCol, sortAsc)

	app.contactsWindow.SetContent(container.NewBorder(nil, nil, nil, nil, table))
	app.contactsWindow.SetOnClosed(func() {
		app.contactsWindow = nil
	})
	app.contactsWindow.Show()
}
