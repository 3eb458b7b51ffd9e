package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
	"github.com/tartampluch/go-age/internal/ui"
)

// reportOptions selects what the command line report prints.
type reportOptions struct {
	Date string // Birth date typed by the user
	VCF  string // Contacts file, or config.StdinPath
	ICS  bool
}

func (o reportOptions) enabled() bool {
	return o.Date != "" || o.VCF != ""
}

// runReport prints the age report for the requested date and contacts.
// With ICS set, every entry is written as one iCalendar document instead.
func runReport(ctx context.Context, out io.Writer, stdin io.Reader, opts reportOptions, now time.Time, tr *ui.Translator) error {
	var own *engine.ContactAge
	if opts.Date != "" {
		b, err := engine.ParseDate(opts.Date, now)
		if err != nil {
			return err
		}
		c := engine.NewContactAge(config.FallbackName, b, now)
		own = &c
	}

	var contacts []engine.ContactAge
	if opts.VCF != "" {
		var err error
		if contacts, err = readContactsFrom(ctx, opts.VCF, stdin, now); err != nil {
			return err
		}
	}

	if opts.ICS {
		if own != nil {
			contacts = append([]engine.ContactAge{*own}, contacts...)
		}
		return engine.EncodeCalendar(out, contacts, now)
	}

	tw := tabwriter.NewWriter(out, 0, 0, config.ReportTabPadding, ' ', 0)
	if own != nil {
		writeAgeReport(tw, own.Age, tr)
	}
	if opts.VCF != "" {
		if own != nil {
			fmt.Fprintln(tw)
		}
		writeContactsReport(tw, contacts, tr)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}

	slog.Debug(config.MsgReportWritten,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyCount, len(contacts))
	return nil
}

func readContactsFrom(ctx context.Context, path string, stdin io.Reader, now time.Time) ([]engine.ContactAge, error) {
	if path == config.StdinPath {
		return engine.ReadContacts(ctx, stdin, now)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrOpenInput, err)
	}
	defer func() { _ = f.Close() }()

	return engine.ReadContacts(ctx, f, now)
}

// writeAgeReport mirrors the result panel of the window.
func writeAgeReport(w io.Writer, res engine.AgeResult, tr *ui.Translator) {
	subtitle := tr.MsgWith(config.TKeyLblSubtitle,
		map[string]interface{}{"Months": res.Months, "Days": res.Days}, res.Subtitle())
	fmt.Fprintf(w, config.FormatReportHeadline, res.Years, tr.Msg(config.TKeyLblYearsOld), subtitle)

	fmt.Fprintf(w, config.FormatReportRow, tr.Msg(config.TKeyStatDays), engine.FormatCount(res.TotalDays))
	fmt.Fprintf(w, config.FormatReportRow, tr.Msg(config.TKeyStatWeeks), engine.FormatCount(res.TotalWeeks))
	fmt.Fprintf(w, config.FormatReportRow, tr.Msg(config.TKeyStatHours), engine.FormatCount(res.TotalHours))
	fmt.Fprintf(w, config.FormatReportRow, tr.Msg(config.TKeyStatUntil), engine.FormatCount(res.DaysUntilNextBirthday))

	fmt.Fprintln(w, tr.MsgWith(config.TKeyLblNextBday,
		map[string]interface{}{"Date": res.NextBirthdayDate}, res.NextBirthdayDate))
}

func writeContactsReport(w io.Writer, contacts []engine.ContactAge, tr *ui.Translator) {
	fmt.Fprintf(w, config.FormatContactHeader,
		tr.Msg(config.TKeyColName),
		tr.Msg(config.TKeyColDate),
		tr.Msg(config.TKeyColAge),
		tr.Msg(config.TKeyColUntil))

	for _, c := range contacts {
		fmt.Fprintf(w, config.FormatContactRow,
			c.Name, c.Birth.String(), c.Age.Years, strconv.Itoa(c.Age.DaysUntilNextBirthday))
	}
}
