package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-age/internal/config"
)

// ReadContacts decodes a vCard stream and computes the age of every contact
// with a usable BDAY at now. Malformed cards, year-less dates and dates the
// validator rejects are logged and skipped. The result is sorted by next birthday.
func ReadContacts(ctx context.Context, r io.Reader, now time.Time) ([]ContactAge, error) {
	log := slog.With(config.LogKeyComponent, config.CompVCard)

	decoder := vcard.NewDecoder(r)
	stats := struct{ processed, withBday, skipped, today int }{}
	var contacts []ContactAge
	failures := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Keep going to recover as many contacts as possible,
			// unless the reader itself keeps failing.
			failures++
			if failures > config.MaxDecodeFailures {
				return nil, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
			}
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			stats.skipped++
			continue
		}
		failures = 0

		stats.processed++
		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		name := contactName(card)
		b, err := parseBirthday(bday.Value, now)
		if err != nil {
			log.Debug(config.MsgSkippedDate,
				config.LogKeyName, name,
				config.LogKeyValue, bday.Value,
				config.LogKeyError, err)
			stats.skipped++
			continue
		}
		stats.withBday++

		c := NewContactAge(name, b, now)
		if c.Age.IsBirthday() {
			stats.today++
			log.Info(config.MsgBdayToday,
				config.LogKeyName, name,
				config.LogKeyDOB, b.String())
		}
		contacts = append(contacts, c)
	}

	SortByNextBirthday(contacts)

	log.Info(config.MsgContactsRead,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.withBday),
			slog.Int(config.LogKeySkipped, stats.skipped),
			slog.Int(config.LogKeyCount, stats.today),
		),
	)
	return contacts, nil
}

// contactName prefers FN (Formatted) over N (Structured).
func contactName(card vcard.Card) string {
	if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
		return fn.Value
	}
	if n := card.Name(); n != nil {
		if full := strings.TrimSpace(n.GivenName + " " + n.FamilyName); full != "" {
			return full
		}
	}
	return config.FallbackName
}

// parseBirthday handles the vCard date forms and validates the result.
func parseBirthday(value string, now time.Time) (BirthDate, error) {
	for _, f := range []string{config.DateFormatNoYearD, config.DateFormatNoYearB} {
		if _, err := time.Parse(f, value); err == nil {
			return BirthDate{}, errors.New(config.ErrYearUnknown)
		}
	}

	formats := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		time.RFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return NewBirthDate(t.Day(), int(t.Month()), t.Year(), now)
		}
	}

	return BirthDate{}, fmt.Errorf("%s: %q", config.ErrDateParse, value)
}
