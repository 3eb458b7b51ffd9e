package engine

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-age/internal/config"
)

// EncodeCalendar writes one all-day event per contact on its next birthday.
// An empty list still produces a valid VCALENDAR so clients accept the file.
func EncodeCalendar(w io.Writer, contacts []ContactAge, now time.Time) error {
	if len(contacts) == 0 {
		if _, err := io.WriteString(w, config.StubVCalendar); err != nil {
			return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
		}
		return nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Dates stay on the local calendar; only the stamp is an absolute instant.
	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(now.UTC())

	for _, c := range contacts {
		cal.Children = append(cal.Children, birthdayEvent(c, dtStamp).Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgCalendarBuilt,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyEvents, len(contacts))
	return nil
}

func birthdayEvent(c ContactAge, dtStamp *ical.Prop) *ical.Event {
	next := c.Age.NextBirthday

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, c.UID, next.Year(), config.ICalDomain))
	event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FallbackSummaryAge, c.Name, c.Age.AgeNext()))
	event.Props.Set(dtStamp)

	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDate(next)
	event.Props.Set(dtStart)

	return event
}
