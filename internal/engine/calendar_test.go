package engine_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

func TestEncodeCalendar(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	contacts, err := engine.ReadContacts(context.Background(), strings.NewReader(contactsVCF), now)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, engine.EncodeCalendar(&buf, contacts, now))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "SUMMARY:Birthday: John Doe (25)", "on the birthday the current age is shown")
	assert.Contains(t, out, "SUMMARY:Birthday: Alice Martin (35)")
	assert.Contains(t, out, "SUMMARY:Birthday: Leap Baby (26)")

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 3)

	starts := make([]time.Time, 0, len(events))
	for _, e := range events {
		start, err := e.DateTimeStart(time.UTC)
		require.NoError(t, err)
		starts = append(starts, start)

		uid := e.Props.Get(config.PropUID)
		require.NotNil(t, uid)
		assert.True(t, strings.HasSuffix(uid.Value, "@"+config.ICalDomain))
	}

	assert.Equal(t, []time.Time{
		time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}, starts)
}

func TestEncodeCalendar_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, engine.EncodeCalendar(&buf, nil, time.Now()))
	assert.Equal(t, config.StubVCalendar, buf.String())
}
