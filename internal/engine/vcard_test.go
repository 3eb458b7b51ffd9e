package engine_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-age/internal/engine"
)

const contactsVCF = `BEGIN:VCARD
VERSION:3.0
FN:Alice Martin
BDAY:1990-12-31
END:VCARD
BEGIN:VCARD
VERSION:4.0
N:Doe;John;;;
BDAY:20000615
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:No Year
BDAY:--0704
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:Not Born Yet
BDAY:2999-01-01
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:Impossible Date
BDAY:2001-02-29
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:No Birthday
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:Leap Baby
BDAY:2000-02-29T00:00:00Z
END:VCARD
`

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func TestReadContacts(t *testing.T) {
	clock := MockClock{CurrentTime: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)}

	contacts, err := engine.ReadContacts(context.Background(), strings.NewReader(contactsVCF), clock.Now())
	require.NoError(t, err)
	require.Len(t, contacts, 3, "year-less, future, impossible and missing birthdays are skipped")

	// Sorted by next birthday: today, Dec 31, then Mar 1 2026.
	assert.Equal(t, "John Doe", contacts[0].Name, "N is used when FN is absent")
	assert.Equal(t, "Alice Martin", contacts[1].Name)
	assert.Equal(t, "Leap Baby", contacts[2].Name)

	john := contacts[0]
	assert.True(t, john.Age.IsBirthday())
	assert.Equal(t, 25, john.Age.Years)
	assert.Equal(t, engine.BirthDate{Year: 2000, Month: time.June, Day: 15}, john.Birth)

	alice := contacts[1]
	assert.Equal(t, 34, alice.Age.Years)
	assert.Equal(t, 199, alice.Age.DaysUntilNextBirthday)

	leap := contacts[2]
	assert.Equal(t, 259, leap.Age.DaysUntilNextBirthday)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), leap.Age.NextBirthday)

	for _, c := range contacts {
		assert.Len(t, c.UID, 32, "16 hash bytes hex encoded")
	}
}

func TestReadContacts_StableUID(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	first, err := engine.ReadContacts(context.Background(), strings.NewReader(contactsVCF), now)
	require.NoError(t, err)
	second, err := engine.ReadContacts(context.Background(), strings.NewReader(contactsVCF), now.AddDate(0, 1, 0))
	require.NoError(t, err)

	uids := make(map[string]string)
	for _, c := range first {
		uids[c.Name] = c.UID
	}
	for _, c := range second {
		assert.Equal(t, uids[c.Name], c.UID, "UID must not depend on the evaluation moment")
	}
}

func TestReadContacts_Empty(t *testing.T) {
	contacts, err := engine.ReadContacts(context.Background(), strings.NewReader(""), time.Now())
	assert.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestReadContacts_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	contacts, err := engine.ReadContacts(ctx, strings.NewReader(contactsVCF), time.Now())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, contacts)
}

func TestReadContacts_BrokenReader(t *testing.T) {
	boom := errors.New("boom")
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	contacts, err := engine.ReadContacts(context.Background(), iotest.ErrReader(boom), now)
	require.ErrorIs(t, err, boom)
	assert.Nil(t, contacts)
}

func TestSortByNextBirthday_TieBreaksOnName(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	b := engine.BirthDate{Year: 1980, Month: time.July, Day: 1}

	contacts := []engine.ContactAge{
		engine.NewContactAge("Zoe", b, now),
		engine.NewContactAge("Adam", b, now),
	}
	engine.SortByNextBirthday(contacts)

	assert.Equal(t, "Adam", contacts[0].Name)
	assert.Equal(t, "Zoe", contacts[1].Name)
}
