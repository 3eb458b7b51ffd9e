package engine

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"time"

	"github.com/tartampluch/go-age/internal/config"
)

// ContactAge pairs a named person with their age at the evaluation moment.
type ContactAge struct {
	// UID is a deterministic hash of name and birth date, stable across imports.
	UID string

	Name  string
	Birth BirthDate
	Age   AgeResult
}

// NewContactAge computes the age of an already validated birth date at now.
func NewContactAge(name string, b BirthDate, now time.Time) ContactAge {
	input := fmt.Sprintf(config.FormatHashInput, name, b.String(), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))

	return ContactAge{
		UID:   fmt.Sprintf("%x", hash[:config.UIDHashLength]),
		Name:  name,
		Birth: b,
		Age:   Calculate(b, now),
	}
}

// SortByNextBirthday orders contacts by upcoming birthday, then by name.
func SortByNextBirthday(contacts []ContactAge) {
	sort.SliceStable(contacts, func(i, j int) bool {
		a, b := contacts[i], contacts[j]
		if a.Age.DaysUntilNextBirthday == b.Age.DaysUntilNextBirthday {
			return a.Name < b.Name
		}
		return a.Age.DaysUntilNextBirthday < b.Age.DaysUntilNextBirthday
	})
}
