// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"sync"
	"time"
)

// DateLayout is the wire and storage layout for calendar dates.
const DateLayout = "2006-01-02"

// Now is the clock behind Today. Tests swap it for a fixed instant.
var Now = time.Now

var (
	locMu sync.RWMutex
	loc   = time.UTC
)

// SetLocation sets the library timezone used to decide what "today" is.
// Empty or unknown names fall back to UTC.
func SetLocation(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "UTC"
	}
	l, err := time.LoadLocation(name)
	if err != nil {
		l = time.UTC
	}
	locMu.Lock()
	loc = l
	locMu.Unlock()
	return err
}

func Location() *time.Location {
	locMu.RLock()
	defer locMu.RUnlock()
	return loc
}

// NowInLibrary returns the current instant in the library timezone.
func NowInLibrary() time.Time {
	return Now().In(Location())
}

// Today is the current calendar day in the library timezone, as midnight UTC.
func Today() time.Time {
	return DateOf(NowInLibrary())
}

// DateOf drops the clock part and keeps the calendar day of t (in t's own zone).
// The result is midnight UTC so stored dates compare and sort consistently.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a strict "YYYY-MM-DD" date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// FormatDate renders t as "YYYY-MM-DD"; the zero time renders as "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
