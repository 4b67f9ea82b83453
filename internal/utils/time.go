package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"
	"time"
)

// LocalDateTime is a wall-clock timestamp exchanged with clients without an
// offset; it is interpreted in the application location.
type LocalDateTime struct {
	time.Time
}

const (
	layout     = "2006-01-02T15:04:05"
	dateLayout = "2006-01-02"
)

var (
	locMu    sync.RWMutex
	location *time.Location
)

func init() {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.FixedZone("BRT", -3*60*60)
	}
	location = loc
}

func SetLocation(loc *time.Location) {
	if loc == nil {
		return
	}
	locMu.Lock()
	location = loc
	locMu.Unlock()
}

func Location() *time.Location {
	locMu.RLock()
	defer locMu.RUnlock()
	return location
}

func ToTimePtr(ldt *LocalDateTime) *time.Time {
	if ldt == nil || ldt.IsZero() {
		return nil
	}
	t := ldt.Time
	return &t
}

// ParseLocal accepts "2006-01-02T15:04:05", "2006-01-02" or RFC3339.
func ParseLocal(s string) (time.Time, error) {
	loc := Location()
	if t, err := time.ParseInLocation(layout, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t.In(loc), nil
}

func (ldt *LocalDateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := ParseLocal(s)
	if err != nil {
		return err
	}
	ldt.Time = t
	return nil
}

func (ldt LocalDateTime) MarshalJSON() ([]byte, error) {
	if ldt.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ldt.In(Location()).Format(layout) + `"`), nil
}

func (ldt LocalDateTime) Value() (driver.Value, error) {
	if ldt.IsZero() {
		return nil, nil
	}
	return ldt.Time, nil
}

func (ldt *LocalDateTime) Scan(value interface{}) error {
	if value == nil {
		ldt.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		ldt.Time = v
		return nil
	case []byte:
		parsed, err := ParseLocal(string(v))
		if err != nil {
			return err
		}
		ldt.Time = parsed
		return nil
	case string:
		parsed, err := ParseLocal(v)
		if err != nil {
			return err
		}
		ldt.Time = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into LocalDateTime", value)
	}
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay is the last millisecond of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Millisecond)
}

// WeekBounds returns the Monday 00:00:00.000 and Sunday 23:59:59.999 of the
// week containing t, in t's location.
func WeekBounds(t time.Time) (start, end time.Time) {
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	start = StartOfDay(t).AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 6).Add(24*time.Hour - time.Millisecond)
	return start, end
}

// MonthBounds returns the first and last instant of t's month.
func MonthBounds(t time.Time) (start, end time.Time) {
	y, m, _ := t.Date()
	start = time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

// EachDay calls fn for the start of every day in [from, to], inclusive.
func EachDay(from, to time.Time, fn func(day time.Time)) {
	for d := StartOfDay(from); !d.After(to); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}
