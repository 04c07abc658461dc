package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// ─── Weekday Sets ───────────────────────────────────────────────────────────
// Schedules are checked against an explicit set of weekdays. The wire and
// storage encoding stays the comma-joined short-code string ("Mon,Wed,Fri")
// for compatibility with the persisted configuration format.

// WeekdaySet is a set of weekdays, one bit per day, bit 0 = Monday.
type WeekdaySet uint8

// dayCodes is Monday-first to match the canonical encoding order.
var dayCodes = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// bitFor maps time.Weekday (Sunday = 0) onto the Monday-first bit layout.
func bitFor(d time.Weekday) WeekdaySet {
	idx := (int(d) + 6) % 7
	return 1 << idx
}

// With returns the set with d added.
func (s WeekdaySet) With(d time.Weekday) WeekdaySet {
	return s | bitFor(d)
}

// Contains reports whether d is in the set.
func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s&bitFor(d) != 0
}

// Count returns the number of weekdays in the set.
func (s WeekdaySet) Count() int {
	n := 0
	for i := 0; i < 7; i++ {
		if s&(1<<i) != 0 {
			n++
		}
	}
	return n
}

// AllWeekdays returns the full Mon–Sun set.
func AllWeekdays() WeekdaySet {
	return WeekdaySet(1<<7 - 1)
}

// ParseDays decodes a comma-joined short-code list. Unknown codes are
// ignored rather than rejected; persisted data must never break a load.
func ParseDays(s string) WeekdaySet {
	var set WeekdaySet
	for _, part := range strings.Split(s, ",") {
		code := strings.TrimSpace(part)
		for i, dc := range dayCodes {
			if strings.EqualFold(code, dc) {
				set |= 1 << i
			}
		}
	}
	return set
}

// String encodes the set in canonical Mon-first comma-joined form.
func (s WeekdaySet) String() string {
	var codes []string
	for i, dc := range dayCodes {
		if s&(1<<i) != 0 {
			codes = append(codes, dc)
		}
	}
	return strings.Join(codes, ",")
}

// MarshalJSON encodes the set as its comma-joined string form.
func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes the comma-joined string form.
func (s *WeekdaySet) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = ParseDays(str)
	return nil
}

// ShortDay returns the short code ("Mon") for a weekday.
func ShortDay(d time.Weekday) string {
	return dayCodes[(int(d)+6)%7]
}
