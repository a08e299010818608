package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var monthAbbrevs = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ParseLocalDate turns a YYYY-MM-DD string into midnight of that day in the
// local zone. The calendar fields of the result always equal the input; the
// string is never read as UTC midnight. Only the first three parts are
// read; malformed parts are read as zero.
func ParseLocalDate(s string) time.Time {
	var parts [3]int
	for i, p := range strings.Split(s, "-") {
		if i == len(parts) {
			break
		}
		n, _ := strconv.Atoi(strings.TrimSpace(p))
		parts[i] = n
	}
	return time.Date(parts[0], time.Month(parts[1]), parts[2], 0, 0, 0, 0, time.Local)
}

// DaysIn returns the number of days in the given month. Month values outside
// 1..12 roll over into neighbouring years.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func LongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

func MonthAbbrev(t time.Time) string {
	return monthAbbrevs[t.Month()-1]
}

type LocalDate struct {
	time.Time
}

func NewLocalDate(s string) LocalDate {
	return LocalDate{Time: ParseLocalDate(s)}
}

func (ld *LocalDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid local date %q: %w", s, err)
	}
	ld.Time = t
	return nil
}

func (ld LocalDate) MarshalJSON() ([]byte, error) {
	if ld.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ld.Format(DateLayout) + `"`), nil
}

func (ld LocalDate) String() string {
	return ld.Format(DateLayout)
}
