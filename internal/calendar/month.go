package calendar

import (
	"fmt"
	"time"
)

// MonthState is the displayed month. Month is zero-based (0 = January).
type MonthState struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func CurrentMonth(now time.Time) MonthState {
	return MonthState{Year: now.Year(), Month: int(now.Month()) - 1}
}

func (m MonthState) Prev() MonthState {
	if m.Month == 0 {
		return MonthState{Year: m.Year - 1, Month: 11}
	}
	return MonthState{Year: m.Year, Month: m.Month - 1}
}

func (m MonthState) Next() MonthState {
	if m.Month == 11 {
		return MonthState{Year: m.Year + 1, Month: 0}
	}
	return MonthState{Year: m.Year, Month: m.Month + 1}
}

// First returns local midnight on day 1 of the month.
func (m MonthState) First() time.Time {
	return time.Date(m.Year, time.Month(m.Month+1), 1, 0, 0, 0, 0, time.Local)
}

// Label is the month heading, e.g. "September 2025".
func (m MonthState) Label() string {
	return m.First().Format("January 2006")
}

// Param encodes the month as YYYY-MM for query strings.
func (m MonthState) Param() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month+1)
}

func ParseMonth(s string) (MonthState, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthState{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthState{Year: t.Year(), Month: int(t.Month()) - 1}, nil
}
