package vault

import (
	"time"

	"github.com/evensrud/daybook/internal/clock"
)

// ResolveDate picks the effective date from an explicit date string, a
// relative day offset, or today. An explicit date honours the vault's
// date-format override.
func (s *Store) ResolveDate(dateStr string, relativeDays *int) (time.Time, error) {
	if dateStr != "" {
		return s.clk.ParseDate(dateStr, s.cfg.DateFormat)
	}
	if relativeDays != nil {
		return s.clk.RelativeDate(*relativeDays), nil
	}
	return s.clk.Today(), nil
}

// ResolveTimestamp combines the effective date with an explicit time of day,
// or with the current time when none was given.
func (s *Store) ResolveTimestamp(dateStr string, relativeDays *int, timeStr, timeFormat string) (time.Time, error) {
	date, err := s.ResolveDate(dateStr, relativeDays)
	if err != nil {
		return time.Time{}, err
	}
	if timeStr != "" {
		tod, err := s.clk.ParseTime(timeStr, timeFormat)
		if err != nil {
			return time.Time{}, err
		}
		return clock.Combine(date, tod), nil
	}
	return clock.Combine(date, s.clk.Now()), nil
}
