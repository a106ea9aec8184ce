package domain

import "time"

// NextOccurrence computes the next instant a reminder is due, relative to
// now. One-off reminders return their stored instant verbatim (even when it
// is already in the past) or nil when they have none. Recurring reminders
// resolve per frequency:
//
//   - Daily: today at the stored time, or tomorrow if that is already past.
//   - Weekly: the next day matching the stored weekday at the stored time; a
//     matching weekday whose time has already passed rolls to next week.
//   - Monthly: the stored day this month, or the same day next month if past.
//   - Yearly: the stored day and month this year, or next year if past.
//
// A day-of-month beyond the target month's length clamps to the month's last
// day. The result is derived for display and never written back.
func (r *Reminder) NextOccurrence(now time.Time) *time.Time {
	if !r.Recurring {
		if r.DateTime == nil {
			return nil
		}
		t := *r.DateTime
		return &t
	}

	hour, minute, err := ParseTimeOfDay(r.TimeOfDay)
	if err != nil {
		return nil
	}
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, loc)

	switch r.Frequency {
	case FrequencyDaily:
		next := today
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		return &next

	case FrequencyWeekly:
		wd, ok := WeekdayOf(r.Weekday)
		if !ok {
			return nil
		}
		next := today
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		for next.Weekday() != wd {
			next = next.AddDate(0, 0, 1)
		}
		return &next

	case FrequencyMonthly:
		next := monthOccurrence(now.Year(), now.Month(), r.DayOfMonth, hour, minute, loc)
		if !next.After(now) {
			first := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, loc)
			next = monthOccurrence(first.Year(), first.Month(), r.DayOfMonth, hour, minute, loc)
		}
		return &next

	case FrequencyYearly:
		month, ok := MonthOf(r.Month)
		if !ok {
			return nil
		}
		next := monthOccurrence(now.Year(), month, r.DayOfMonth, hour, minute, loc)
		if !next.After(now) {
			next = monthOccurrence(now.Year()+1, month, r.DayOfMonth, hour, minute, loc)
		}
		return &next
	}
	return nil
}

// monthOccurrence builds the instant for day-of-month within a given month,
// clamping the day to the month's last day.
func monthOccurrence(year int, month time.Month, day, hour, minute int, loc *time.Location) time.Time {
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, hour, minute, 0, 0, loc)
}

// daysIn returns the number of days in a month. Day zero of the following
// month normalizes to the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
