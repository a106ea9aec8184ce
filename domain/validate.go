package domain

import "time"

var categories = map[string]bool{
	CategoryBills:  true,
	CategoryHealth: true,
	CategoryNormal: true,
}

var reminderStatuses = map[string]bool{
	ReminderActive:    true,
	ReminderCompleted: true,
	ReminderCancelled: true,
}

var frequencies = map[string]bool{
	FrequencyDaily:   true,
	FrequencyWeekly:  true,
	FrequencyMonthly: true,
	FrequencyYearly:  true,
}

var weekdays = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

var months = map[string]time.Month{
	"January":   time.January,
	"February":  time.February,
	"March":     time.March,
	"April":     time.April,
	"May":       time.May,
	"June":      time.June,
	"July":      time.July,
	"August":    time.August,
	"September": time.September,
	"October":   time.October,
	"November":  time.November,
	"December":  time.December,
}

var channels = map[string]bool{
	ChannelWhatsApp: true,
	ChannelSMS:      true,
}

var outcomes = map[string]bool{
	OutcomeSuccess: true,
	OutcomeFailure: true,
}

// WeekdayOf resolves a stored weekday name
func WeekdayOf(name string) (time.Weekday, bool) {
	wd, ok := weekdays[name]
	return wd, ok
}

// MonthOf resolves a stored month name
func MonthOf(name string) (time.Month, bool) {
	m, ok := months[name]
	return m, ok
}

// ParseTimeOfDay parses a stored "HH:MM" time-of-day
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

// Validate checks a reminder ahead of any persist. Checks run in a fixed
// order (required fields, enum membership, frequency-specific requirements,
// ranges) and the first failure wins, naming the offending wire field.
func (r *Reminder) Validate() error {
	if r.Title == "" {
		return NewValidationError("titulo", "is required")
	}
	if r.Category == "" {
		return NewValidationError("categoria", "is required")
	}
	if !categories[r.Category] {
		return NewValidationError("categoria", "must be one of Bills, Health, Normal")
	}
	if r.Status != "" && !reminderStatuses[r.Status] {
		return NewValidationError("status", "must be one of Active, Completed, Cancelled")
	}
	if !r.Recurring {
		return nil
	}

	if r.Frequency == "" {
		return NewValidationError("frequencia", "is required for recurring reminders")
	}
	if !frequencies[r.Frequency] {
		return NewValidationError("frequencia", "must be one of Daily, Weekly, Monthly, Yearly")
	}
	if r.Weekday != "" {
		if _, ok := weekdays[r.Weekday]; !ok {
			return NewValidationError("dia_semana", "is not a valid weekday")
		}
	}
	if r.Month != "" {
		if _, ok := months[r.Month]; !ok {
			return NewValidationError("mes", "is not a valid month")
		}
	}

	switch r.Frequency {
	case FrequencyWeekly:
		if r.Weekday == "" {
			return NewValidationError("dia_semana", "is required for weekly reminders")
		}
	case FrequencyMonthly:
		if r.DayOfMonth == 0 {
			return NewValidationError("dia", "is required for monthly reminders")
		}
	case FrequencyYearly:
		if r.DayOfMonth == 0 {
			return NewValidationError("dia", "is required for yearly reminders")
		}
		if r.Month == "" {
			return NewValidationError("mes", "is required for yearly reminders")
		}
	}
	if r.TimeOfDay == "" {
		return NewValidationError("hora", "is required for recurring reminders")
	}
	if _, _, err := ParseTimeOfDay(r.TimeOfDay); err != nil {
		return NewValidationError("hora", "must be in HH:MM format")
	}
	if r.DayOfMonth != 0 && (r.DayOfMonth < 1 || r.DayOfMonth > 31) {
		return NewValidationError("dia", "must be between 1 and 31")
	}
	return nil
}

// Validate checks a tag ahead of any persist
func (t *Tag) Validate() error {
	if t.Name == "" {
		return NewValidationError("nome", "is required")
	}
	if t.Color != "" && !validHexColor(t.Color) {
		return NewValidationError("cor", "must be a hex color like #FFAA00")
	}
	return nil
}

// Validate checks a notification ahead of any persist
func (n *Notification) Validate() error {
	if n.ReminderID == 0 {
		return NewValidationError("lembrete_id", "is required")
	}
	if n.Channel == "" {
		return NewValidationError("canal", "is required")
	}
	if !channels[n.Channel] {
		return NewValidationError("canal", "must be one of WhatsApp, SMS")
	}
	if n.Outcome == "" {
		return NewValidationError("resultado", "is required")
	}
	if !outcomes[n.Outcome] {
		return NewValidationError("resultado", "must be one of Success, Failure")
	}
	return nil
}

func validHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
