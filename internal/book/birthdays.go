package book

import (
	"fmt"
	"time"
)

// DefaultWindowDays is the default lookahead for the upcoming-birthday
// query: today plus the six days that follow.
const DefaultWindowDays = 7

// LeapPolicy selects how a February 29 birthday lands in a non-leap year.
type LeapPolicy string

const (
	LeapError LeapPolicy = "error" // reject the projection
	LeapFeb28 LeapPolicy = "feb28" // celebrate on February 28
	LeapMar01 LeapPolicy = "mar01" // celebrate on March 1
)

// Valid reports whether p is a known policy. The empty policy is valid and
// behaves as LeapError.
func (p LeapPolicy) Valid() bool {
	switch p {
	case "", LeapError, LeapFeb28, LeapMar01:
		return true
	}
	return false
}

// LeapDayError reports a February 29 birthday that cannot be projected
// into a non-leap year under LeapError.
type LeapDayError struct {
	Year int
}

func (e *LeapDayError) Error() string {
	return fmt.Sprintf("book: February 29 does not occur in %d", e.Year)
}

// WindowOptions control the upcoming-birthday query.
type WindowOptions struct {
	Days            int        // lookahead in days, today inclusive; DefaultWindowDays when zero
	WeekendToMonday bool       // report Saturday/Sunday birthdays under "Monday"
	Leap            LeapPolicy // February 29 handling in non-leap years
}

// Group is one weekday bucket of the query result: the weekday label and
// the contact names celebrating on it.
type Group struct {
	Label string
	Names []string
}

// UpcomingBirthdays returns the contacts whose next birthday falls within
// the lookahead window starting at today, grouped by the weekday it lands
// on. A birthday exactly on today counts. Weekday labels are Go's English
// weekday names; Saturday and Sunday fold into "Monday" when
// WeekendToMonday is set. Groups appear in the order their weekday is
// first encountered; names within a group keep Book insertion order.
func (b *Book) UpcomingBirthdays(today time.Time, opts WindowOptions) ([]Group, error) {
	days := opts.Days
	if days <= 0 {
		days = DefaultWindowDays
	}
	day := midnightUTC(today)

	var groups []Group
	index := make(map[string]int)

	for _, rec := range b.Records() {
		bd, ok := rec.Birthday()
		if !ok {
			continue
		}

		next, err := bd.nextOccurrence(day, opts.Leap)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rec.Name(), err)
		}

		delta := int(next.Sub(day).Hours() / 24)
		if delta >= days {
			continue
		}

		label := next.Weekday().String()
		if opts.WeekendToMonday && isWeekend(next.Weekday()) {
			label = time.Monday.String()
		}

		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Names = append(groups[i].Names, rec.Name().String())
	}

	return groups, nil
}

// nextOccurrence projects the birthday's month and day onto today's year,
// advancing to next year when the date has already passed. A birthday
// landing exactly on today is not advanced.
func (b Birthday) nextOccurrence(today time.Time, policy LeapPolicy) (time.Time, error) {
	occ, err := b.occurrenceIn(today.Year(), policy)
	if err != nil {
		return time.Time{}, err
	}
	if occ.Before(today) {
		return b.occurrenceIn(today.Year()+1, policy)
	}
	return occ, nil
}

// occurrenceIn places the birthday's month and day into year, applying the
// leap policy when the birthday is February 29 and year is not a leap year.
func (b Birthday) occurrenceIn(year int, policy LeapPolicy) (time.Time, error) {
	month, day := b.Month(), b.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		switch policy {
		case LeapFeb28:
			day = 28
		case LeapMar01:
			month, day = time.March, 1
		default:
			return time.Time{}, &LeapDayError{Year: year}
		}
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// midnightUTC strips the time-of-day and location from t. Date arithmetic
// runs in UTC so day deltas are exact across DST transitions.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
