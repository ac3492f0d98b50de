package holidays

import (
	"strconv"
	"strings"
	"time"

	"Backend-EduSync/src/models"
)

// DateRange is a concrete holiday span inside a query window.
type DateRange struct {
	Name string    `json:"name"`
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

var weekdays = map[string]time.Weekday{
	"MON": time.Monday, "TUE": time.Tuesday, "WED": time.Wednesday,
	"THU": time.Thursday, "FRI": time.Friday, "SAT": time.Saturday, "SUN": time.Sunday,
}

// Expand resolves a set of holidays (recurring ones included) into concrete
// date ranges clipped to [from, to]. Unparseable recurrence patterns yield no
// dates rather than guessing.
func Expand(hs []models.Holiday, from, to time.Time) []DateRange {
	from = day(from)
	to = day(to)

	var out []DateRange
	for _, h := range hs {
		if !h.IsRecurring {
			if r, ok := clip(h.Name, day(h.FromDate), day(h.ToDate), from, to); ok {
				out = append(out, r)
			}
			continue
		}
		out = append(out, expandRecurring(h, from, to)...)
	}
	return out
}

func expandRecurring(h models.Holiday, from, to time.Time) []DateRange {
	parts := strings.Split(h.RecurrencePattern, ":")
	switch parts[0] {
	case models.RecurrenceYearly:
		return expandYearly(h, from, to)
	case models.RecurrenceWeekly:
		if len(parts) != 2 {
			return nil
		}
		wd, ok := weekdays[parts[1]]
		if !ok {
			return nil
		}
		return expandWeekly(h.Name, wd, from, to)
	case models.RecurrenceMonthly:
		if len(parts) != 3 {
			return nil
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 1 || n > 5 {
			return nil
		}
		wd, ok := weekdays[parts[2]]
		if !ok {
			return nil
		}
		return expandMonthlyNth(h.Name, n, wd, from, to)
	}
	return nil
}

// expandYearly repeats the holiday's month/day span in every year that
// intersects the window.
func expandYearly(h models.Holiday, from, to time.Time) []DateRange {
	var out []DateRange
	span := day(h.ToDate).Sub(day(h.FromDate))
	for year := from.Year(); year <= to.Year(); year++ {
		start := time.Date(year, h.FromDate.Month(), h.FromDate.Day(), 0, 0, 0, 0, time.UTC)
		if start.Month() != h.FromDate.Month() {
			// Feb 29 anchor in a non-leap year; observe on Feb 28
			start = start.AddDate(0, 0, -1)
		}
		if r, ok := clip(h.Name, start, start.Add(span), from, to); ok {
			out = append(out, r)
		}
	}
	return out
}

func expandWeekly(name string, wd time.Weekday, from, to time.Time) []DateRange {
	var out []DateRange
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == wd {
			out = append(out, DateRange{Name: name, From: d, To: d})
		}
	}
	return out
}

// expandMonthlyNth emits the nth weekday of each month in the window; n=5
// clamps to the last occurrence of that weekday in the month.
func expandMonthlyNth(name string, n int, wd time.Weekday, from, to time.Time) []DateRange {
	var out []DateRange
	for month := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC); !month.After(to); month = month.AddDate(0, 1, 0) {
		d := nthWeekday(month, n, wd)
		if !d.Before(from) && !d.After(to) {
			out = append(out, DateRange{Name: name, From: d, To: d})
		}
	}
	return out
}

func nthWeekday(monthStart time.Time, n int, wd time.Weekday) time.Time {
	first := monthStart
	for first.Weekday() != wd {
		first = first.AddDate(0, 0, 1)
	}
	d := first.AddDate(0, 0, (n-1)*7)
	// clamp to the last occurrence when the month has no nth one
	for d.Month() != monthStart.Month() {
		d = d.AddDate(0, 0, -7)
	}
	return d
}

func clip(name string, start, end, from, to time.Time) (DateRange, bool) {
	if end.Before(from) || start.After(to) {
		return DateRange{}, false
	}
	if start.Before(from) {
		start = from
	}
	if end.After(to) {
		end = to
	}
	return DateRange{Name: name, From: start, To: end}, true
}

// WorkingDays counts the days of a month that are neither weekends nor
// covered by any holiday range.
func WorkingDays(year int, month time.Month, hs []models.Holiday) int {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)

	covered := make(map[string]bool)
	for _, r := range Expand(hs, start, end) {
		for d := r.From; !d.After(r.To); d = d.AddDate(0, 0, 1) {
			covered[d.Format("2006-01-02")] = true
		}
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if covered[d.Format("2006-01-02")] {
			continue
		}
		days++
	}
	return days
}

// IsWorkingDay reports whether d is a working day given the holiday set.
func IsWorkingDay(d time.Time, hs []models.Holiday) bool {
	if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		return false
	}
	d = day(d)
	for _, r := range Expand(hs, d, d) {
		if !d.Before(r.From) && !d.After(r.To) {
			return false
		}
	}
	return true
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
