package temporal

import "time"

// Buckets are the calendar coordinates derived once per timestamped record
// and shared by every aggregation.
type Buckets struct {
	Year    int
	Month   string // "2006-01"
	Weekday time.Weekday
	Hour    int
}

// Derive computes the calendar buckets for a timestamp.
func Derive(t time.Time) Buckets {
	return Buckets{
		Year:    t.Year(),
		Month:   MonthKey(t),
		Weekday: t.Weekday(),
		Hour:    t.Hour(),
	}
}

// MonthKey formats a timestamp as its year-month series label.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthRange returns every month key from first to last inclusive, so that
// monthly series carry zero-count months instead of gaps.
func MonthRange(first, last time.Time) []string {
	if first.IsZero() || last.IsZero() || last.Before(first) {
		return nil
	}
	cur := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, time.UTC)
	var months []string
	for !cur.After(end) {
		months = append(months, MonthKey(cur))
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}

// WeekdayOrder lists days Monday-first, the order the dashboard charts use.
var WeekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}
