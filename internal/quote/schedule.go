package quote

import (
	"math"
	"time"
)

const (
	HoursPerDay = 8

	// StartBufferDays is how many business days after today a quote starts by default.
	StartBufferDays = 2

	daysPerWeek  = 5
	weeksInMonth = 4
	daysPerMonth = 22

	// maxHours caps schedules at roughly a thousand years of workdays.
	maxHours = 8 * 260 * 1000
)

// BusinessDaysFor converts hours to whole 8-hour workdays, rounding up. Totals are
// rounded to 1e-9 first so float noise from fractional task hours (0.2h × n) does
// not add a day.
func BusinessDaysFor(hours float64) int {
	if hours <= 0 {
		return 0
	}
	if hours > maxHours {
		hours = maxHours
	}
	h := math.Round(hours*1e9) / 1e9
	return int(math.Ceil(h / HoursPerDay))
}

func IsBusinessDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// AddBusinessDays moves forward n weekdays from date. date itself is never counted.
// Whole weeks are jumped at once and only the remainder is walked day by day.
func AddBusinessDays(date time.Time, n int) time.Time {
	d := truncateDay(date)
	if n <= 0 {
		return d
	}
	// A weekend start behaves as the Friday before it.
	for !IsBusinessDay(d) {
		d = d.AddDate(0, 0, -1)
	}
	weeks, rem := (n-1)/daysPerWeek, (n-1)%daysPerWeek+1
	d = d.AddDate(0, 0, weeks*7)
	for rem > 0 {
		d = d.AddDate(0, 0, 1)
		if IsBusinessDay(d) {
			rem--
		}
	}
	return d
}

func DefaultStartDate(now time.Time) time.Time {
	return AddBusinessDays(now, StartBufferDays)
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func RangeFor(start time.Time, hours float64) DateRange {
	start = truncateDay(start)
	return DateRange{Start: start, End: AddBusinessDays(start, BusinessDaysFor(hours))}
}

// truncateDay drops the clock part, keeping the calendar date of t in its own location.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
