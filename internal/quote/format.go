package quote

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.MustParse("es-AR"))

// FormatPrice renders an amount the way the product shows it: "$" plus es-AR digit grouping.
func FormatPrice(price int64) string {
	return "$" + pricePrinter.Sprintf("%d", price)
}

// FormatDuration turns hours into an approximate business-time phrase: days below a
// week, weeks and days below four weeks, then 22-day months and days.
func FormatDuration(hours float64) string {
	days := BusinessDaysFor(hours)
	if days < daysPerWeek {
		return plural(days, "día", "días")
	}

	weeks := days / daysPerWeek
	rem := days % daysPerWeek
	if weeks < weeksInMonth {
		if rem == 0 {
			return plural(weeks, "semana", "semanas")
		}
		return plural(weeks, "semana", "semanas") + " y " + plural(rem, "día", "días")
	}

	months := days / daysPerMonth
	remDays := days % daysPerMonth
	if months > 0 {
		if remDays == 0 {
			return plural(months, "mes", "meses")
		}
		return plural(months, "mes", "meses") + " y " + plural(remDays, "día", "días")
	}
	// 20 and 21 days: four weeks or more, still short of a 22-day month.
	return plural(days, "día", "días")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

var (
	dayNames   = [...]string{"Dom.", "Lun.", "Mar.", "Mié.", "Jue.", "Vie.", "Sáb."}
	monthNames = [...]string{"ene.", "feb.", "mar.", "abr.", "may.", "jun.", "jul.", "ago.", "sep.", "oct.", "nov.", "dic."}
)

// FormatDate renders a date as "Mar. 20 oct. 2026".
func FormatDate(d time.Time) string {
	return fmt.Sprintf("%s %d %s %d", dayNames[d.Weekday()], d.Day(), monthNames[d.Month()-1], d.Year())
}
