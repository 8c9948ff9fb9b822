// Package dateutil holds the calendar math shared by the planner and the
// aggregation engine. Weeks always run Sunday through Saturday, regardless
// of locale.
package dateutil

import "time"

// LayoutISO is the day-key layout used across all persisted records.
const LayoutISO = "2006-01-02"

// WeekdayNames are the full weekday names, Sunday first.
var WeekdayNames = []string{
	"Domingo",
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
}

// WeekdayShort are the abbreviated weekday names used in trend labels.
var WeekdayShort = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// MonthNames indexes month names by time.Month - 1.
var MonthNames = []string{
	"Janeiro", "Fevereiro", "Março", "Abril",
	"Maio", "Junho", "Julho", "Agosto",
	"Setembro", "Outubro", "Novembro", "Dezembro",
}

// FormatISO renders t as a YYYY-MM-DD day key.
func FormatISO(t time.Time) string {
	return t.Format(LayoutISO)
}

// ParseISO parses a YYYY-MM-DD day key.
func ParseISO(s string) (time.Time, error) {
	return time.Parse(LayoutISO, s)
}

// Midnight truncates t to the start of its day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Sunday on or before t, at midnight.
func StartOfWeek(t time.Time) time.Time {
	return Midnight(t).AddDate(0, 0, -int(t.Weekday()))
}

// EndOfWeek returns the Saturday on or after t, at midnight.
func EndOfWeek(t time.Time) time.Time {
	return Midnight(t).AddDate(0, 0, 6-int(t.Weekday()))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// WeekdayName returns the full weekday name for t.
func WeekdayName(t time.Time) string {
	return WeekdayNames[int(t.Weekday())]
}

// FirstOfMonth returns the first day of the given month.
func FirstOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
}

// LastOfMonth returns the last day of the given month.
func LastOfMonth(year int, month time.Month) time.Time {
	return FirstOfMonth(year, month).AddDate(0, 1, -1)
}

// MonthName returns the month name for m.
func MonthName(m time.Month) string {
	return MonthNames[int(m)-1]
}
