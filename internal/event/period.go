package event

import (
	"strconv"
	"strings"
)

// Period is a date-based amount of time in years, months and days.
// All nonzero components of a Period returned by Between share one sign.
type Period struct {
	Years  int
	Months int
	Days   int
}

// Between returns the period from start to end. The result is negative when
// end is before start.
//
// Months are counted first; the remaining days are measured from start
// shifted by the whole months (clamped to month end), so 2024-01-31 to
// 2024-03-01 is 1 month and 1 day.
func Between(start, end Date) Period {
	totalMonths := (end.Year*12 + int(end.Month)) - (start.Year*12 + int(start.Month))
	days := end.Day - start.Day

	if totalMonths > 0 && days < 0 {
		totalMonths--
		days = int(end.epochDay() - start.AddMonths(totalMonths).epochDay())
	} else if totalMonths < 0 && days > 0 {
		totalMonths++
		days -= daysIn(end.Year, end.Month)
	}

	return Period{
		Years:  totalMonths / 12,
		Months: totalMonths % 12,
		Days:   days,
	}
}

// IsZero reports whether every component is zero.
func (p Period) IsZero() bool {
	return p.Years == 0 && p.Months == 0 && p.Days == 0
}

// IsNegative reports whether any component is negative.
func (p Period) IsNegative() bool {
	return p.Years < 0 || p.Months < 0 || p.Days < 0
}

// Phrase spells p out relative to now: "today" for a zero period,
// "<n> years <n> months <n> days ago" for a positive one and
// "in <n> years <n> months <n> days " for a negative one. Zero components are
// omitted. The trailing space on future phrases is part of the format.
func (p Period) Phrase() string {
	if p.IsZero() {
		return "today"
	}

	var sb strings.Builder
	writeUnit(&sb, p.Years, "years")
	writeUnit(&sb, p.Months, "months")
	writeUnit(&sb, p.Days, "days")

	if p.IsNegative() {
		return "in " + sb.String()
	}
	sb.WriteString("ago")
	return sb.String()
}

func writeUnit(sb *strings.Builder, n int, unit string) {
	if n == 0 {
		return
	}
	if n < 0 {
		n = -n
	}
	sb.WriteString(strconv.Itoa(n))
	sb.WriteByte(' ')
	sb.WriteString(unit)
	sb.WriteByte(' ')
}
