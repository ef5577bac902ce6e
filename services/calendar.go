// services/calendar.go - Themed Day Calendar
package services

import (
	"fmt"
	"time"

	"bookbound/models"
)

// themedDayTable is the static weekday lookup built once at startup.
// Every weekday must be present; a gap is a configuration bug.
var themedDayTable = buildThemedDayTable()

func buildThemedDayTable() [7]models.ThemedDay {
	var table [7]models.ThemedDay
	seen := 0
	for _, day := range models.DefaultThemedDays() {
		if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
			panic(fmt.Sprintf("themed day %q has invalid day_of_week %d", day.Slug, day.DayOfWeek))
		}
		table[day.DayOfWeek] = day
		seen++
	}
	if seen != 7 {
		panic(fmt.Sprintf("themed day table has %d entries, want 7", seen))
	}
	return table
}

// ThemeForDate maps a calendar date to its themed day. Pure and total:
// the table always covers all seven weekdays.
func ThemeForDate(t time.Time) models.ThemedDay {
	return themedDayTable[int(t.Weekday())]
}

// TodayTheme returns the themed day active right now.
func (s *GamificationService) TodayTheme() models.ThemedDay {
	return ThemeForDate(s.now())
}
