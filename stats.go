package main

import "time"

// BuildStats aggregates writing activity from entries ordered oldest first,
// the order ListEntries returns them in.
func BuildStats(entries []Entry, now time.Time) Stats {
	stats := Stats{TotalEntries: len(entries)}
	if len(entries) == 0 {
		return stats
	}

	weekdays := make(map[time.Weekday]int)

	// collapse entries into the distinct days they were written on
	var days []time.Time
	for _, entry := range entries {
		words := WordCount(entry.Text)
		stats.TotalWords += words
		if words > stats.LongestEntry {
			stats.LongestEntry = words
		}

		weekdays[entry.CreatedAt.Weekday()]++

		day := startOfDay(entry.CreatedAt)
		if len(days) == 0 || !day.Equal(days[len(days)-1]) {
			days = append(days, day)
		}
	}

	// longest run of consecutive days
	run := 1
	stats.LongestStreak = 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > stats.LongestStreak {
			stats.LongestStreak = run
		}
	}

	// current streak counts back from the last written day, but only if
	// that day is today or yesterday; older streaks are already broken
	today := startOfDay(now)
	last := days[len(days)-1]
	if last.Equal(today) || last.Equal(today.AddDate(0, 0, -1)) {
		stats.CurrentStreak = 1
		for i := len(days) - 1; i > 0; i-- {
			if !days[i-1].Equal(days[i].AddDate(0, 0, -1)) {
				break
			}
			stats.CurrentStreak++
		}
	}

	var busiest time.Weekday
	for day := time.Sunday; day <= time.Saturday; day++ {
		if weekdays[day] > weekdays[busiest] {
			busiest = day
		}
	}
	stats.BusiestDay = busiest.String()

	return stats
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
