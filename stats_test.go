package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildStats_Empty(t *testing.T) {
	got := BuildStats(nil, time.Now())
	assert.Equal(t, Stats{}, got)
}

func TestBuildStats_Totals(t *testing.T) {
	day := time.Date(2026, time.August, 22, 9, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Text: "hello world", CreatedAt: day},
		{Text: "one two three four", CreatedAt: day.Add(2 * time.Hour)},
		{Text: "word", CreatedAt: day.Add(4 * time.Hour)},
	}

	got := BuildStats(entries, day)
	assert.Equal(t, 3, got.TotalEntries)
	assert.Equal(t, 7, got.TotalWords)
	assert.Equal(t, 4, got.LongestEntry)
}

func TestBuildStats_Streaks(t *testing.T) {
	// 2026-08-22 is a Saturday
	now := time.Date(2026, time.August, 22, 15, 0, 0, 0, time.UTC)
	at := func(day, hour int) time.Time {
		return time.Date(2026, time.August, day, hour, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name        string
		stamps      []time.Time
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "consecutive days ending today",
			stamps:      []time.Time{at(20, 9), at(21, 9), at(22, 9)},
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "streak ending yesterday still counts",
			stamps:      []time.Time{at(20, 9), at(21, 9)},
			wantCurrent: 2,
			wantLongest: 2,
		},
		{
			name:        "gap before today resets the current streak",
			stamps:      []time.Time{at(18, 9), at(19, 9), at(22, 9)},
			wantCurrent: 1,
			wantLongest: 2,
		},
		{
			name:        "last entry two days ago breaks the streak",
			stamps:      []time.Time{at(19, 9), at(20, 9)},
			wantCurrent: 0,
			wantLongest: 2,
		},
		{
			name:        "several entries on one day count once",
			stamps:      []time.Time{at(22, 9), at(22, 13), at(22, 21)},
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "old run stays the longest",
			stamps:      []time.Time{at(10, 9), at(11, 9), at(12, 9), at(13, 9), at(22, 9)},
			wantCurrent: 1,
			wantLongest: 4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entries := make([]Entry, 0, len(tc.stamps))
			for _, ts := range tc.stamps {
				entries = append(entries, Entry{Text: "wrote", CreatedAt: ts})
			}

			got := BuildStats(entries, now)
			assert.Equal(t, tc.wantCurrent, got.CurrentStreak, "current streak")
			assert.Equal(t, tc.wantLongest, got.LongestStreak, "longest streak")
		})
	}
}

func TestBuildStats_BusiestDay(t *testing.T) {
	// 2026-08-17 is a Monday
	monday := time.Date(2026, time.August, 17, 9, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Text: "a", CreatedAt: monday},
		{Text: "b", CreatedAt: monday.Add(11 * time.Hour)},
		{Text: "c", CreatedAt: monday.AddDate(0, 0, 1)},
	}

	got := BuildStats(entries, monday.AddDate(0, 0, 2))
	assert.Equal(t, "Monday", got.BusiestDay)
}
