package main

import "time"

type Entry struct {
	ID        int64
	UID       string
	Text      string
	CreatedAt time.Time
}

type Quote struct {
	Text   string
	Author string
}

// Stats summarizes writing activity over the whole diary.
type Stats struct {
	TotalEntries  int
	TotalWords    int
	LongestEntry  int // words in the longest entry
	CurrentStreak int // consecutive days written, ending today or yesterday
	LongestStreak int
	BusiestDay    string // weekday with the most entries
}
