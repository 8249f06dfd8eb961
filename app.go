package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"
)

var ErrEmptyEntry = errors.New("nothing to save, the entry text is empty")

// shown when the quote API is unreachable and nothing is cached yet
var placeholderQuote = Quote{
	Text:   "The secret of getting ahead is getting started.",
	Author: "Mark Twain",
}

type App struct {
	repo   *Repo
	quotes *QuoteClient
	out    io.Writer
	reader *bufio.Reader
}

func NewApp(repo *Repo, quotes *QuoteClient, out io.Writer, in io.Reader) *App {
	return &App{
		repo:   repo,
		quotes: quotes,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// Add validates and stores a new diary entry.
func (a *App) Add(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyEntry
	}

	entry, err := a.repo.AddEntry(text)
	if err != nil {
		return err
	}

	words := WordCount(entry.Text)
	fmt.Fprintf(a.out, "Added entry #%d (%d %s).\n", entry.ID, words, Plural(words, "word", "words"))
	return nil
}

// AddInteractive shows today's quote, then prompts for the entry text.
func (a *App) AddInteractive() error {
	a.ShowQuote()
	fmt.Fprintln(a.out)

	text := ReadMultiline(a.reader, a.out, "Write your entry:")
	return a.Add(text)
}

// AddPiped stores everything readable from the input stream as one entry.
func (a *App) AddPiped() error {
	text, err := io.ReadAll(a.reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return a.Add(string(text))
}

// List prints entries oldest first, grouped by day. period narrows the
// range to day, week, month or year; empty means everything.
func (a *App) List(period string) error {
	entries, err := a.listForPeriod(period)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No entries yet.")
		return nil
	}

	var lastDay string
	for _, entry := range entries {
		day := entry.CreatedAt.Format("Monday, Jan 02, 2006")

		if day != lastDay {
			if lastDay != "" {
				fmt.Fprintln(a.out)
			}
			fmt.Fprintln(a.out, day)
			lastDay = day
		}

		fmt.Fprintf(a.out, "  %s  %s\n", entry.CreatedAt.Format("15:04"), IndentTail(entry.Text, "         "))
	}

	fmt.Fprintf(a.out, "\n%d %s\n", len(entries), Plural(len(entries), "entry", "entries"))
	return nil
}

func (a *App) listForPeriod(period string) ([]Entry, error) {
	if period == "" {
		return a.repo.ListEntries()
	}

	start, end, err := periodWindow(period, time.Now())
	if err != nil {
		return nil, err
	}

	return a.repo.ListEntriesBetween(start, end)
}

// periodWindow returns the half-open [start, end) range of the period
// containing now.
func periodWindow(period string, now time.Time) (time.Time, time.Time, error) {
	var start, end time.Time

	switch period {
	case "day":
		start = startOfDay(now)
		end = start.AddDate(0, 0, 1)
	case "week":
		// weeks start monday; sunday is day seven of the running week,
		// not day zero of the next
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start = startOfDay(now).AddDate(0, 0, 1-weekday)
		end = start.AddDate(0, 0, 7)
	case "month":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, 0)
	case "year":
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(1, 0, 0)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("invalid period: %s", period)
	}

	return start, end, nil
}

// QuoteOfTheDay picks the cached quote for the current day, filling the
// cache from the API on first use. An unreachable API with an empty cache
// falls back to a stock quote so the diary keeps working offline.
func (a *App) QuoteOfTheDay() Quote {
	count, err := a.repo.CountQuotes()
	if err != nil {
		return placeholderQuote
	}

	if count == 0 {
		quotes, err := a.quotes.FetchQuotes()
		if err != nil || len(quotes) == 0 {
			if err != nil {
				log.Printf("quote api unavailable: %v", err)
			}
			return placeholderQuote
		}
		if err := a.repo.SaveQuotes(quotes); err != nil {
			return placeholderQuote
		}
		if count, err = a.repo.CountQuotes(); err != nil || count == 0 {
			return placeholderQuote
		}
	}

	quote, err := a.repo.QuoteAt(time.Now().YearDay() % count)
	if err != nil {
		return placeholderQuote
	}

	return quote
}

// ShowQuote prints today's quote.
func (a *App) ShowQuote() {
	quote := a.QuoteOfTheDay()
	fmt.Fprintf(a.out, "%q\n", quote.Text)
	fmt.Fprintf(a.out, "    - %s\n", quote.Author)
}

// Stats prints aggregate writing activity.
func (a *App) Stats() error {
	entries, err := a.repo.ListEntries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No entries yet.")
		return nil
	}

	stats := BuildStats(entries, time.Now())

	rows := [][]string{
		{"Entries", fmt.Sprintf("%d", stats.TotalEntries)},
		{"Words written", fmt.Sprintf("%d", stats.TotalWords)},
		{"Longest entry", fmt.Sprintf("%d %s", stats.LongestEntry, Plural(stats.LongestEntry, "word", "words"))},
		{"Current streak", fmt.Sprintf("%d %s", stats.CurrentStreak, Plural(stats.CurrentStreak, "day", "days"))},
		{"Longest streak", fmt.Sprintf("%d %s", stats.LongestStreak, Plural(stats.LongestStreak, "day", "days"))},
		{"Busiest day", stats.BusiestDay},
	}

	PrintTable(a.out, []string{"Stat", "Value"}, rows, nil)
	return nil
}
