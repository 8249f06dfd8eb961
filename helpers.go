package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

func PrintTable(w io.Writer, headers []string, rows [][]string, footers []string) {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	// print header
	for i, header := range headers {
		fmt.Fprintf(w, "%-*s\t", colWidths[i], header)
	}
	fmt.Fprintln(w)

	// print rows
	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprintf(w, "%-*s\t", colWidths[i], cell)
		}
		fmt.Fprintln(w)
	}

	if len(footers) == 0 {
		return
	}

	// print footer
	for i, footer := range footers {
		if footer != "" {
			fmt.Fprintf(w, "%-*s\t", colWidths[i], footer)
		} else {
			// print empty space for skipped footer
			fmt.Fprintf(w, "%-*s\t", colWidths[i], "")
		}
	}
	fmt.Fprintln(w)
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// IndentTail prefixes every line after the first, keeping multi-line
// text aligned when printed behind a timestamp.
func IndentTail(text, prefix string) string {
	return strings.ReplaceAll(text, "\n", "\n"+prefix)
}

// Plural returns singular when n is 1, otherwise plural.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// ReadMultiline collects lines until an empty line or EOF and joins them
// with newlines.
func ReadMultiline(reader *bufio.Reader, w io.Writer, prompt string) string {
	fmt.Fprintln(w, prompt)
	fmt.Fprintln(w, "(press Enter on an empty line to finish)")

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
