package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

type (
	ExportEntry struct {
		UID       string    `json:"uid"`
		Text      string    `json:"text"`
		CreatedAt time.Time `json:"created_at"`
	}

	ExportFile struct {
		ExportedAt time.Time     `json:"exported_at"`
		Total      int           `json:"total"`
		Entries    []ExportEntry `json:"entries"`
	}
)

// Export writes every entry to path as JSON.
func (a *App) Export(path string) error {
	entries, err := a.repo.ListEntries()
	if err != nil {
		return err
	}

	export := ExportFile{
		ExportedAt: time.Now(),
		Total:      len(entries),
		Entries:    make([]ExportEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		export.Entries = append(export.Entries, ExportEntry{
			UID:       entry.UID,
			Text:      entry.Text,
			CreatedAt: entry.CreatedAt,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding export: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing export file: %w", err)
	}

	fmt.Fprintf(a.out, "Exported %d %s to %s\n", export.Total, Plural(export.Total, "entry", "entries"), path)
	return nil
}

// Import reads an export file and stores the entries not already present,
// matched by uid.
func (a *App) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading import file: %w", err)
	}

	var export ExportFile
	if err := json.Unmarshal(data, &export); err != nil {
		return fmt.Errorf("error decoding import file: %w", err)
	}

	imported := 0
	for _, item := range export.Entries {
		// hand-written files may omit uids
		if item.UID == "" {
			item.UID = uuid.NewString()
		}

		stored, err := a.repo.ImportEntry(Entry{UID: item.UID, Text: item.Text, CreatedAt: item.CreatedAt})
		if err != nil {
			return err
		}
		if stored {
			imported++
		}
	}

	fmt.Fprintf(a.out, "Imported %d of %d entries.\n", imported, len(export.Entries))
	return nil
}
