package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func SetupCommands(a *App) *cobra.Command {
	// root command starts the interactive menu
	rootCmd := &cobra.Command{
		Use:           "daybook",
		Short:         "A personal diary in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.RunMenu()
		},
	}

	// command for adding a new entry, from arguments, a pipe or a prompt
	addCmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a diary entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && args[0] == "-" {
				return a.AddPiped()
			}
			if len(args) > 0 {
				return a.Add(strings.Join(args, " "))
			}

			// piped input goes straight to the store
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return a.AddPiped()
			}

			return a.AddInteractive()
		},
	}

	// command for listing entries, oldest first
	var period string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show diary entries, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.List(period)
		},
	}
	listCmd.Flags().StringVarP(&period, "period", "p", "", "limit to day, week, month or year")
	listCmd.RegisterFlagCompletionFunc("period", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"day", "week", "month", "year"}, cobra.ShellCompDirectiveNoFileComp
	})

	// command for showing today's quote
	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Show the quote of the day",
		Run: func(cmd *cobra.Command, args []string) {
			a.ShowQuote()
		},
	}

	// command for writing statistics
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show writing statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Stats()
		},
	}

	// command for exporting the diary to a JSON file
	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export all entries to a JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "daybook-export.json"
			if len(args) > 0 {
				path = args[0]
			}
			return a.Export(path)
		},
	}

	// command for importing entries from an export file
	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import entries from an export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Import(args[0])
		},
	}

	// add commands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	return rootCmd
}
