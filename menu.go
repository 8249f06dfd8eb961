package main

import (
	"fmt"
	"os"

	"github.com/nexidian/gocliselect"
	"golang.org/x/term"
)

// RunMenu drives the interactive session: pick an action, run it, repeat
// until the user quits. Errors from actions are reported and the loop
// keeps going.
func (a *App) RunMenu() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal, use the subcommands instead (see 'daybook --help')")
	}

	for {
		menu := gocliselect.NewMenu("What would you like to do?")
		menu.AddItem("Write a new entry", "add")
		menu.AddItem("Read your diary", "list")
		menu.AddItem("Quote of the day", "quote")
		menu.AddItem("Writing stats", "stats")
		menu.AddItem("Quit", "quit")

		switch menu.Display() {
		case "add":
			if err := a.AddInteractive(); err != nil {
				fmt.Fprintln(a.out, err.Error())
			}
		case "list":
			if err := a.List(""); err != nil {
				fmt.Fprintln(a.out, err.Error())
			}
		case "quote":
			a.ShowQuote()
		case "stats":
			if err := a.Stats(); err != nil {
				fmt.Fprintln(a.out, err.Error())
			}
		case "quit", "":
			// empty means the menu was cancelled with escape
			fmt.Fprintln(a.out, "Bye!")
			return nil
		}

		fmt.Fprintln(a.out)
	}
}
