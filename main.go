package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// optional .env in the working directory
	godotenv.Load()

	cfg := LoadConfig()

	repo, err := NewRepo(cfg.DBPath)
	if err != nil {
		return err
	}
	defer repo.Close()

	app := NewApp(repo, NewQuoteClient(cfg.QuoteAPIURL), os.Stdout, os.Stdin)

	return SetupCommands(app).Execute()
}
