package main

import (
	"fmt"
	"log/slog"
	"os"

	"intercity/internal/delivery/cli"
)

func runMenu(dataPath string, logger *slog.Logger) error {
	fmt.Println("Loading transport data from file...")

	e := newEngine(logger)
	if err := e.LoadData(dataPath); err != nil {
		fmt.Println("Failed to load transport data. Exiting...")

		return err
	}

	fmt.Printf("Successfully loaded data. %d cities in the graph.\n", e.Size())

	return cli.NewMenu(e, os.Stdin, os.Stdout).Run()
}
