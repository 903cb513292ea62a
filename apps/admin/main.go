package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/campuskit/backend/core"
	"github.com/campuskit/backend/storage/database"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

var rootCmd = &cobra.Command{
	Use:           "admin",
	Short:         "CampusKit admin tasks",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newApproveFacultyCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// openDB connects using the app configuration; commands share it through
// RunE closures so the connection only opens when a command actually runs.
func openDB(conf *core.Config) (*sqlx.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}
	return database.Open(conf)
}
