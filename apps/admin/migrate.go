package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/campuskit/backend/core"
	"github.com/campuskit/backend/storage/database"
)

func newMigrateCmd() *cobra.Command {
	var down bool
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations (or roll back / show status)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if down && status {
				return errors.New("--down and --status are mutually exclusive")
			}

			db, err := openDB(core.NewConfig())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			switch {
			case status:
				return database.MigrationStatus(db)
			case down:
				if err = database.MigrateDown(db); err != nil {
					return err
				}
				successColor.Println("rolled back one migration")
			default:
				if err = database.Migrate(db); err != nil {
					return err
				}
				successColor.Println("migrations up to date")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "Roll back the most recent migration")
	cmd.Flags().BoolVar(&status, "status", false, "Print migration status")
	return cmd
}
