package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/campuskit/backend/core"
	"github.com/campuskit/backend/core/faculty"
	pgrepos "github.com/campuskit/backend/storage/database/pg"
)

func newApproveFacultyCmd() *cobra.Command {
	var reject bool
	var listOnly bool

	cmd := &cobra.Command{
		Use:   "approvefaculty [request-id]",
		Short: "Decide pending faculty requests",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(core.NewConfig())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			ctx := cmd.Context()
			svc := faculty.NewService(pgrepos.NewFacultyRepository(db))

			if listOnly || len(args) == 0 {
				reqs, err := svc.QueryRequests(ctx, faculty.StatusPending)
				if err != nil {
					return err
				}
				if len(reqs) == 0 {
					infoColor.Println("no pending requests")
					return nil
				}
				for _, r := range reqs {
					cmd.Printf("%s  %-5s  %-25s  %s\n", r.ID, r.Initials, r.Name, r.Department)
				}
				return nil
			}

			req, err := svc.Decide(ctx, args[0], !reject)
			if err != nil {
				return errors.Wrap(err, "deciding request")
			}
			if req.Status == faculty.StatusApproved {
				successColor.Printf("approved %s (%s)\n", req.Initials, req.Name)
			} else {
				infoColor.Printf("rejected %s (%s)\n", req.Initials, req.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reject, "reject", false, "Reject instead of approve")
	cmd.Flags().BoolVar(&listOnly, "list", false, "List pending requests and exit")
	return cmd
}
