package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type deleteResult struct {
	Deleted int      `json:"deleted"`
	IDs     []string `json:"ids"`
}

func newRmCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id...>",
		Short: "Delete interviews",
		Long:  "Delete one or more interviews after confirmation. Several ids are removed together; unknown ones are skipped.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			confirm := confirmDelete(cmd.InOrStdin(), cmd.ErrOrStderr(), yes)

			var removed []string
			if len(args) == 1 {
				ok, err := s.ctl.DeleteOne(args[0], confirm)
				if err != nil {
					return err
				}
				if ok {
					removed = args[:1]
				}
			} else {
				for _, id := range args {
					if !s.ctl.IsSelected(id) {
						s.ctl.ToggleOne(id)
					}
				}
				removed = s.ctl.Selected()
				n, err := s.ctl.DeleteMany(removed, confirm)
				if err != nil {
					return err
				}
				if n == 0 {
					removed = nil
				}
			}

			if len(removed) > 0 {
				if _, err := s.store.Delete(cmd.Context(), removed...); err != nil {
					return fmt.Errorf("delete: %w", err)
				}
				a.log.Info().Strs("ids", removed).Msg("interviews deleted")
			}

			out := cmd.OutOrStdout()
			if a.format == formatJSON {
				if removed == nil {
					removed = []string{}
				}
				writeJSON(out, response{Success: true, Data: deleteResult{Deleted: len(removed), IDs: removed}})
				return nil
			}
			if len(removed) == 0 {
				fmt.Fprintln(out, "Nothing deleted.")
				return nil
			}
			fmt.Fprintf(out, "Deleted %d interview(s).\n", len(removed))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
