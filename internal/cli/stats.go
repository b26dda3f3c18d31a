package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			st, err := s.store.Stats(cmd.Context(), a.cfg.DBPath)
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}

			out := cmd.OutOrStdout()
			if a.format == formatJSON {
				writeJSON(out, response{Success: true, Data: st})
				return nil
			}
			renderStats(out, st)
			return nil
		},
	}
}
