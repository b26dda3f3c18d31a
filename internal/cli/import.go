package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/listctl"
	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import interviews from CSV",
		Long:  "Import interviews from CSV (a file or stdin). Expects the format produced by export. Past times are accepted.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open import file: %w", err)
				}
				defer f.Close()
				in = f
			}

			drafts, err := listctl.ParseCSV(in)
			if err != nil {
				return err
			}

			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			ivs := make([]model.Interview, 0, len(drafts))
			for i, d := range drafts {
				iv, err := s.ctl.Restore(d)
				if err != nil {
					return a.fail(out, fmt.Errorf("row %d: %w", i+1, err))
				}
				ivs = append(ivs, iv)
			}

			imported, err := s.store.InsertAll(cmd.Context(), ivs)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			a.log.Info().Int("imported", imported).Msg("import finished")
			if a.format == formatJSON {
				writeJSON(out, response{Success: true, Data: map[string]int{"imported": imported}})
				return nil
			}
			fmt.Fprintf(out, "Imported %d interview(s).\n", imported)
			return nil
		},
	}
}
