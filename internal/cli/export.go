package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/listctl"
)

const exportEntity = "interviews"

type exportResult struct {
	File     string `json:"file"`
	MIMEType string `json:"mime_type"`
	Count    int    `json:"count"`
}

func newExportCmd(a *app) *cobra.Command {
	var (
		idList string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export interviews as CSV",
		Long:  "Export every interview, or only --ids, as CSV. Writes all_interviews.csv or selected_interviews.csv unless -o is given; -o - writes to stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			onlySelected := idList != ""
			for _, id := range strings.Split(idList, ",") {
				id = strings.TrimSpace(id)
				if id != "" && !s.ctl.IsSelected(id) {
					s.ctl.ToggleOne(id)
				}
			}

			count := s.ctl.Len()
			if onlySelected {
				count = len(s.ctl.Selected())
			}
			out := cmd.OutOrStdout()
			if count == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "Nothing to export.")
				return nil
			}
			csv := s.ctl.ExportSelection(onlySelected)

			if output == "-" {
				fmt.Fprint(out, csv)
				return nil
			}
			if output == "" {
				output = listctl.ExportFileName(exportEntity, onlySelected)
			}
			if err := os.WriteFile(output, []byte(csv), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}

			a.log.Info().Str("file", output).Int("count", count).Msg("exported")
			if a.format == formatJSON {
				writeJSON(out, response{Success: true, Data: exportResult{File: output, MIMEType: listctl.ExportMIMEType, Count: count}})
				return nil
			}
			fmt.Fprintf(out, "Wrote %d interview(s) to %s\n", count, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&idList, "ids", "", "Only export these ids (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, or - for stdout")

	return cmd
}
