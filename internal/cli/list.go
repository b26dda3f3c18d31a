package cli

import (
	"github.com/spf13/cobra"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/listctl"
)

func newListCmd(a *app) *cobra.Command {
	var (
		search   string
		status   string
		desc     bool
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List interviews",
		Long:  "List one page of interviews, filtered by candidate or job and status, ordered by scheduled time.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []listctl.Option
			if cmd.Flags().Changed("page-size") {
				opts = append(opts, listctl.WithPageSize(pageSize))
			}

			s, err := a.open(cmd.Context(), opts...)
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			s.ctl.SetSearch(search)
			if err := s.ctl.SetStatusFilter(status); err != nil {
				return a.fail(out, err)
			}
			s.ctl.SetAscending(!desc)
			s.ctl.GoToPage(page)

			v := s.ctl.View()
			if a.format == formatJSON {
				writeJSON(out, response{Success: true, Data: listData{Items: v.Items, Meta: v.Meta}})
				return nil
			}
			renderTable(out, v, s.ctl.IsSelected)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Match candidate name or job title")
	cmd.Flags().StringVar(&status, "status", "all", "Filter by status: all, scheduled, completed, cancelled")
	cmd.Flags().BoolVar(&desc, "desc", false, "Latest first")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", listctl.DefaultPageSize, "Rows per page")

	return cmd
}
