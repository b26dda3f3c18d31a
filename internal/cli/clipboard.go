package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/listctl"
)

var writeClipboard = clipboard.WriteAll

// copyText puts text on the system clipboard and reports whether that worked.
func copyText(text string) bool {
	return writeClipboard(text) == nil
}

func newCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy an interview to the clipboard as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			s.ctl.ToggleOne(args[0])
			if !s.ctl.IsSelected(args[0]) {
				_, err := s.ctl.Get(args[0])
				return err
			}

			text := s.ctl.ExportSelection(true)
			out := cmd.OutOrStdout()
			if !copyText(text) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Clipboard unavailable, printing instead.")
				fmt.Fprint(out, text)
				return nil
			}
			fmt.Fprintf(out, "Copied %s to the clipboard (%s).\n", args[0], listctl.ExportMIMEType)
			return nil
		},
	}
}
