package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// isTerminal reports whether r is an interactive terminal.
// Tests replace it to drive the prompt from a buffer.
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// askYesNo prints question with a [y/N] suffix and reads one line from in.
// Anything but y or yes declines, and so does a non-interactive input.
func askYesNo(in io.Reader, out io.Writer, question string) bool {
	if !isTerminal(in) {
		fmt.Fprintf(out, "%s [y/N] not a terminal, declining (use --yes)\n", question)
		return false
	}

	fmt.Fprintf(out, "%s [y/N] ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// confirmDelete returns the confirmation gate for destructive commands.
func confirmDelete(in io.Reader, out io.Writer, yes bool) func([]string) bool {
	return func(ids []string) bool {
		if yes {
			return true
		}
		q := "Delete this interview?"
		if len(ids) > 1 {
			q = fmt.Sprintf("Delete %d interviews?", len(ids))
		}
		return askYesNo(in, out, q)
	}
}
