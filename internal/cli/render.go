package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/listctl"
	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"
	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/store"
)

// response is the JSON envelope for every command.
type response struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type listData struct {
	Items []model.Interview `json:"items"`
	Meta  listctl.PageMeta  `json:"meta"`
}

const (
	tabPadding    = 2
	displayLayout = "Mon 02 Jan 2006 15:04"
)

var statusColors = map[model.Status]lipgloss.Color{
	model.StatusScheduled: lipgloss.Color("33"),
	model.StatusCompleted: lipgloss.Color("34"),
	model.StatusCancelled: lipgloss.Color("160"),
}

func writeJSON(w io.Writer, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

// chip renders a status label in its color.
func chip(s model.Status) string {
	style := lipgloss.NewStyle().Bold(true)
	if c, ok := statusColors[s]; ok {
		style = style.Foreground(c)
	}
	return style.Render(strings.ToUpper(string(s)))
}

func formatWhen(t time.Time) string {
	return t.Local().Format(displayLayout)
}

// renderTable writes one page of interviews followed by a page footer.
func renderTable(w io.Writer, v listctl.View, selected func(string) bool) {
	if v.Meta.TotalItems == 0 {
		fmt.Fprintln(w, "No interviews found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "\tID\tCANDIDATE\tJOB\tSCHEDULED\tSTATUS")
	for _, iv := range v.Items {
		mark := " "
		if selected != nil && selected(iv.ID) {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			mark, iv.ID, iv.CandidateName, iv.JobTitle, formatWhen(iv.ScheduledAt), chip(iv.Status))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nPage %d of %d (%d interviews)\n", v.Meta.CurrentPage, v.Meta.TotalPages, v.Meta.TotalItems)
}

func renderDetail(w io.Writer, iv model.Interview) {
	label := lipgloss.NewStyle().Bold(true)
	fmt.Fprintf(w, "%s %s\n", label.Render(iv.CandidateName), chip(iv.Status))
	fmt.Fprintf(w, "  id:        %s\n", iv.ID)
	fmt.Fprintf(w, "  job:       %s\n", iv.JobTitle)
	fmt.Fprintf(w, "  scheduled: %s\n", formatWhen(iv.ScheduledAt))
	if iv.Notes != "" {
		fmt.Fprintf(w, "  notes:     %s\n", iv.Notes)
	}
}

func renderFieldErrors(w io.Writer, fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	warn := lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	for _, k := range keys {
		fmt.Fprintf(w, "%s %s\n", warn.Render(k+":"), fields[k])
	}
}

func renderStats(w io.Writer, st *store.Stats) {
	fmt.Fprintf(w, "Database:  %s (%d bytes)\n", st.DBPath, st.DBSizeBytes)
	fmt.Fprintf(w, "Total:     %d\n", st.Total)
	fmt.Fprintf(w, "Upcoming:  %d\n", st.Upcoming)

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	for _, sc := range st.ByStatus {
		fmt.Fprintf(tw, "  %s\t%d\n", chip(sc.Status), sc.Count)
	}
	tw.Flush()
}
