package listctl

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"
)

// ExportMIMEType is the content type of ExportCSV output.
const ExportMIMEType = "text/csv"

// column is one exported field. The id is never exported.
type column struct {
	name  string
	value func(model.Interview) string
}

var columns = []column{
	{"candidate_name", func(r model.Interview) string { return r.CandidateName }},
	{"job_title", func(r model.Interview) string { return r.JobTitle }},
	{"scheduled_at", func(r model.Interview) string { return r.ScheduledAt.Format(time.RFC3339Nano) }},
	{"status", func(r model.Interview) string { return string(r.Status) }},
	{"notes", func(r model.Interview) string { return r.Notes }},
}

// ExportCSV renders records as CSV: a header row of field names followed by
// one row per record with every value double-quoted. No records yields "".
func ExportCSV(records []model.Interview) string {
	if len(records) == 0 {
		return ""
	}

	var b strings.Builder
	for i, col := range columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(col.name)
	}
	b.WriteByte('\n')

	for _, r := range records {
		for i, col := range columns {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(col.value(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportSelection exports the selected records, or the whole collection when
// onlySelected is false. Search and status filters do not apply.
func (c *Controller) ExportSelection(onlySelected bool) string {
	if onlySelected {
		return ExportCSV(c.SelectedRecords())
	}
	return ExportCSV(c.records)
}

// ExportFileName returns the download name for an export of entity.
func ExportFileName(entity string, onlySelected bool) string {
	if onlySelected {
		return "selected_" + entity + ".csv"
	}
	return "all_" + entity + ".csv"
}

// ParseCSV reads drafts from the ExportCSV format. Columns are matched by
// header name; unknown columns are ignored and missing ones stay empty.
func ParseCSV(r io.Reader) ([]Draft, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}
	field := func(row []string, name string) string {
		i, ok := pos[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var drafts []Draft
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return drafts, fmt.Errorf("read csv line %d: %w", line, err)
		}
		drafts = append(drafts, Draft{
			CandidateName: field(row, "candidate_name"),
			JobTitle:      field(row, "job_title"),
			ScheduledAt:   field(row, "scheduled_at"),
			Status:        model.Status(field(row, "status")),
			Notes:         field(row, "notes"),
		})
	}
	return drafts, nil
}
