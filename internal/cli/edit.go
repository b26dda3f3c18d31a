package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/listctl"
	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"
	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/store"
)

func newAddCmd(a *app) *cobra.Command {
	var d listctl.Draft
	var status string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule an interview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			d.Status = model.Status(status)
			iv, err := s.ctl.Add(d)
			if err != nil {
				return a.fail(out, err)
			}
			if err := s.store.Insert(cmd.Context(), iv); err != nil {
				return fmt.Errorf("save interview: %w", err)
			}

			a.log.Info().Str("id", iv.ID).Msg("interview added")
			if a.format == formatJSON {
				writeJSON(out, response{Success: true, Data: iv})
				return nil
			}
			fmt.Fprintf(out, "Added %s\n", iv.ID)
			renderDetail(out, iv)
			return nil
		},
	}

	cmd.Flags().StringVar(&d.CandidateName, "candidate", "", "Candidate name (required)")
	cmd.Flags().StringVar(&d.JobTitle, "job", "", "Job title (required)")
	cmd.Flags().StringVar(&d.ScheduledAt, "at", "", "Scheduled time, e.g. 2026-11-02T14:30 (required, in the future)")
	cmd.Flags().StringVar(&status, "status", "", "Initial status (default scheduled)")
	cmd.Flags().StringVar(&d.Notes, "notes", "", "Free-form notes")

	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one interview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			iv, err := s.ctl.Get(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.format == formatJSON {
				writeJSON(out, response{Success: true, Data: iv})
				return nil
			}
			renderDetail(out, iv)
			return nil
		},
	}
}

func newNoteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "note <id> <text...>",
		Short: "Replace the notes of an interview",
		Long:  "Replace the notes of an interview. Pass an empty string to clear them.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			id, note := args[0], strings.Join(args[1:], " ")
			if err := s.ctl.EditNote(id, note); err != nil {
				return err
			}
			if err := s.store.UpdateNotes(cmd.Context(), id, note); err != nil {
				return fmt.Errorf("save notes: %w", err)
			}
			return a.printUpdated(cmd, s, id)
		},
	}
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "status <id> <status>",
		Short:     "Mark an interview scheduled, completed or cancelled",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(model.StatusScheduled), string(model.StatusCompleted), string(model.StatusCancelled)},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			id := args[0]
			if err := s.ctl.SetStatus(id, model.Status(args[1])); err != nil {
				return a.fail(cmd.OutOrStdout(), err)
			}
			if err := a.saveSchedule(cmd, s, id); err != nil {
				return err
			}
			return a.printUpdated(cmd, s, id)
		},
	}
}

func newRescheduleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reschedule <id> <when>",
		Short: "Move an interview to a new time",
		Long:  "Move an interview to a new time in the future. The interview becomes scheduled again.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			id := args[0]
			if err := s.ctl.Reschedule(id, args[1]); err != nil {
				return a.fail(cmd.OutOrStdout(), err)
			}
			if err := a.saveSchedule(cmd, s, id); err != nil {
				return err
			}
			return a.printUpdated(cmd, s, id)
		},
	}
}

func (a *app) saveSchedule(cmd *cobra.Command, s *session, id string) error {
	iv, err := s.ctl.Get(id)
	if err != nil {
		return err
	}
	err = s.store.UpdateSchedule(cmd.Context(), store.ScheduleParams{
		ID:          iv.ID,
		ScheduledAt: iv.ScheduledAt,
		Status:      iv.Status,
	})
	if err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}
	return nil
}

func (a *app) printUpdated(cmd *cobra.Command, s *session, id string) error {
	iv, err := s.ctl.Get(id)
	if err != nil {
		return err
	}

	a.log.Info().Str("id", id).Str("command", cmd.Name()).Msg("interview updated")
	out := cmd.OutOrStdout()
	if a.format == formatJSON {
		writeJSON(out, response{Success: true, Data: iv})
		return nil
	}
	renderDetail(out, iv)
	return nil
}
