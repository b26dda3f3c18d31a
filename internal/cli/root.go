// Package cli implements the interviews CLI commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/config"
	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/listctl"
	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/logging"
	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/store"
)

const (
	formatJSON = "json"
	formatText = "text"
)

// app holds the state shared by every command of one invocation.
type app struct {
	dbFlag     string
	configFlag string
	format     string
	debug      bool

	lookupEnv func(string) (string, bool)
	cfg       config.Config
	log       zerolog.Logger
}

// NewRootCmd creates the top-level command.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithEnv(os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup.
func NewRootCmdWithEnv(lookupEnv func(string) (string, bool)) *cobra.Command {
	a := &app{lookupEnv: lookupEnv, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "interviews",
		Short:         "Manage scheduled interviews",
		Long:          "A small CLI for the interview list: search, sort, page, edit, delete and export. SQLite-backed, single binary.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.dbFlag, "db", "d", "", "Database path (default: $"+config.EnvDBPath+" or ~/.techedu/interviews.db)")
	pf.StringVar(&a.configFlag, "config", "", "Config file (default: ~/.techedu/interviews.yaml)")
	pf.StringVarP(&a.format, "format", "f", formatText, "Output format: json or text")
	pf.BoolVar(&a.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newListCmd(a),
		newAddCmd(a),
		newShowCmd(a),
		newNoteCmd(a),
		newStatusCmd(a),
		newRescheduleCmd(a),
		newRmCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newStatsCmd(a),
		newCopyCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.format != formatJSON && a.format != formatText {
		return fmt.Errorf("unknown format %q (want json or text)", a.format)
	}

	cfg, err := config.Load(a.configFlag, a.lookupEnv)
	if err != nil {
		return err
	}
	if a.dbFlag != "" {
		cfg.DBPath = a.dbFlag
	}
	if a.debug {
		cfg.Logging.Level = "debug"
		cfg.Logging.Format = "console"
	}
	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	a.log.Debug().Str("db", cfg.DBPath).Str("command", cmd.Name()).Msg("starting")
	return nil
}

// session is an open store plus a controller loaded from it.
type session struct {
	store *store.SQLiteStore
	ctl   *listctl.Controller
}

func (a *app) open(ctx context.Context, opts ...listctl.Option) (*session, error) {
	s, err := store.NewSQLiteStore(a.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	records, err := s.All(ctx)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("load interviews: %w", err)
	}

	base := []listctl.Option{
		listctl.WithPageSize(a.cfg.PageSize),
		listctl.WithEnterDuration(a.cfg.EnterAnimation),
		listctl.WithExitDuration(a.cfg.ExitAnimation),
		listctl.WithLogger(logging.ComponentLogger(a.log, "listctl")),
	}
	ctl, err := listctl.New(records, append(base, opts...)...)
	if err != nil {
		s.Close()
		return nil, err
	}

	a.log.Debug().Int("records", ctl.Len()).Msg("session opened")
	return &session{store: s, ctl: ctl}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

// fail writes validation errors as a response envelope and passes err through.
func (a *app) fail(w io.Writer, err error) error {
	var verr *listctl.ValidationError
	if errors.As(err, &verr) {
		if a.format == formatJSON {
			writeJSON(w, response{Success: false, Errors: verr.Fields})
		} else {
			renderFieldErrors(w, verr.Fields)
		}
	}
	return err
}
