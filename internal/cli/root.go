// Package cli implements the vocab command line: an interactive add and
// review loop, import/export, and the local HTTP service.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocab-builder/internal/app"
	"github.com/heartmarshall/vocab-builder/internal/config"
	"github.com/heartmarshall/vocab-builder/internal/domain"
	"github.com/heartmarshall/vocab-builder/internal/service/study"
	"github.com/heartmarshall/vocab-builder/internal/service/workspace"
)

// skipSetup marks commands that run without configuration or a store.
const skipSetup = "skip-setup"

// env is the state shared by every subcommand of one invocation.
type env struct {
	fromLang string
	toLang   string
	noLookup bool
	verbose  bool

	cfg *config.Config
	log *slog.Logger
	c   *app.Container
}

// Execute runs the command tree with ctx and closes whatever the command
// opened.
func Execute(ctx context.Context) error {
	e := &env{}
	err := newRootCommand(e).ExecuteContext(ctx)
	return errors.Join(err, e.close())
}

func newRootCommand(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "vocab",
		Short:         "Vocabulary practice for learning a foreign language",
		Long:          "vocab stores word pairs per language pair and quizzes you on the ones that are due.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSetup] != "" {
				return nil
			}
			return e.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&e.fromLang, "from-lang", "f", "", "language you know (code or name)")
	pf.StringVarP(&e.toLang, "to-lang", "t", "", "language you are learning (code or name)")
	pf.BoolVar(&e.noLookup, "no-word-lookup", false, "never call the translation service")
	pf.BoolVarP(&e.verbose, "verbose", "v", false, "log at the configured level instead of warnings only")

	root.AddCommand(
		newServeCommand(e),
		newAddCommand(e),
		newTestCommand(e),
		newImportCommand(e),
		newExportCommand(e),
		newCountCommand(e),
		newLangsCommand(e),
		newDeleteCommand(e),
		newRestoreCommand(e),
		newSnapshotCommand(e),
		newVersionCommand(),
	)
	return root
}

func (e *env) close() error {
	if e.c == nil {
		return nil
	}
	err := e.c.Close()
	e.c = nil
	return err
}

// setup loads configuration, applies flag overrides and builds the
// container.
func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if e.noLookup {
		cfg.Translator.Lookup = false
	}
	// Interactive commands keep the terminal clean unless asked otherwise.
	if cmd.Name() != "serve" && !e.verbose && cfg.Log.Dir == "" {
		cfg.Log.Level = "warn"
	}

	e.cfg = cfg
	e.log = app.NewLogger(cfg.Log)

	c, err := app.Build(cmd.Context(), cfg, e.log)
	if err != nil {
		return err
	}
	e.c = c
	return nil
}

// pair picks the languages: flags first, then saved defaults, then
// configuration.
func (e *env) pair() domain.LangPair {
	pair := e.cfg.Study.Pair()
	if saved, err := e.c.Prefs.DefaultLangs(); err == nil {
		pair = saved
	} else if !errors.Is(err, domain.ErrNoData) {
		e.log.Warn("default languages unreadable", slog.String("error", err.Error()))
	}
	if e.fromLang != "" {
		pair.From = e.fromLang
	}
	if e.toLang != "" {
		pair.To = e.toLang
	}
	return pair
}

// studyOptions returns the configured review options.
func (e *env) studyOptions() study.Options {
	return study.Options{
		MinCorrect: e.cfg.Study.MinCorrect,
		MinAgeDays: e.cfg.Study.MinAgeDays,
		WordOrder:  e.cfg.Study.WordOrder,
		Part:       e.cfg.Study.PartFilter,
	}
}

// open resolves the languages and opens a workspace with opts.
func (e *env) open(ctx context.Context, opts study.Options) (*workspace.Workspace, error) {
	pair := e.pair()
	ws, err := e.c.Workspaces.Open(ctx, workspace.OpenInput{
		From:    pair.From,
		To:      pair.To,
		Options: opts,
		Lookup:  e.cfg.Translator.Enabled(),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", pair, err)
	}
	return ws, nil
}
