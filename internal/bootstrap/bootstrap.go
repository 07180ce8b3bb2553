package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	deckinadapter "swipescoop/internal/modules/deck/adapter/in"
	deckoutadapter "swipescoop/internal/modules/deck/adapter/out"
	deckusecase "swipescoop/internal/modules/deck/usecase"
	progressinadapter "swipescoop/internal/modules/progress/adapter/in"
	progressoutadapter "swipescoop/internal/modules/progress/adapter/out"
	progressout "swipescoop/internal/modules/progress/port/out"
	progressservice "swipescoop/internal/modules/progress/service"
	progressusecase "swipescoop/internal/modules/progress/usecase"
	reportinadapter "swipescoop/internal/modules/report/adapter/in"
	reportoutadapter "swipescoop/internal/modules/report/adapter/out"
	reportusecase "swipescoop/internal/modules/report/usecase"
	"swipescoop/internal/platform/clock"
	"swipescoop/internal/platform/config"
	"swipescoop/internal/platform/id"
	"swipescoop/internal/platform/logging"
	"swipescoop/internal/platform/tx"
	uiapp "swipescoop/internal/ui/app"
)

type Options struct {
	// Clock overrides the wall clock, e.g. for --today.
	Clock clock.Clock
	// Logger defaults to stderr at the configured level.
	Logger hclog.Logger
}

type App struct {
	ProgressCLI progressinadapter.CLIHandler
	DeckCLI     deckinadapter.CLIHandler
	ReportCLI   reportinadapter.CLIHandler
	Colors      map[string]string

	closers []io.Closer
}

func New(cfg config.Config, opts Options) (*App, error) {
	clk := opts.Clock
	if clk == nil {
		clk = clock.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.New(cfg.LogLevel, os.Stderr)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}
	ids := id.UUID{}

	app := &App{Colors: cfg.Colors}
	store, txm, err := openStore(cfg, clk, app)
	if err != nil {
		return nil, err
	}
	logger.Named("store").Debug("ready", "backend", cfg.Store, "path", cfg.StateDir)

	progressLog := logger.Named("progress")
	progressUC := progressusecase.NewInteractor(
		progressservice.NewStateService(store, progressLog),
		progressservice.NewDayClock(clk, loc, progressLog),
		txm,
		ids,
		progressLog,
	)
	deckUC := deckusecase.NewInteractor(deckoutadapter.NewYAMLSource(cfg.DeckPath), ids, cfg.Categories, logger.Named("deck"))
	reportUC := reportusecase.NewInteractor(progressUC, reportoutadapter.NewVaultReportStore(cfg.ReportPath))

	app.ProgressCLI = progressinadapter.NewCLIHandler(progressUC)
	app.DeckCLI = deckinadapter.NewCLIHandler(deckUC)
	app.ReportCLI = reportinadapter.NewCLIHandler(reportUC)
	return app, nil
}

func openStore(cfg config.Config, clk clock.Clock, app *App) (progressout.PersistentStore, tx.Manager, error) {
	switch cfg.Store {
	case config.StoreFile:
		return progressoutadapter.NewFileStore(cfg.StateDir), tx.NoopManager{}, nil
	case config.StoreMemory:
		return progressoutadapter.NewMemoryStore(), tx.NoopManager{}, nil
	case config.StoreSQLite, "":
		store, err := progressoutadapter.NewSQLiteStore(cfg.DBPath, clk)
		if err != nil {
			return nil, nil, fmt.Errorf("open progress store: %w", err)
		}
		app.closers = append(app.closers, store)
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store %q", cfg.Store)
	}
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.ProgressCLI, app.DeckCLI, app.ReportCLI, app.Colors)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
