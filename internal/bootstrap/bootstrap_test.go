package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"

	"swipescoop/internal/platform/clock"
	"swipescoop/internal/platform/config"
)

func TestNewWiresEachStoreBackend(t *testing.T) {
	t.Parallel()
	for _, backend := range []string{config.StoreSQLite, config.StoreFile, config.StoreMemory} {
		backend := backend
		t.Run(backend, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			cfg, err := config.New(dir)
			if err != nil {
				t.Fatalf("config: %v", err)
			}
			cfg.Store = backend
			cfg.Timezone = "UTC"
			app, err := New(cfg, Options{
				Clock:  clock.Fixed(time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)),
				Logger: hclog.NewNullLogger(),
			})
			if err != nil {
				t.Fatalf("bootstrap: %v", err)
			}
			defer app.Close()

			ctx := context.Background()
			start, err := app.ProgressCLI.Start(ctx)
			if err != nil || start.Today != "2025-01-02" || start.Streak != 1 {
				t.Fatalf("unexpected start %+v %v", start, err)
			}
			if _, err := app.ProgressCLI.Accept(ctx, "", "Go 1.25 released", "The Go Blog", "", "technology"); err != nil {
				t.Fatalf("accept: %v", err)
			}
			out, err := app.ReportCLI.Write(ctx)
			if err != nil {
				t.Fatalf("report: %v", err)
			}
			if _, err := os.Stat(out.Path); err != nil {
				t.Fatalf("report note missing: %v", err)
			}
			deck, err := app.DeckCLI.Load(ctx, "")
			if err != nil || !deck.Offline {
				t.Fatalf("missing deck file should yield offline deck, got %+v %v", deck, err)
			}
		})
	}
}

func TestSQLiteStatePersistsAcrossApps(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, _ := config.New(dir)
	cfg.Timezone = "UTC"
	open := func(day int) *App {
		app, err := New(cfg, Options{
			Clock:  clock.Fixed(time.Date(2025, 1, day, 8, 0, 0, 0, time.UTC)),
			Logger: hclog.NewNullLogger(),
		})
		if err != nil {
			t.Fatalf("bootstrap: %v", err)
		}
		return app
	}
	ctx := context.Background()

	first := open(1)
	if _, err := first.ProgressCLI.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	_ = first.Close()

	second := open(2)
	defer second.Close()
	start, err := second.ProgressCLI.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if start.Streak != 2 || !start.WindowShifted {
		t.Fatalf("expected consecutive-day streak, got %+v", start)
	}
	if _, err := os.Stat(filepath.Join(dir, ".swipescoop", "swipescoop.db")); err != nil {
		t.Fatalf("database not created: %v", err)
	}
}
