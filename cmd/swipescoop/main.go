package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"swipescoop/internal/bootstrap"
	progressdto "swipescoop/internal/modules/progress/dto"
	"swipescoop/internal/platform/clock"
	"swipescoop/internal/platform/config"
	apperrors "swipescoop/internal/platform/errors"
	"swipescoop/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	dataPath string
	today    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "swipescoop",
		Short:         "Track reading streaks and saved headlines",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.dataPath, "data", ".", "data directory")
	root.PersistentFlags().StringVar(&flags.today, "today", "", "pretend the current day is YYYY-MM-DD")
	_ = root.PersistentFlags().MarkHidden("today")

	root.AddCommand(newStartCmd(flags))
	root.AddCommand(newStatusCmd(flags))
	root.AddCommand(newAcceptCmd(flags))
	root.AddCommand(newRejectCmd(flags))
	root.AddCommand(newResetStreakCmd(flags))
	root.AddCommand(newResetCmd(flags))
	root.AddCommand(newReportCmd(flags))
	root.AddCommand(newDeckCmd(flags))
	root.AddCommand(newTUICmd(flags))
	return root
}

func loadApp(flags *rootFlags, logOut io.Writer) (*bootstrap.App, error) {
	cfg, err := config.Load(flags.dataPath)
	if err != nil {
		return nil, err
	}
	opts := bootstrap.Options{Logger: logging.New(cfg.LogLevel, logOut)}
	if opts.Clock, err = todayOverride(cfg, flags.today); err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, opts)
}

func todayOverride(cfg config.Config, day string) (clock.Clock, error) {
	if day == "" {
		return nil, nil
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return fixedDay(day, loc)
}

// fixedDay pins the clock to noon of day in loc.
func fixedDay(day string, loc *time.Location) (clock.Clock, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: --today must be YYYY-MM-DD", apperrors.ErrInvalidInput)
	}
	return clock.Fixed(t.Add(12 * time.Hour)), nil
}

// startedApp loads the app and runs the start-up evaluation, which every
// engine event requires. A storage failure during start is reported but the
// command continues on the in-memory state.
func startedApp(cmd *cobra.Command, flags *rootFlags) (*bootstrap.App, progressdto.StartOutput, error) {
	app, err := loadApp(flags, cmd.ErrOrStderr())
	if err != nil {
		return nil, progressdto.StartOutput{}, err
	}
	out, err := app.ProgressCLI.Start(context.Background())
	if err != nil {
		if !errors.Is(err, apperrors.ErrStorage) {
			_ = app.Close()
			return nil, progressdto.StartOutput{}, err
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: start-up state not saved: %v\n", err)
	}
	return app, out, nil
}

func newStartCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Evaluate today's streak and roll the save window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, out, err := startedApp(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()
			w := cmd.OutOrStdout()
			switch {
			case out.StreakAdvanced:
				_, _ = fmt.Fprintf(w, "%s: streak %d (was %d)\n", out.Today, out.Streak, out.PreviousStreak)
			case out.StreakRestarted:
				_, _ = fmt.Fprintf(w, "%s: new streak started\n", out.Today)
			default:
				_, _ = fmt.Fprintf(w, "%s: streak %d\n", out.Today, out.Streak)
			}
			if out.WindowShifted {
				_, _ = fmt.Fprintln(w, "save window moved to a new day")
			}
			if len(out.Repaired) > 0 {
				_, _ = fmt.Fprintf(w, "repaired: %s\n", strings.Join(out.Repaired, ", "))
			}
			return nil
		},
	}
}

func newStatusCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show streak, save window and placement grid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := startedApp(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()
			view, err := app.ReportCLI.Render(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, view.StreakLine)
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprint(w, view.Chart)
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprint(w, view.Grid)
			_, _ = fmt.Fprintln(w, view.Summary)
			return nil
		},
	}
}

func newAcceptCmd(flags *rootFlags) *cobra.Command {
	var itemID, title, sourceName, url, category string
	cmd := &cobra.Command{
		Use:   "accept",
		Short: "Record a saved headline",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := startedApp(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ProgressCLI.Accept(context.Background(), itemID, title, sourceName, url, category)
			w := cmd.OutOrStdout()
			if out.GridFull {
				_, _ = fmt.Fprintf(w, "grid full, %q not recorded\n", out.Label)
				return nil
			}
			if out.Placed {
				_, _ = fmt.Fprintf(w, "saved %q in slot %d [%s], %d today\n", out.Label, out.Slot, out.ColorTag, out.TodaySaves)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "headline title")
	cmd.Flags().StringVar(&sourceName, "source", "", "publisher name")
	cmd.Flags().StringVar(&url, "url", "", "article link")
	cmd.Flags().StringVar(&category, "category", "", "category (color tag)")
	cmd.Flags().StringVar(&itemID, "id", "", "item id (generated when empty)")
	return cmd
}

func newRejectCmd(flags *rootFlags) *cobra.Command {
	var itemID, title string
	cmd := &cobra.Command{
		Use:   "reject",
		Short: "Skip a headline",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := startedApp(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.ProgressCLI.Reject(context.Background(), itemID, title); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "skipped")
			return nil
		},
	}
	cmd.Flags().StringVar(&itemID, "id", "", "item id")
	cmd.Flags().StringVar(&title, "title", "", "headline title")
	return cmd
}

func newResetStreakCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-streak",
		Short: "Reset the streak; grid and save window are kept",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := startedApp(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()
			if _, err := app.ProgressCLI.ResetStreak(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "streak reset to 0")
			return nil
		},
	}
}

func newResetCmd(flags *rootFlags) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear streak, save window and placement grid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("%w: reset clears all progress, pass --yes to confirm", apperrors.ErrInvalidInput)
			}
			app, _, err := startedApp(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()
			if _, err := app.ProgressCLI.ResetAll(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all progress cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the full reset")
	return cmd
}

func newReportCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Write the progress note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := startedApp(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ReportCLI.Write(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", out.Path)
			return nil
		},
	}
}

func newDeckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "deck [category]",
		Short: "List the headlines for a category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			category := ""
			if len(args) == 1 {
				category = args[0]
			}
			deck, err := app.DeckCLI.Load(context.Background(), category)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if deck.Notice != "" {
				_, _ = fmt.Fprintln(w, deck.Notice)
			}
			if len(deck.Articles) == 0 {
				_, _ = fmt.Fprintf(w, "no articles for %s\n", deck.Category)
				return nil
			}
			for _, a := range deck.Articles {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", a.ID, a.Title, a.SourceName)
			}
			return nil
		},
	}
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the SwipeScoop terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.dataPath)
			if err != nil {
				return err
			}
			logger, logFile, err := logging.NewFile(cfg.LogLevel, cfg.LogPath)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer logFile.Close()
			opts := bootstrap.Options{Logger: logger}
			if opts.Clock, err = todayOverride(cfg, flags.today); err != nil {
				return err
			}
			app, err := bootstrap.New(cfg, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}
