package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/db"
	"portfolio-backend/internal/validation"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var fixturesPath string

	root := &cobra.Command{
		Use:           "seed",
		Short:         "Load starter FAQs and projects into MongoDB",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&fixturesPath, "file", "f", "", "YAML fixtures file (default: built-in fixtures)")

	run := func(withFAQs, withProjects bool) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			raw := defaultFixtures
			if fixturesPath != "" {
				data, err := os.ReadFile(fixturesPath)
				if err != nil {
					return fmt.Errorf("read fixtures: %w", err)
				}
				raw = data
			}
			fx, err := parseFixtures(raw)
			if err != nil {
				return err
			}
			return seed(cmd.Context(), fx, withFAQs, withProjects)
		}
	}

	root.AddCommand(&cobra.Command{
		Use:   "faqs",
		Short: "Seed FAQ entries",
		Args:  cobra.NoArgs,
		RunE:  run(true, false),
	})
	root.AddCommand(&cobra.Command{
		Use:   "projects",
		Short: "Seed portfolio projects",
		Args:  cobra.NoArgs,
		RunE:  run(false, true),
	})
	root.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Seed FAQ entries and projects",
		Args:  cobra.NoArgs,
		RunE:  run(true, true),
	})
	return root
}

func seed(parent context.Context, fx fixtures, withFAQs, withProjects bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(parent, 30*time.Second)
	defer cancel()

	provider := db.NewProvider(cfg.MongoURI, cfg.MongoDB)
	cols, err := provider.EnsureConnected(ctx)
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	defer provider.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	s := &seeder{
		faqs:     cols.FAQs,
		projects: cols.Projects,
		val:      validation.New(),
		now: func() time.Time {
			return time.Now().In(cfg.Timezone).Truncate(time.Millisecond)
		},
	}

	if withFAQs {
		n, err := s.seedFAQs(ctx, fx.FAQs)
		if err != nil {
			return err
		}
		logger.Info("seed faqs: ok", slog.Int("inserted", n), slog.Int("total", len(fx.FAQs)))
	}
	if withProjects {
		n, err := s.seedProjects(ctx, fx.Projects)
		if err != nil {
			return err
		}
		logger.Info("seed projects: ok", slog.Int("inserted", n), slog.Int("total", len(fx.Projects)))
	}
	return nil
}
