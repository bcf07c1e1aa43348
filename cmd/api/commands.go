package main

import (
	"context"
	"fmt"
	"time"

	"github.com/learntech/courseplanner/internal/app/migrations"
	"github.com/learntech/courseplanner/internal/bootstrap"
	"github.com/learntech/courseplanner/internal/config"
	"github.com/learntech/courseplanner/internal/db"
	pkgAuth "github.com/learntech/courseplanner/internal/pkg/auth"
	"github.com/learntech/courseplanner/internal/pkg/helpers"
	"github.com/learntech/courseplanner/internal/pkg/logger"
	"github.com/learntech/courseplanner/internal/seed"
	"github.com/learntech/courseplanner/internal/server"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "configs/config.yaml"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "course-planner",
		Short:         "Course planner API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "Path to the YAML configuration file")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newMigrateCmd(&configPath))
	root.AddCommand(newSeedCmd(&configPath))
	root.AddCommand(newTokenCmd(&configPath))

	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations, seed roles and serve the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func newMigrateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	steps := []struct {
		use   string
		short string
		run   func(*migrations.Migrator, context.Context) error
	}{
		{"up", "Apply every pending migration", (*migrations.Migrator).Up},
		{"down", "Roll back the most recent migration", (*migrations.Migrator).Down},
		{"status", "Show the applied state of every migration", (*migrations.Migrator).Status},
	}
	for _, step := range steps {
		cmd.AddCommand(&cobra.Command{
			Use:   step.use,
			Short: step.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(*configPath, func(_ *config.Config, database *db.PostgresDB) error {
					return step.run(migrations.NewMigrator(database.Pool), cmd.Context())
				})
			},
		})
	}

	return cmd
}

func newSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(*configPath, func(_ *config.Config, database *db.PostgresDB) error {
				_, err := seed.CreateDefaultRoles(cmd.Context(), database)
				return err
			})
		},
	}
}

func newTokenCmd(configPath *string) *cobra.Command {
	var (
		ttl   string
		email string
		name  string
	)

	cmd := &cobra.Command{
		Use:   "token <uid>",
		Short: "Mint a development token for a user (hs256 identity mode only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
			if err != nil {
				return err
			}
			if cfg.Identity.Mode != config.IdentityModeHS256 {
				return fmt.Errorf("token requires identity mode %q, configured mode is %q", config.IdentityModeHS256, cfg.Identity.Mode)
			}

			verifier, err := bootstrap.NewHS256Verifier(cfg)
			if err != nil {
				return err
			}
			token, err := verifier.IssueToken(pkgAuth.Principal{UID: args[0], Email: email, Name: name}, helpers.ParseDuration(ttl, time.Hour))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&ttl, "ttl", "1h", "Token lifetime")
	cmd.Flags().StringVar(&email, "email", "", "Email claim")
	cmd.Flags().StringVar(&name, "name", "", "Name claim")

	return cmd
}

// withDatabase loads configuration, connects and runs fn, closing the pool afterwards
func withDatabase(configPath string, fn func(*config.Config, *db.PostgresDB) error) error {
	cfg, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	return fn(cfg, database)
}

func runServe(ctx context.Context, configPath string) error {
	cfg, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrations.NewMigrator(database.Pool).Up(ctx); err != nil {
		database.Close()
		return err
	}
	if _, err := seed.CreateDefaultRoles(ctx, database); err != nil {
		logger.Error().Err(err).Msg("Failed to create default roles, proceeding anyway...")
	}

	verifier, err := bootstrap.NewVerifier(ctx, cfg)
	if err != nil {
		database.Close()
		return fmt.Errorf("failed to set up identity verification: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	deps := bootstrap.BuildDependencies(database.Pool, verifier)
	router := bootstrap.SetupRouter(ctx, cfg, deps, database)

	srv := server.NewServer(cfg, router, func() {
		logger.Info().Msg("Closing database connection pool...")
		database.Close()
	})
	return srv.Run(ctx)
}
