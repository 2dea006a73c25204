package migrate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"courtside/internal/domain/inquiry"
	"courtside/internal/infrastructure/config"
	"courtside/internal/infrastructure/database"
	"courtside/internal/infrastructure/migration"
	"courtside/internal/infrastructure/repository"
	"courtside/internal/shared/errors"
	"courtside/internal/shared/logger"
)

var (
	env      string
	steps    int
	seedFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and seeding reference data.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed inquiry categories",
		Long:  `Load inquiry categories and their localized display names from a YAML file. Existing categories are left untouched.`,
		RunE:  runSeed,
	}

	cmd.Flags().StringVarP(&seedFile, "file", "f", "./configs/inquiry_categories.yaml", "Path to the category seed file")

	return cmd
}

func initEnv() (string, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env == "development"); err != nil {
		return "", nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return "", nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return "", nil, fmt.Errorf("failed to get scripts path: %w", err)
	}

	return scriptsPath, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env)

	strategy := migration.NewGolangMigrateStrategy(scriptsPath)

	if err := strategy.Migrate(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	strategy := migration.NewGolangMigrateStrategy(scriptsPath)

	if migrateStrategy, ok := strategy.(*migration.GolangMigrateStrategy); ok {
		if err := migrateStrategy.MigrateDown(database.Get(), steps); err != nil {
			log.Errorw("down migration failed", "error", err)
			return fmt.Errorf("down migration failed: %w", err)
		}
	} else {
		return fmt.Errorf("down migration requires the golang-migrate strategy")
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("checking migration status", "environment", env)

	strategy := migration.NewGolangMigrateStrategy(scriptsPath)

	if migrateStrategy, ok := strategy.(*migration.GolangMigrateStrategy); ok {
		version, dirty, err := migrateStrategy.GetVersion(database.Get())
		if err != nil {
			log.Errorw("failed to get migration version", "error", err)
			return fmt.Errorf("failed to get migration version: %w", err)
		}

		fmt.Printf("\nMigration Status:\n")
		fmt.Printf("  Environment:     %s\n", env)
		fmt.Printf("  Current Version: %d\n", version)
		fmt.Printf("  Dirty:           %t\n", dirty)

		return nil
	}

	return fmt.Errorf("status check requires the golang-migrate strategy")
}

// categorySeed mirrors one entry of the category seed file.
type categorySeed struct {
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description"`
	DisplayNames map[string]string `yaml:"display_names"`
}

type seedFileContent struct {
	Categories []categorySeed `yaml:"categories"`
}

func runSeed(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	data, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var content seedFileContent
	if err := yaml.Unmarshal(data, &content); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	categoryRepo := repository.NewInquiryCategoryRepository(database.Get())

	var created, skipped int
	for _, seed := range content.Categories {
		category, err := seedCategory(ctx, categoryRepo, seed, log)
		if err != nil {
			return err
		}
		if category == nil {
			skipped++
			continue
		}
		created++
	}

	log.Infow("category seed completed", "created", created, "skipped", skipped)
	fmt.Printf("Seeded %d categories (%d already present)\n", created, skipped)
	return nil
}

func seedCategory(ctx context.Context, repo inquiry.CategoryRepository, seed categorySeed, log logger.Interface) (*inquiry.Category, error) {
	if existing, err := repo.GetByName(ctx, seed.Name); err == nil && existing != nil {
		log.Debugw("category already present", "name", seed.Name)
		return nil, nil
	}

	category, err := inquiry.NewCategory(seed.Name, seed.Description)
	if err != nil {
		return nil, fmt.Errorf("invalid seed category %q: %w", seed.Name, err)
	}
	if err := repo.Create(ctx, category); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create category %q: %w", seed.Name, err)
	}

	for code, label := range seed.DisplayNames {
		// Canonicalize language codes so "EN-us" and "en-US" land on one row.
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("category %q has invalid language tag %q: %w", seed.Name, code, err)
		}

		displayName, err := inquiry.NewCategoryDisplayName(category.ID(), tag.String(), label)
		if err != nil {
			return nil, fmt.Errorf("invalid display name for category %q: %w", seed.Name, err)
		}
		if err := repo.CreateDisplayName(ctx, displayName); err != nil {
			if errors.IsDuplicateError(err) {
				continue
			}
			return nil, fmt.Errorf("failed to create display name for category %q: %w", seed.Name, err)
		}
	}

	log.Infow("seeded category", "name", seed.Name, "languages", len(seed.DisplayNames))
	return category, nil
}
