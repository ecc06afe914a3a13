// Command import loads birthdays from a YAML or JSON file into the SQLite
// database.
//
// Usage:
//
//	go run ./cmd/import --file birthdays.yaml --db data/lunar.db --api-key $API_KEY
//
// This tool:
// 1. Parses the file (format chosen by extension; .json is JSON, anything else YAML)
// 2. Creates/opens the SQLite database and runs migrations
// 3. Converts every entry through the calendar engine
// 4. Inserts all birthdays in a single transaction
//
// Birthdays are owned by the user derived from --api-key, the same user the
// API assigns to requests carrying that key. A name that already exists for
// the user aborts the whole import.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/lunar-calendar-api/internal/api"
	"github.com/zapponejosh/lunar-calendar-api/internal/database"
	"github.com/zapponejosh/lunar-calendar-api/internal/logger"
)

func main() {
	if err := newImportCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newImportCmd() *cobra.Command {
	var (
		filePath string
		dbPath   string
		apiKey   string
		verbose  bool
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:          "import",
		Short:        "Import birthdays from a YAML or JSON file",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := "info"
			if verbose {
				level = "debug"
			}
			log := logger.New(cmd.ErrOrStderr(), level, "text")

			if err := run(cmd.Context(), filePath, dbPath, api.UserIDForKey(apiKey), dryRun, log); err != nil {
				log.Error("import failed", slog.String("error", err.Error()))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the birthdays file (required)")
	cmd.Flags().StringVar(&dbPath, "db", "./data/lunar.db", "Path to SQLite database")
	cmd.Flags().StringVar(&apiKey, "api-key", os.Getenv("API_KEY"), "API key whose user owns the imported birthdays")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and convert without writing to the database")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func run(ctx context.Context, filePath, dbPath, userID string, dryRun bool, log *slog.Logger) error {
	startTime := time.Now()

	// =========================================================================
	// Step 1: Read, parse and convert
	// =========================================================================
	log.Info("reading birthdays file", slog.String("path", filePath))

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	file, err := parseFile(filePath, data)
	if err != nil {
		return err
	}

	birthdays, err := file.toBirthdays(userID)
	if err != nil {
		return err
	}
	log.Info("parsed birthdays", slog.Int("count", len(birthdays)))

	if dryRun {
		for _, b := range birthdays {
			fmt.Printf("%-20s %s -> %s\n", b.Name, b.Lunar(), b.SolarDate)
		}
		return nil
	}

	// =========================================================================
	// Step 2: Open database and run migrations
	// =========================================================================
	db, err := database.Open(database.DefaultConfig(dbPath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// =========================================================================
	// Step 3: Import in a transaction
	// =========================================================================
	if err := importBirthdays(ctx, db, birthdays, log); err != nil {
		return err
	}

	total, err := db.CountBirthdays(ctx, userID)
	if err != nil {
		return fmt.Errorf("count birthdays: %w", err)
	}

	elapsed := time.Since(startTime)
	log.Info("import complete",
		slog.Int("imported", len(birthdays)),
		slog.Int("user_total", total),
		slog.Duration("elapsed", elapsed),
	)

	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("Birthdays imported:  %d\n", len(birthdays))
	fmt.Printf("Total for user:      %d\n", total)
	fmt.Printf("Time elapsed:        %v\n", elapsed.Round(time.Millisecond))

	return nil
}
