package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/riskibarqy/football-live/internal/app"
	"github.com/riskibarqy/football-live/internal/config"
	"github.com/riskibarqy/football-live/internal/platform/logging"
)

var migrationDirs = []string{"./db/migrations", "/app/db/migrations"}

func main() {
	dir := flag.String("dir", "", "migrations directory (defaults to MIGRATIONS_DIR, ./db/migrations, /app/db/migrations)")
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := logging.NewJSON(cfg.LogLevel).With("process", "migration")
	defer func() { _ = logger.Sync() }()

	if cfg.StoreDriver != config.StoreDriverPostgres {
		logger.Error("migrations need the postgres store", "store_driver", cfg.StoreDriver)
		os.Exit(2)
	}

	migrationsDir, err := resolveMigrationsDir(*dir)
	if err != nil {
		logger.Error("resolve migrations dir", "error", err)
		os.Exit(1)
	}
	sourceURL := "file://" + filepath.ToSlash(migrationsDir)

	m, err := migrate.New(sourceURL, app.PostgresDSN(cfg))
	if err != nil {
		logger.Error("create migrator", "error", err)
		os.Exit(1)
	}

	err = run(m, flag.Arg(0), flag.Args()[1:], logger)
	srcErr, dbErr := m.Close()
	if srcErr != nil || dbErr != nil {
		logger.Warn("close migrator", "source_error", srcErr, "db_error", dbErr)
	}
	if err != nil {
		logger.Error("migration failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}

func run(m *migrate.Migrate, command string, args []string, logger *logging.Logger) error {
	switch strings.ToLower(strings.TrimSpace(command)) {
	case "up":
		return ignoreNoChange(m.Up(), logger, "migrations applied")
	case "down":
		steps, err := parseSteps(args)
		if err != nil {
			return err
		}
		return ignoreNoChange(m.Steps(-steps), logger, "migrations rolled back", "steps", steps)
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			logger.Info("schema version", "version", "none", "dirty", false)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		logger.Info("schema version", "version", version, "dirty", dirty)
		return nil
	case "force":
		if len(args) == 0 {
			return errors.New("force requires a version argument")
		}
		version, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil || version < -1 {
			return fmt.Errorf("invalid version %q", args[0])
		}
		if err := m.Force(version); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
		logger.Info("schema version forced", "version", version)
		return nil
	case "goto":
		if len(args) == 0 {
			return errors.New("goto requires a target version argument")
		}
		target, err := strconv.ParseUint(strings.TrimSpace(args[0]), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid target version %q: %w", args[0], err)
		}
		return ignoreNoChange(m.Migrate(uint(target)), logger, "migrated", "version", target)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func ignoreNoChange(err error, logger *logging.Logger, msg string, args ...any) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info(msg, args...)
	return nil
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, errors.New("down steps must be > 0")
	}
	return steps, nil
}

func resolveMigrationsDir(flagDir string) (string, error) {
	candidates := append([]string{flagDir, os.Getenv("MIGRATIONS_DIR")}, migrationDirs...)
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", fmt.Errorf("migration directory not found (checked -dir, MIGRATIONS_DIR, %s)", strings.Join(migrationDirs, ", "))
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s [-dir path] <up|down [n]|version|force v|goto v>\n", name)
	flag.PrintDefaults()
}
