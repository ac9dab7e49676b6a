package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"bakery-storefront/internal/config"
	"bakery-storefront/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

const (
	storagePathFlag   = "storage-path"
	migrationPathFlag = "migrations-path"
	downFlag          = "down"
)

// migrationLogger adapts zerolog to migrate.Logger
type migrationLogger struct {
	verbose bool
}

func (ml *migrationLogger) Printf(format string, v ...any) {
	log.Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (ml *migrationLogger) Verbose() bool {
	return ml.verbose
}

func main() {
	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"))

	storagePath := pflag.StringP(storagePathFlag, "s", "", "postgres URL; defaults to the DB_* environment")
	migrationsPath := pflag.StringP(migrationPathFlag, "m", "migrations", "directory holding *.sql migrations")
	down := pflag.Bool(downFlag, false, "roll back every migration")
	pflag.Parse()

	dsn, err := resolveStoragePath(*storagePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve storage path")
		os.Exit(2)
	}

	if err := makeMigrations(dsn, *migrationsPath, *down); err != nil {
		log.Error().Err(err).Msg("failed to migrate")
		os.Exit(2)
	}
}

// resolveStoragePath turns a postgres URL into the pgx5 scheme golang-migrate expects.
func resolveStoragePath(storagePath string) (string, error) {
	if storagePath == "" {
		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return "", err
		}
		storagePath = dbConfig.DSN()
	}

	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(storagePath, scheme) {
			return "pgx5://" + strings.TrimPrefix(storagePath, scheme), nil
		}
	}
	if strings.Contains(storagePath, "://") {
		return storagePath, nil
	}
	return "pgx5://" + storagePath, nil
}

func makeMigrations(storagePath, migrationsPath string, down bool) error {
	m, err := migrate.New("file://"+migrationsPath, storagePath)
	if err != nil {
		return err
	}
	defer m.Close()

	m.Log = &migrationLogger{verbose: true}

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		m.Log.Printf("no migrations to apply")
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, _ := m.Version()
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("migration applied")
	return nil
}
