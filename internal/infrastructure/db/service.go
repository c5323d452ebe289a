package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/arkade-os/nftbridge/internal/core/domain"
	"github.com/arkade-os/nftbridge/internal/core/ports"
	badgerdb "github.com/arkade-os/nftbridge/internal/infrastructure/db/badger"
	pgdb "github.com/arkade-os/nftbridge/internal/infrastructure/db/postgres"
	sqlitedb "github.com/arkade-os/nftbridge/internal/infrastructure/db/sqlite"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	log "github.com/sirupsen/logrus"
)

//go:embed sqlite/migration/*
var migrations embed.FS

//go:embed postgres/migration/*
var pgMigration embed.FS

var (
	configStoreTypes = map[string]func(...interface{}) (domain.ConfigRepository, error){
		"badger":   badgerdb.NewConfigRepository,
		"sqlite":   sqlitedb.NewConfigRepository,
		"postgres": pgdb.NewConfigRepository,
	}
	originStoreTypes = map[string]func(...interface{}) (domain.OriginRepository, error){
		"badger":   badgerdb.NewOriginRepository,
		"sqlite":   sqlitedb.NewOriginRepository,
		"postgres": pgdb.NewOriginRepository,
	}
)

const (
	sqliteDbFile = "sqlite.db"
)

type ServiceConfig struct {
	DataStoreType   string
	DataStoreConfig []interface{}
}

type service struct {
	configStore domain.ConfigRepository
	originStore domain.OriginRepository
	runInTx     func(ctx context.Context, fn func(ctx context.Context) error) error
	close       func() error
}

func NewService(config ServiceConfig) (ports.RepoManager, error) {
	configStoreFactory, ok := configStoreTypes[config.DataStoreType]
	if !ok {
		return nil, fmt.Errorf("invalid data store type: %s", config.DataStoreType)
	}
	originStoreFactory, ok := originStoreTypes[config.DataStoreType]
	if !ok {
		return nil, fmt.Errorf("invalid data store type: %s", config.DataStoreType)
	}

	var (
		storeConfig []interface{}
		runInTx     func(ctx context.Context, fn func(ctx context.Context) error) error
		closeFn     func() error
	)

	switch config.DataStoreType {
	case "badger":
		store, err := badgerdb.NewStore(config.DataStoreConfig...)
		if err != nil {
			return nil, err
		}
		storeConfig = []interface{}{store}
		runInTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
			return badgerdb.RunInTx(ctx, store, fn)
		}
		closeFn = store.Close

	case "postgres":
		if len(config.DataStoreConfig) != 2 {
			return nil, fmt.Errorf("invalid data store config for postgres")
		}

		dsn, ok := config.DataStoreConfig[0].(string)
		if !ok {
			return nil, fmt.Errorf("invalid DSN for postgres")
		}

		autoCreate, ok := config.DataStoreConfig[1].(bool)
		if !ok {
			return nil, fmt.Errorf("invalid autocreate flag for postgres")
		}

		db, err := pgdb.OpenDb(dsn, autoCreate)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres db: %s", err)
		}

		if err := migratePostgres(db); err != nil {
			//nolint:all
			db.Close()
			return nil, err
		}

		storeConfig = []interface{}{db}
		runInTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
			return pgdb.RunInTx(ctx, db, fn)
		}
		closeFn = db.Close

	case "sqlite":
		if len(config.DataStoreConfig) != 1 {
			return nil, fmt.Errorf("invalid data store config")
		}

		baseDir, ok := config.DataStoreConfig[0].(string)
		if !ok {
			return nil, fmt.Errorf("invalid base directory")
		}

		dbFile := ":memory:"
		if len(baseDir) > 0 {
			dbFile = filepath.Join(baseDir, sqliteDbFile)
		}
		db, err := sqlitedb.OpenDb(dbFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open db: %s", err)
		}

		if err := migrateSqlite(db); err != nil {
			//nolint:all
			db.Close()
			return nil, err
		}

		storeConfig = []interface{}{db}
		runInTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
			return sqlitedb.RunInTx(ctx, db, fn)
		}
		closeFn = db.Close
	}

	configStore, err := configStoreFactory(storeConfig...)
	if err != nil {
		return nil, fmt.Errorf("failed to open config store: %s", err)
	}
	originStore, err := originStoreFactory(storeConfig...)
	if err != nil {
		return nil, fmt.Errorf("failed to open origin store: %s", err)
	}

	return &service{
		configStore: configStore,
		originStore: originStore,
		runInTx:     runInTx,
		close:       closeFn,
	}, nil
}

func (s *service) Config() domain.ConfigRepository {
	return s.configStore
}

func (s *service) Origins() domain.OriginRepository {
	return s.originStore
}

func (s *service) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.runInTx(ctx, fn)
}

func (s *service) Close() {
	s.configStore.Close()
	s.originStore.Close()
	if err := s.close(); err != nil {
		log.WithError(err).Warn("failed to close db")
	}
}

func migrateSqlite(db *sql.DB) error {
	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("failed to init driver: %s", err)
	}

	source, err := iofs.New(migrations, "sqlite/migration")
	if err != nil {
		return fmt.Errorf("failed to embed migrations: %s", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "nftbridgedb", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %s", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %s", err)
	}
	return nil
}

func migratePostgres(db *sql.DB) error {
	pgDriver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("failed to init postgres migration driver: %s", err)
	}

	source, err := iofs.New(pgMigration, "postgres/migration")
	if err != nil {
		return fmt.Errorf("failed to embed postgres migrations: %s", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", pgDriver)
	if err != nil {
		return fmt.Errorf("failed to create postgres migration instance: %s", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run postgres migrations: %s", err)
	}
	return nil
}
