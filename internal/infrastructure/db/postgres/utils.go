package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/arkade-os/nftbridge/internal/infrastructure/db/postgres/sqlc/queries"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

const (
	driverName = "postgres"
	maxRetries = 5
)

type txCtxKey struct{}

const (
	// 3D000: invalid_catalog_name, the database in the DSN does not exist.
	errCodeUndefinedDatabase = "3D000"
	// 40001: serialization_failure, 40P01: deadlock_detected.
	errCodeSerializationFailure = "40001"
	errCodeDeadlockDetected     = "40P01"
)

// OpenDb connects to the bridge database. With autoCreate the database named
// in the DSN is created when missing.
func OpenDb(dsn string, autoCreate bool) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres db: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil && autoCreate && pqErrorCode(err) == errCodeUndefinedDatabase {
		if err := createBridgeDb(ctx, dsn); err != nil {
			return nil, fmt.Errorf("failed to create bridge db: %v", err)
		}
		err = db.PingContext(ctx)
	}
	if err != nil {
		//nolint:all
		db.Close()
		return nil, fmt.Errorf("unable to establish connection with db: %v", err)
	}
	return db, nil
}

// createBridgeDb connects to the server default db to create the one named
// in the path of the URL-formatted dsn.
func createBridgeDb(ctx context.Context, dsn string) error {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return fmt.Errorf("auto-create requires a URL-formatted dsn")
	}

	serverURL, err := url.Parse(dsn)
	if err != nil {
		return err
	}
	dbName := strings.TrimPrefix(serverURL.Path, "/")
	if dbName == "" {
		return fmt.Errorf("missing db name in dsn")
	}
	serverURL.Path = ""

	serverDb, err := sql.Open(driverName, serverURL.String())
	if err != nil {
		return err
	}
	//nolint:all
	defer serverDb.Close()

	log.Infof("creating postgres db %s", dbName)
	_, err = serverDb.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(dbName))
	return err
}

func pqErrorCode(err error) pq.ErrorCode {
	var dbErr *pq.Error
	if !errors.As(err, &dbErr) {
		return ""
	}
	return dbErr.Code
}

// RunInTx runs fn within a db transaction carried by the context given to fn.
// Serialization failures and deadlocks make the whole fn run again.
func RunInTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context) error) error {
	var lastErr error
	for range maxRetries {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
			//nolint:all
			tx.Rollback()

			if isConflictError(err) {
				lastErr = err
				time.Sleep(100 * time.Millisecond)
				continue
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			if isConflictError(err) {
				lastErr = err
				time.Sleep(100 * time.Millisecond)
				continue
			}
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil
	}

	return lastErr
}

func querierFromContext(ctx context.Context, querier *queries.Queries) *queries.Queries {
	if tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok && tx != nil {
		return querier.WithTx(tx)
	}
	return querier
}

func dbFromConfig(config []interface{}) (*sql.DB, error) {
	if len(config) != 1 {
		return nil, fmt.Errorf("invalid config: expected 1 argument, got %d", len(config))
	}
	db, ok := config[0].(*sql.DB)
	if !ok {
		return nil, fmt.Errorf("invalid config: expected *sql.DB but got %T", config[0])
	}
	return db, nil
}

func isConflictError(err error) bool {
	code := pqErrorCode(err)
	return code == errCodeSerializationFailure || code == errCodeDeadlockDetected
}
