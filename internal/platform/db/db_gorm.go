// Package db はSupabase Postgresへのgorm接続を提供します。
package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// DefaultConnectTimeout は起動時にDB接続をリトライし続ける最大時間です。
	DefaultConnectTimeout = 60 * time.Second

	retryInterval = 3 * time.Second
)

// Opener はDSNからgorm接続を開く関数です。テストで差し替えます。
type Opener func(dsn string) (*gorm.DB, error)

// OpenPostgres はpgxドライバでPostgresに接続します。
// TranslateErrorを有効にし、一意制約違反をgorm.ErrDuplicatedKeyとして返させます。
func OpenPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN: dsn,
		// Supabaseのトランザクションプーラー（pgbouncer）ではプリペアドステートメントを使えない
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

// ConnectWithRetry はtimeoutに達するまでretryInterval間隔でopenを再試行します。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		logrus.WithError(err).Warn("db connect failed, retrying")
		time.Sleep(min(retryInterval, remaining))
	}
}

// OpenDB はSUPABASE_DB_URLのDSNで接続し、migrateがtrueならmodelsをAutoMigrateします。
func OpenDB(dsn string, migrate bool, models ...any) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("SUPABASE_DB_URL is required")
	}
	db, err := ConnectWithRetry(dsn, DefaultConnectTimeout, OpenPostgres)
	if err != nil {
		return nil, err
	}

	if migrate {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
		logrus.WithField("models", len(models)).Info("database migrated")
	}
	return db, nil
}
