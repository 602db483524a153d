package initializers

import (
	"context"
	"fmt"
	"time"

	"github.com/Kariqs/amana-storefront/session"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const purgeInterval = time.Hour

func ConnectToDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logrus.Info("Connected to database.")
	return db, nil
}

// ConnectToStore opens the session store selected by cfg.StoreDriver. The
// returned close func releases the connection.
func ConnectToStore(ctx context.Context, cfg *Config) (session.Store, func(), error) {
	switch cfg.StoreDriver {
	case "mysql":
		db, err := ConnectToDB(cfg.DBURL)
		if err != nil {
			return nil, nil, err
		}
		if err := SyncDatabase(db); err != nil {
			return nil, nil, err
		}
		store := session.NewSQLStore(db, cfg.SessionTTL)
		go purgeExpired(ctx, store, purgeInterval)
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return store, closeFn, nil
	default:
		store, err := session.NewRedisStore(ctx, cfg.RedisURL, cfg.SessionTTL)
		if err != nil {
			return nil, nil, err
		}
		logrus.Info("Connected to redis.")
		return store, func() { _ = store.Close() }, nil
	}
}

func purgeExpired(ctx context.Context, store *session.SQLStore, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.Purge(ctx)
			if err != nil {
				logrus.Warnf("purgeExpired: failed to purge sessions err = %v", err)
				continue
			}
			if n > 0 {
				logrus.WithField("rows", n).Info("expired session entries purged")
			}
		}
	}
}
