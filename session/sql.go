package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kariqs/amana-storefront/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLStore keeps session keys as rows of models.LocalEntry.
type SQLStore struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func NewSQLStore(db *gorm.DB, ttl time.Duration) *SQLStore {
	return &SQLStore{db: db, ttl: ttl, now: time.Now}
}

func (s *SQLStore) expiry() time.Time {
	if s.ttl <= 0 {
		return time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return s.now().Add(s.ttl)
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry models.LocalEntry
	err := s.db.WithContext(ctx).
		Where("`key` = ? AND expires_at > ?", key, s.now()).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return []byte(entry.Value), nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	entry := models.LocalEntry{
		Key:       key,
		Value:     datatypes.JSON(value),
		ExpiresAt: s.expiry(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Where("`key` IN ?", keys).Delete(&models.LocalEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete session keys: %w", err)
	}
	return nil
}

// Purge drops expired rows and reports how many were removed.
func (s *SQLStore) Purge(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Where("expires_at <= ?", s.now()).Delete(&models.LocalEntry{})
	return res.RowsAffected, res.Error
}
