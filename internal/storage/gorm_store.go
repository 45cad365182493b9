package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is one key of the namespace persisted in PostgreSQL
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:128"`
	Value []byte `gorm:"type:bytea"`
}

// GormStore implements Store on a single (key, value) table, for
// deployments that point the namespace at PostgreSQL instead of a file.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the namespace table and returns the store
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(key string) ([]byte, bool, error) {
	var entry KVEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Value, true, nil
}

func (s *GormStore) Set(key string, value []byte) error {
	entry := KVEntry{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

func (s *GormStore) Delete(key string) error {
	return s.db.Delete(&KVEntry{}, "key = ?", key).Error
}
