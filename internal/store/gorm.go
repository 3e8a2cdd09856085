package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvEntry struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     []byte `gorm:"type:longblob"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// GormBackend keeps the key-value entries in the relational database
// used for server deployments, one row per collection. The collection
// contract on top is unchanged: whole-value reads and writes.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) (*GormBackend, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, err
	}
	return &GormBackend{db: db}, nil
}

func (b *GormBackend) Get(key string) ([]byte, error) {
	var entry kvEntry
	err := b.db.First(&entry, "`key` = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

func (b *GormBackend) Set(key string, value []byte) error {
	entry := kvEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (b *GormBackend) Delete(key string) error {
	return b.db.Delete(&kvEntry{}, "`key` = ?", key).Error
}

func (b *GormBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
