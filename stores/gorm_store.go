package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is one stored JSON body.
type Document struct {
	Key       string    `gorm:"primaryKey;type:varchar(128)" json:"key"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// GormStore keeps documents in a postgres table.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// Migrate creates the documents table.
func (s *GormStore) Migrate() error {
	return s.DB.AutoMigrate(&Document{})
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc Document
	err := s.DB.WithContext(ctx).Where("key = ?", key).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document %s: %w", key, err)
	}
	return []byte(doc.Body), nil
}

// Put upserts on the key.
func (s *GormStore) Put(ctx context.Context, key string, body []byte) error {
	doc := Document{Key: key, Body: string(body), UpdatedAt: time.Now().UTC()}
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("failed to upsert document %s: %w", key, err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	if err := s.DB.WithContext(ctx).Where("key = ?", key).Delete(&Document{}).Error; err != nil {
		return fmt.Errorf("failed to delete document %s: %w", key, err)
	}
	return nil
}
