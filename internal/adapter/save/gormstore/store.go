// Package gormstore persists save slots in Postgres, one row per slot key.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"horsekeep/internal/app/ports"
)

type SaveSlot struct {
	SlotKey   string `gorm:"primaryKey;column:slot_key"`
	Payload   string `gorm:"column:payload"`
	UpdatedAt time.Time
}

func (SaveSlot) TableName() string { return "save_slots" }

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&SaveSlot{})
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) Store {
	return Store{db: db}
}

func (s Store) Get(ctx context.Context, key string) (string, error) {
	var slot SaveSlot
	err := s.db.WithContext(ctx).Where("slot_key = ?", key).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ports.ErrNoSave
		}
		return "", err
	}
	return slot.Payload, nil
}

func (s Store) Put(ctx context.Context, key, payload string) error {
	slot := SaveSlot{SlotKey: key, Payload: payload, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&slot).Error
}
