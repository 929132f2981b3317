package storage

import (
	"github.com/AndrewMorgan2/Spritied-Towards/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Keep the schema updated via AutoMigrate; removing the DB file resets
	// everything during development.
	err = db.AutoMigrate(&game.Session{}, &game.HandCard{}, &game.Hostile{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
