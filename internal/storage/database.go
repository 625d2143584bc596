package storage

import (
	"github.com/Nishant2356/Card-game/internal/game"
	"github.com/Nishant2356/Card-game/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the sqlite database, keeps the schema updated via
// AutoMigrate and seeds the catalog from the loaded config. The config is
// the source of truth: existing rows are refreshed on every startup so stat
// rebalances in the config file take effect without wiping the database.
func OpenAndMigrate(dataSourceName string, characters []game.Character, moves []game.Move) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&game.Character{}, &game.Move{}, &game.Room{}, &game.RoomPlayer{}); err != nil {
		return nil, err
	}

	seedCatalog(db, characters, moves)
	return db, nil
}

func seedCatalog(db *gorm.DB, characters []game.Character, moves []game.Move) {
	for i := range moves {
		m := moves[i]
		var existing game.Move
		err := db.Where("name = ?", m.Name).First(&existing).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			if err := db.Create(&m).Error; err != nil {
				logging.Error("failed to seed move", err, logging.Fields{"name": m.Name})
			}
		case err == nil:
			m.ID = existing.ID
			if err := db.Save(&m).Error; err != nil {
				logging.Error("failed to refresh move", err, logging.Fields{"name": m.Name})
			}
		default:
			logging.Error("failed to look up move during seeding", err, logging.Fields{"name": m.Name})
		}
	}
	for i := range characters {
		ch := characters[i]
		var existing game.Character
		err := db.Where("name = ?", ch.Name).First(&existing).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			if err := db.Create(&ch).Error; err != nil {
				logging.Error("failed to seed character", err, logging.Fields{"name": ch.Name})
			}
		case err == nil:
			ch.ID = existing.ID
			if err := db.Save(&ch).Error; err != nil {
				logging.Error("failed to refresh character", err, logging.Fields{"name": ch.Name})
			}
		default:
			logging.Error("failed to look up character during seeding", err, logging.Fields{"name": ch.Name})
		}
	}
}
