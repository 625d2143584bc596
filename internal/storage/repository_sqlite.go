package storage

import (
	"github.com/Nishant2356/Card-game/internal/game"
	"github.com/Nishant2356/Card-game/internal/keys"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) ListCharacters() ([]game.Character, error) {
	var out []game.Character
	if err := r.db.Order("name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sqliteRepository) ListMoves() ([]game.Move, error) {
	var out []game.Move
	if err := r.db.Order("name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CharactersByName returns the characters whose normalized name matches one
// of the given names. Misses are silently absent from the result.
func (r *sqliteRepository) CharactersByName(names []string) ([]game.Character, error) {
	wanted := keys.NameKeys(names)
	if len(wanted) == 0 {
		return nil, nil
	}
	// sqlite has no reliable case-insensitive match on non-ASCII, so filter
	// on normalized keys in memory; catalogs are small.
	all, err := r.ListCharacters()
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(wanted))
	for _, k := range wanted {
		set[k] = struct{}{}
	}
	out := make([]game.Character, 0, len(wanted))
	for _, ch := range all {
		if _, ok := set[keys.NameKey(ch.Name)]; ok {
			out = append(out, ch)
		}
	}
	return out, nil
}

// MovesByName returns the moves whose normalized name matches one of the
// given names. Misses are silently absent from the result.
func (r *sqliteRepository) MovesByName(names []string) ([]game.Move, error) {
	wanted := keys.NameKeys(names)
	if len(wanted) == 0 {
		return nil, nil
	}
	all, err := r.ListMoves()
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(wanted))
	for _, k := range wanted {
		set[k] = struct{}{}
	}
	out := make([]game.Move, 0, len(wanted))
	for _, m := range all {
		if _, ok := set[keys.NameKey(m.Name)]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *sqliteRepository) CreateRoom(room *game.Room) error {
	return r.db.Create(room).Error
}

func (r *sqliteRepository) FindRoomByJoinCode(code string) (*game.Room, error) {
	var room game.Room
	if err := r.db.Preload("Players").Where("join_code = ?", code).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *sqliteRepository) UpdateRoom(room *game.Room) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(room).Error
}

func (r *sqliteRepository) RemovePlayerBySlot(roomID uint, slot game.Player) error {
	return r.db.Where("room_id = ? AND slot = ?", roomID, slot).Delete(&game.RoomPlayer{}).Error
}
