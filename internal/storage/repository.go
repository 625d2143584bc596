package storage

import (
	"github.com/Nishant2356/Card-game/internal/game"
)

// Repository is the catalog collaborator plus the room lobby store. Catalog
// lookups are by-name and tolerate partial misses: names without a matching
// row are simply absent from the result, never an error.
type Repository interface {
	// Catalog (read-only after seeding)
	ListCharacters() ([]game.Character, error)
	ListMoves() ([]game.Move, error)
	CharactersByName(names []string) ([]game.Character, error)
	MovesByName(names []string) ([]game.Move, error)

	// Room lobby
	CreateRoom(r *game.Room) error
	FindRoomByJoinCode(code string) (*game.Room, error)
	UpdateRoom(r *game.Room) error
	RemovePlayerBySlot(roomID uint, slot game.Player) error
}
