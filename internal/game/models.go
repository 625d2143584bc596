package game

import (
	"gorm.io/gorm"
)

// Player identifies one of the two sides of a match. The literal values
// ("Player 1" / "Player 2") are part of the wire format used by the relay
// and the frontend, so they must not change.
type Player string

const (
	Player1 Player = "Player 1"
	Player2 Player = "Player 2"
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Canonical stat names used by the battle engine. Moves may reference
// additional arbitrary stat names; those are created at zero on first use.
const (
	StatHP      = "hp"
	StatAttack  = "attack"
	StatDefense = "defense"
	StatSpeed   = "speed"
)

// Stats is a mutable bag of named numeric stats. Character base stats carry
// hp/attack/defense/speed; support effects may touch any named stat.
type Stats map[string]int

// Clone returns an independent copy.
func (s Stats) Clone() Stats {
	out := make(Stats, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Get returns the named stat, or zero when absent.
func (s Stats) Get(name string) int { return s[name] }

// Add adds amount to the named stat, creating it at zero when absent.
func (s Stats) Add(name string, amount int) { s[name] += amount }

// StatModifier is a single entry of a move's affected-stats list.
type StatModifier struct {
	Stat   string `json:"stat"`
	Amount int    `json:"amount"`
}

type Ability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Abilities struct {
	Special Ability `json:"special"`
	Hidden  Ability `json:"hidden"`
}

// Theme carries the card's visual colors. The engine never reads it; it is
// part of the character snapshot shown by clients.
type Theme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	BorderColor    string `json:"borderColor"`
	GlowColor      string `json:"glowColor"`
}

// MoveRef is the shallow {name, type} shape offered during team building.
// It must be resolved to a full catalog Move before any battle use.
type MoveRef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Move is an immutable catalog definition. Nested lists are persisted as
// JSON columns so the sqlite schema stays flat.
type Move struct {
	gorm.Model
	Name       string   `json:"name" gorm:"uniqueIndex"`
	Categories []string `json:"categories" gorm:"serializer:json"`
	Roles      []string `json:"roles" gorm:"serializer:json"`
	Effects    []string `json:"effects" gorm:"serializer:json"`
	// AffectedStats feeds the primary "support" role; AffectedStats2 feeds
	// the selfsupport/supportpartymember variants. They are independent.
	AffectedStats  []StatModifier `json:"affectedStats" gorm:"serializer:json"`
	AffectedStats2 []StatModifier `json:"affectedStats2" gorm:"serializer:json"`
	Power          int            `json:"power"`
	Accuracy       int            `json:"accuracy"`
	HealAmount     int            `json:"healamount"`
	TargetTypes    []string       `json:"targetTypes" gorm:"serializer:json"`
	Duration       int            `json:"duration"`
	MoveType       string         `json:"moveType"`
	Contact        bool           `json:"contact"`
	MoveSound      string         `json:"moveSound"`
	Animation      string         `json:"animation"`
	Description    string         `json:"description"`
}

// Character is an immutable catalog definition. Battle code always works on
// per-card snapshots, never on catalog rows.
type Character struct {
	gorm.Model
	Name      string    `json:"name" gorm:"uniqueIndex"`
	Title     string    `json:"title"`
	Universe  string    `json:"universe"`
	Image     string    `json:"image"`
	Stats     Stats     `json:"stats" gorm:"serializer:json"`
	MovePool  []MoveRef `json:"movePool" gorm:"serializer:json"`
	Abilities Abilities `json:"abilities" gorm:"serializer:json"`
	Theme     Theme     `json:"theme" gorm:"serializer:json"`
	// SelectedMoves is set on battle snapshots only (the player's chosen
	// moves, fully resolved). It is never persisted on the catalog row.
	SelectedMoves []Move `json:"selectedMoves,omitempty" gorm:"-"`
}

// TeamCharacter is one entry of a stored team: a character name plus up to
// four chosen moves in the shallow team-building shape.
type TeamCharacter struct {
	Name  string    `json:"name"`
	Moves []MoveRef `json:"moves"`
}

// TeamSelection is one player's stored team of four characters.
type TeamSelection struct {
	Player     Player          `json:"player"`
	Characters []TeamCharacter `json:"characters"`
}

// Room statuses.
const (
	RoomStatusWaiting   = "waiting_for_players"
	RoomStatusPreparing = "preparing"
	RoomStatusInBattle  = "in_battle"
	RoomStatusFinished  = "finished"
)

// RoomPlayer is a claimed slot in a room.
type RoomPlayer struct {
	gorm.Model
	RoomID     uint   `json:"-"`
	Slot       Player `json:"slot"`
	PlayerName string `json:"player_name"`
}

func (RoomPlayer) TableName() string { return "room_players" }

// Room is the lobby record mirrored by the relay. Battle state itself is
// never persisted; only the lobby data both browsers need to hydrate.
type Room struct {
	gorm.Model
	JoinCode string          `json:"join_code" gorm:"unique"`
	Private  bool            `json:"private"`
	Status   string          `json:"status"`
	Players  []RoomPlayer    `json:"players"`
	Teams    []TeamSelection `json:"teams" gorm:"serializer:json"`
	Winner   Player          `json:"winner"`
	Message  string          `json:"message"`
}
