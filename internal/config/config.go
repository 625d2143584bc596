package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Nishant2356/Card-game/internal/game"
	"github.com/Nishant2356/Card-game/internal/keys"
)

type rawConfig struct {
	CharacterList []game.Character `json:"character_list"`
	MoveList      []game.Move      `json:"move_list"`
	Server        *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig contains the catalog seed data and the server address.
type LoadedConfig struct {
	Characters    []game.Character
	Moves         []game.Move
	ServerAddress string
}

// LoadConfig reads the configuration file at path. It requires the keys
// `character_list` and `move_list` (snake_case) and validates that the
// catalog is internally consistent: unique names, and every move referenced
// by a character's move pool present in the move list.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.CharacterList) == 0 {
		return nil, fmt.Errorf("config file %s: character_list is empty (provide 'character_list' array)", path)
	}
	if len(rc.MoveList) == 0 {
		return nil, fmt.Errorf("config file %s: move_list is empty (provide 'move_list' array)", path)
	}

	moveSet := make(map[string]struct{}, len(rc.MoveList))
	for _, m := range rc.MoveList {
		if m.Name == "" {
			return nil, fmt.Errorf("config file %s: move entry missing 'name'", path)
		}
		k := keys.NameKey(m.Name)
		if _, exists := moveSet[k]; exists {
			return nil, fmt.Errorf("config file %s: duplicate move name '%s'", path, m.Name)
		}
		moveSet[k] = struct{}{}
		if m.Accuracy < 0 || m.Accuracy > 100 {
			return nil, fmt.Errorf("config file %s: move '%s' accuracy must be within 0..100", path, m.Name)
		}
	}

	charSet := make(map[string]struct{}, len(rc.CharacterList))
	for _, ch := range rc.CharacterList {
		if ch.Name == "" {
			return nil, fmt.Errorf("config file %s: character entry missing 'name'", path)
		}
		k := keys.NameKey(ch.Name)
		if _, exists := charSet[k]; exists {
			return nil, fmt.Errorf("config file %s: duplicate character name '%s'", path, ch.Name)
		}
		charSet[k] = struct{}{}
		for _, mr := range ch.MovePool {
			if _, known := moveSet[keys.NameKey(mr.Name)]; !known {
				return nil, fmt.Errorf("config file %s: character '%s' references unknown move '%s'", path, ch.Name, mr.Name)
			}
		}
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{
		Characters:    rc.CharacterList,
		Moves:         rc.MoveList,
		ServerAddress: addr,
	}, nil
}
