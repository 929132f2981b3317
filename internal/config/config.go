package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/AndrewMorgan2/Spritied-Towards/internal/game"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/keys"
)

type hostileEntry struct {
	Name         string  `json:"name"`
	Sprite       string  `json:"sprite"`
	MaxHealth    float64 `json:"max_health"`
	AttackDamage float64 `json:"attack_damage"`
}

type chapterEntry struct {
	Key                 string          `json:"key"`
	Title               string          `json:"title"`
	StoryText           []string        `json:"story_text"`
	Background          string          `json:"background"`
	PlayerSprite        string          `json:"player_sprite"`
	PlayerMaxHealth     float64         `json:"player_max_health"`
	Hostiles            []hostileEntry  `json:"hostile_list"`
	InitialHand         []game.CardKind `json:"initial_hand"`
	AdvanceDelaySeconds float64         `json:"advance_delay_seconds"`
	NextChapter         string          `json:"next_chapter"`
}

type rawConfig struct {
	ChapterList []chapterEntry `json:"chapter_list"`
	Server      *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Sessions untouched for this long are pruned by the janitor.
	SessionTTLMinutes int `json:"session_ttl_minutes"`
}

// LoadedConfig contains the chapter table and the server settings.
// The first entry of Chapters is the entry chapter new sessions start on.
type LoadedConfig struct {
	Chapters      []game.Chapter
	ServerAddress string
	SessionTTL    time.Duration
}

// Chapter returns the chapter with the given key, or nil.
func (lc *LoadedConfig) Chapter(key string) *game.Chapter {
	key = keys.ChapterKey(key)
	for i := range lc.Chapters {
		if lc.Chapters[i].Key == key {
			return &lc.Chapters[i]
		}
	}
	return nil
}

// Entry returns the chapter new sessions begin on.
func (lc *LoadedConfig) Entry() *game.Chapter {
	return &lc.Chapters[0]
}

// LoadConfig reads the configuration file at path and returns the chapter
// table and server address. It requires the key `chapter_list` (snake_case).
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	entries := rc.ChapterList
	if len(entries) == 0 {
		return nil, fmt.Errorf("config file %s: chapter_list is empty (provide 'chapter_list' array)", path)
	}

	out := make([]game.Chapter, 0, len(entries))
	for _, e := range entries {
		key := keys.ChapterKey(e.Key)
		if key == "" {
			return nil, fmt.Errorf("config file %s: chapter entry missing 'key'", path)
		}
		if e.PlayerMaxHealth <= 0 {
			return nil, fmt.Errorf("config file %s: chapter '%s' needs a positive player_max_health", path, key)
		}
		if len(e.Hostiles) == 0 {
			return nil, fmt.Errorf("config file %s: chapter '%s' has no hostile_list", path, key)
		}
		hostiles := make([]game.HostileConfig, 0, len(e.Hostiles))
		for _, h := range e.Hostiles {
			if h.MaxHealth <= 0 {
				return nil, fmt.Errorf("config file %s: chapter '%s' hostile '%s' needs a positive max_health", path, key, h.Name)
			}
			if h.AttackDamage < 0 {
				return nil, fmt.Errorf("config file %s: chapter '%s' hostile '%s' has a negative attack_damage", path, key, h.Name)
			}
			hostiles = append(hostiles, game.HostileConfig{
				Name:         h.Name,
				Sprite:       h.Sprite,
				MaxHealth:    h.MaxHealth,
				AttackDamage: h.AttackDamage,
			})
		}
		for _, k := range e.InitialHand {
			if !game.ValidCardKind(k) {
				return nil, fmt.Errorf("config file %s: chapter '%s' has unknown card kind '%s' in initial_hand", path, key, k)
			}
		}
		delay := e.AdvanceDelaySeconds
		if delay < 0 {
			return nil, fmt.Errorf("config file %s: chapter '%s' has a negative advance_delay_seconds", path, key)
		}
		out = append(out, game.Chapter{
			Key:                 key,
			Title:               e.Title,
			StoryText:           e.StoryText,
			Background:          e.Background,
			PlayerSprite:        e.PlayerSprite,
			PlayerMaxHealth:     e.PlayerMaxHealth,
			Hostiles:            hostiles,
			InitialHand:         e.InitialHand,
			AdvanceDelaySeconds: delay,
			NextChapter:         keys.ChapterKey(e.NextChapter),
		})
	}

	// Cross-entry validation: unique keys, next_chapter references that
	// resolve, and an entry chapter (the first) nothing links back to.
	keySet := make(map[string]struct{}, len(out))
	for _, ch := range out {
		if _, exists := keySet[ch.Key]; exists {
			return nil, fmt.Errorf("config file %s: duplicate chapter key '%s'", path, ch.Key)
		}
		keySet[ch.Key] = struct{}{}
	}
	for _, ch := range out {
		if ch.NextChapter == "" {
			continue
		}
		if _, exists := keySet[ch.NextChapter]; !exists {
			return nil, fmt.Errorf("config file %s: chapter '%s' links to unknown next_chapter '%s'", path, ch.Key, ch.NextChapter)
		}
		if ch.NextChapter == out[0].Key {
			return nil, fmt.Errorf("config file %s: chapter '%s' links back to the entry chapter '%s'", path, ch.Key, out[0].Key)
		}
		if ch.NextChapter == ch.Key {
			return nil, fmt.Errorf("config file %s: chapter '%s' links to itself", path, ch.Key)
		}
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	ttl := 24 * time.Hour
	if rc.SessionTTLMinutes > 0 {
		ttl = time.Duration(rc.SessionTTLMinutes) * time.Minute
	}

	return &LoadedConfig{
		Chapters:      out,
		ServerAddress: addr,
		SessionTTL:    ttl,
	}, nil
}
