package manager

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	HistoryFile = "history.json"
	MaxHistory  = 100 // finished games kept on disk
)

// GameRecord holds the data of one finished game
type GameRecord struct {
	ID         string    `json:"id"`
	Difficulty string    `json:"difficulty"`
	Score      int       `json:"score"`
	TailLength int       `json:"tailLength"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Duration   float64   `json:"duration"` // seconds
}

// HistoryManager records finished games. With an empty path it only keeps
// them in memory.
type HistoryManager struct {
	path    string
	games   []GameRecord
	started time.Time
	active  bool
}

// OpenHistory loads dir/history.json if present
func OpenHistory(dir string) *HistoryManager {
	hm := &HistoryManager{games: make([]GameRecord, 0)}
	if dir == "" {
		return hm
	}
	hm.path = filepath.Join(dir, HistoryFile)
	if err := hm.loadFromFile(); err != nil {
		log.Printf("history: %v, starting empty", err)
		hm.games = make([]GameRecord, 0)
	}
	return hm
}

// Begin marks the start of a game
func (hm *HistoryManager) Begin(now time.Time) {
	hm.started = now
	hm.active = true
}

// Finish records the game started by the last Begin. Without a matching
// Begin the call is ignored.
func (hm *HistoryManager) Finish(score, tailLength int, difficulty string, now time.Time) *GameRecord {
	if !hm.active {
		return nil
	}
	hm.active = false

	rec := GameRecord{
		ID:         uuid.New().String(),
		Difficulty: difficulty,
		Score:      score,
		TailLength: tailLength,
		StartTime:  hm.started,
		EndTime:    now,
		Duration:   now.Sub(hm.started).Seconds(),
	}
	hm.games = append(hm.games, rec)
	if len(hm.games) > MaxHistory {
		hm.games = hm.games[len(hm.games)-MaxHistory:]
	}
	if err := hm.SaveToFile(); err != nil {
		log.Printf("history: %v", err)
	}
	return &hm.games[len(hm.games)-1]
}

// Records returns a copy of the recorded games, oldest first
func (hm *HistoryManager) Records() []GameRecord {
	return append([]GameRecord(nil), hm.games...)
}

func (hm *HistoryManager) GamesPlayed() int {
	return len(hm.games)
}

func (hm *HistoryManager) BestScore() int {
	best := 0
	for _, g := range hm.games {
		if g.Score > best {
			best = g.Score
		}
	}
	return best
}

func (hm *HistoryManager) AverageScore() float64 {
	if len(hm.games) == 0 {
		return 0
	}
	total := 0
	for _, g := range hm.games {
		total += g.Score
	}
	return float64(total) / float64(len(hm.games))
}

// SaveToFile writes the history as indented JSON
func (hm *HistoryManager) SaveToFile() error {
	if hm.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(hm.games, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := os.WriteFile(hm.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

func (hm *HistoryManager) loadFromFile() error {
	data, err := os.ReadFile(hm.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, &hm.games); err != nil {
		return fmt.Errorf("failed to parse history: %w", err)
	}
	return nil
}
