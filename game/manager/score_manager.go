package manager

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"snake-arcade/game/types"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	ScoresFile = "scores.json"
	tagFiller  = "---"
	tagLength  = 3
)

var errCorruptScores = errors.New("corrupt score table")

// ScoreEntry is one line of the high score table
type ScoreEntry struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
}

// ScoreKeeper manages the high score table
type ScoreKeeper interface {
	GetScores() []ScoreEntry
	AddScore(player string, score int)
	IsHighScore(score int) bool
}

// DefaultScores returns a fresh copy of the seed table
func DefaultScores() []ScoreEntry {
	return []ScoreEntry{
		{Player: "TLS", Score: 1000},
		{Player: "TLS", Score: 800},
		{Player: "TLS", Score: 600},
		{Player: "TLS", Score: 400},
		{Player: "TLS", Score: 200},
	}
}

// NormalizePlayer pads the tag with '-' and keeps the first three characters,
// upper-cased.
func NormalizePlayer(player string) string {
	r := []rune(strings.ToUpper(player + tagFiller))
	return string(r[:tagLength])
}

// blob is the single serialized score table
type blob interface {
	Load() (data []byte, ok bool, err error)
	Save(data []byte) error
}

type fileBlob struct {
	path string
}

func (f *fileBlob) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (f *fileBlob) Save(data []byte) error {
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write score file: %w", err)
	}
	return nil
}

type memoryBlob struct {
	data []byte
}

func (m *memoryBlob) Load() ([]byte, bool, error) {
	if m.data == nil {
		return nil, false, nil
	}
	return append([]byte(nil), m.data...), true, nil
}

func (m *memoryBlob) Save(data []byte) error {
	m.data = append([]byte(nil), data...)
	return nil
}

// ScoreManager keeps a top-5 table in a blob backend. The backend is picked
// once when the manager is opened.
type ScoreManager struct {
	store      blob
	persistent bool
}

// OpenScoreStore uses dir/scores.json when the directory is writable and
// falls back to a session-only table otherwise.
func OpenScoreStore(dir string) *ScoreManager {
	if dir != "" {
		if err := probeDir(dir); err != nil {
			log.Printf("scores: %v, keeping high scores in memory", err)
		} else {
			return newScoreManager(&fileBlob{path: filepath.Join(dir, ScoresFile)}, true)
		}
	}
	return NewMemoryScoreStore()
}

// NewMemoryScoreStore returns a table that lives as long as the process
func NewMemoryScoreStore() *ScoreManager {
	return newScoreManager(&memoryBlob{}, false)
}

func newScoreManager(store blob, persistent bool) *ScoreManager {
	sm := &ScoreManager{store: store, persistent: persistent}
	if _, ok, err := store.Load(); err != nil || !ok {
		sm.save(DefaultScores())
	}
	return sm
}

func probeDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("data directory not writable: %w", err)
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}

// Persistent reports whether scores survive a restart
func (sm *ScoreManager) Persistent() bool {
	return sm.persistent
}

// GetScores returns at most five entries, best first. A missing or corrupt
// table is replaced by the defaults.
func (sm *ScoreManager) GetScores() []ScoreEntry {
	data, ok, err := sm.store.Load()
	if err != nil || !ok {
		return sm.reset(err)
	}
	scores, err := decodeScores(data)
	if err != nil {
		return sm.reset(err)
	}
	sortScores(scores)
	if len(scores) > types.MaxHighScores {
		scores = scores[:types.MaxHighScores]
	}
	return scores
}

func (sm *ScoreManager) reset(cause error) []ScoreEntry {
	if cause != nil {
		log.Printf("scores: %v, restoring defaults", cause)
	}
	defaults := DefaultScores()
	sm.save(defaults)
	return defaults
}

func (sm *ScoreManager) AddScore(player string, score int) {
	scores := sm.GetScores()
	scores = append(scores, ScoreEntry{Player: NormalizePlayer(player), Score: score})
	sortScores(scores)
	if len(scores) > types.MaxHighScores {
		scores = scores[:types.MaxHighScores]
	}
	sm.save(scores)
}

// IsHighScore reports whether score beats the lowest entry of the table
func (sm *ScoreManager) IsHighScore(score int) bool {
	scores := sm.GetScores()
	return scores[len(scores)-1].Score < score
}

func (sm *ScoreManager) save(scores []ScoreEntry) {
	data, err := encodeScores(scores)
	if err == nil {
		err = sm.store.Save(data)
	}
	if err != nil {
		log.Printf("scores: save failed: %v", err)
	}
}

func sortScores(scores []ScoreEntry) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
}

// decodeScores accepts scores stored as numbers or as numeric strings
func decodeScores(data []byte) ([]ScoreEntry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", errCorruptScores)
	}
	res := gjson.ParseBytes(data)
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: not an array", errCorruptScores)
	}

	var (
		out []ScoreEntry
		bad error
	)
	res.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			bad = fmt.Errorf("%w: entry %s is not an object", errCorruptScores, v.Raw)
			return false
		}
		score, err := scoreValue(v.Get("score"))
		if err != nil {
			bad = err
			return false
		}
		out = append(out, ScoreEntry{Player: v.Get("player").String(), Score: score})
		return true
	})
	if bad != nil {
		return nil, bad
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty table", errCorruptScores)
	}
	return out, nil
}

func scoreValue(v gjson.Result) (int, error) {
	switch v.Type {
	case gjson.Number:
		return int(v.Int()), nil
	case gjson.String:
		n, err := strconv.Atoi(strings.TrimSpace(v.Str))
		if err != nil {
			return 0, fmt.Errorf("%w: score %q", errCorruptScores, v.Str)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: score %s", errCorruptScores, v.Raw)
}

func encodeScores(scores []ScoreEntry) ([]byte, error) {
	data := []byte("[]")
	var err error
	for i, e := range scores {
		data, err = sjson.SetBytes(data, strconv.Itoa(i), e)
		if err != nil {
			return nil, fmt.Errorf("failed to encode score %d: %w", i, err)
		}
	}
	return data, nil
}
