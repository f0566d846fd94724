package streak

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var ErrNotFound = errors.New("streak: record not found")

// Slice key is versioned in the filename; a breaking schema change bumps the
// suffix instead of migrating in place.
const ledgerFile = "streaks_v1.json"

type fileState struct {
	Records []Record `json:"records"`
}

// FileRepo persists the ordered category ledger as one JSON slice on disk.
// Missing or corrupt content falls back to the seeded default set; a parse
// failure is logged, never surfaced.
type FileRepo struct {
	mu     sync.RWMutex
	path   string
	logger *log.Logger
	s      fileState
}

func NewFileRepo(dataDir string, logger *log.Logger) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	r := &FileRepo{
		path:   filepath.Join(dataDir, ledgerFile),
		logger: logger,
	}
	r.load()
	return r, nil
}

func (r *FileRepo) load() {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Printf("streak ledger read failed, using defaults: %v", err)
		}
		r.s = fileState{Records: DefaultRecords()}
		return
	}

	var loaded fileState
	if err := json.Unmarshal(b, &loaded); err != nil {
		r.logger.Printf("streak ledger parse failed, using defaults: %v", err)
		r.s = fileState{Records: DefaultRecords()}
		return
	}
	if len(loaded.Records) == 0 {
		loaded.Records = DefaultRecords()
	}
	for i := range loaded.Records {
		normalizeRecord(&loaded.Records[i])
	}
	r.s = loaded
}

func (r *FileRepo) saveLocked() error {
	b, err := json.MarshalIndent(r.s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

// List returns a copy of the ledger in stored order.
func (r *FileRepo) List() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, len(r.s.Records))
	copy(out, r.s.Records)
	return out
}

func (r *FileRepo) Get(id string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.s.Records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return Record{}, ErrNotFound
}

// SaveAll replaces the ledger atomically and flushes to disk.
func (r *FileRepo) SaveAll(recs []Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Record, len(recs))
	copy(next, recs)
	for i := range next {
		normalizeRecord(&next[i])
	}
	r.s.Records = next
	return r.saveLocked()
}
