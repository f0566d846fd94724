package reward

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const statsFile = "stats_v1.json"

// FileRepo persists the global stats slice. Corrupt or missing content
// degrades to zeroed stats, logged only.
type FileRepo struct {
	mu     sync.RWMutex
	path   string
	logger *log.Logger
	s      GlobalStats
}

func NewFileRepo(dataDir string, logger *log.Logger) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	r := &FileRepo{
		path:   filepath.Join(dataDir, statsFile),
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
			r.logger.Printf("stats read failed, using zero stats: %v", err)
		}
		r.s = GlobalStats{}
		return
	}

	var loaded GlobalStats
	if err := json.Unmarshal(b, &loaded); err != nil {
		r.logger.Printf("stats parse failed, using zero stats: %v", err)
		r.s = GlobalStats{}
		return
	}
	if loaded.MasterStreak < 0 {
		loaded.MasterStreak = 0
	}
	r.s = loaded
}

func (r *FileRepo) Get() GlobalStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.s
}

func (r *FileRepo) Save(s GlobalStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.s = s
	b, err := json.MarshalIndent(r.s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}
