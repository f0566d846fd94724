package wallet

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const walletFile = "wallet_v1.json"

// FileRepo persists the singleton wallet slice. Missing or corrupt content
// degrades to a zero wallet; parse failures are logged, never surfaced.
type FileRepo struct {
	mu     sync.RWMutex
	path   string
	logger *log.Logger
	w      Wallet
}

func NewFileRepo(dataDir string, logger *log.Logger) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	r := &FileRepo{
		path:   filepath.Join(dataDir, walletFile),
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
			r.logger.Printf("wallet read failed, using zero wallet: %v", err)
		}
		r.w = Wallet{}
		return
	}

	var loaded Wallet
	if err := json.Unmarshal(b, &loaded); err != nil {
		r.logger.Printf("wallet parse failed, using zero wallet: %v", err)
		r.w = Wallet{}
		return
	}
	if loaded.Coins < 0 {
		loaded.Coins = 0
	}
	r.w = loaded
}

func (r *FileRepo) Get() Wallet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.w
}

func (r *FileRepo) Save(w Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.w = w
	b, err := json.MarshalIndent(r.w, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}
