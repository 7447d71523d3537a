package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"eventdesk/internal/model"
)

const snapshotFile = "snapshot.json"

// Snapshot is the cached state of the last successful fetch.
type Snapshot struct {
	Events     []model.Event    `json:"events"`
	Categories []model.Category `json:"categories"`
	Users      []model.User     `json:"users"`
	SavedAt    string           `json:"saved_at"` // RFC3339 timestamp
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Events:     []model.Event{},
		Categories: []model.Category{},
		Users:      []model.User{},
	}
}

// Storage handles persistence of offline snapshots.
type Storage struct {
	dataDir string
}

// New creates a Storage rooted at dataDir, creating the directory if
// needed. A leading ~/ expands to the home directory.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

func (s *Storage) snapshotPath() string {
	return filepath.Join(s.dataDir, snapshotFile)
}

// Load reads the cached snapshot. A missing file yields an empty snapshot,
// not an error.
func (s *Storage) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath())
	if err != nil {
		if os.IsNotExist(err) {
			return NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if snapshot.Events == nil {
		snapshot.Events = []model.Event{}
	}
	if snapshot.Categories == nil {
		snapshot.Categories = []model.Category{}
	}
	if snapshot.Users == nil {
		snapshot.Users = []model.User{}
	}

	return &snapshot, nil
}

// Save writes the snapshot, stamping it with the current time.
func (s *Storage) Save(snapshot *Snapshot) error {
	snapshot.SavedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(s.snapshotPath(), data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
