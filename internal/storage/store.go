package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/ising/internal/lattice"
	"github.com/san-kum/ising/internal/snapshot"
)

const (
	metadataFile = "metadata.json"
	InitFile     = "init.txt"
	FinalFile    = "final.txt"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string        `json:"id"`
	Timestamp     time.Time     `json:"timestamp"`
	Dim           int           `json:"dim"`
	Seed          int64         `json:"seed"`
	Steps         int           `json:"steps"`
	CouplingConst float64       `json:"coupling_const"`
	Beta          float64       `json:"beta"`
	MagField      float64       `json:"mag_field"`
	InitialEnergy float64       `json:"initial_energy"`
	FinalEnergy   float64       `json:"final_energy"`
	Elapsed       time.Duration `json:"elapsed_ns"`
}

func newRunID(now time.Time) string {
	return fmt.Sprintf("ising_%d_%s", now.Unix(), uuid.NewString()[:8])
}

// Save writes a run directory holding the metadata and both snapshots and
// returns the generated run id.
func (s *Store) Save(meta RunMetadata, initial, final *lattice.Lattice) (string, error) {
	now := time.Now()
	meta.ID = newRunID(now)
	meta.Timestamp = now

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := snapshot.WriteFile(filepath.Join(runDir, InitFile), initial); err != nil {
		return "", err
	}
	if err := snapshot.WriteFile(filepath.Join(runDir, FinalFile), final); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	return meta.ID, nil
}

// List returns stored runs, oldest first. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSnapshot reads one of the run's snapshots, InitFile or FinalFile.
func (s *Store) LoadSnapshot(runID, name string) (*lattice.Lattice, error) {
	if name != InitFile && name != FinalFile {
		return nil, fmt.Errorf("unknown snapshot %q", name)
	}
	return snapshot.ReadFile(filepath.Join(s.baseDir, runID, name))
}
