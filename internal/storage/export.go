package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	RunMetadata
	Initial [][]int8 `json:"initial,omitempty"`
	Final   [][]int8 `json:"final,omitempty"`
}

// ExportJSON writes the run's metadata and, when withGrids is set, both
// snapshots as nested arrays.
func (s *Store) ExportJSON(w io.Writer, runID string, withGrids bool) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}

	data := ExportData{RunMetadata: *meta}
	if withGrids {
		initial, err := s.LoadSnapshot(runID, InitFile)
		if err != nil {
			return err
		}
		final, err := s.LoadSnapshot(runID, FinalFile)
		if err != nil {
			return err
		}
		data.Initial = initial.Rows()
		data.Final = final.Rows()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
