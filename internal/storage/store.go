package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/orbit/internal/celestial"
	"github.com/san-kum/orbit/internal/sim"
)

// Store persists completed runs under a base directory, one directory per
// run: metadata.json plus the sampled trajectories in trajectories.csv.
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
	ID          string             `json:"id"`
	Scenario    string             `json:"scenario"`
	Timestamp   time.Time          `json:"timestamp"`
	Dt          float64            `json:"dt"`
	Elapsed     float64            `json:"elapsed"`
	Integrator  string             `json:"integrator"`
	StepsTaken  int                `json:"steps_taken"`
	EnergyDrift float64            `json:"energy_drift"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save writes a run directory and returns its id. Trajectories are stored
// long-form (body id, name, sample index, position in meters) since
// per-body buffer lengths differ.
func (s *Store) Save(scenario string, dt float64, integrator string, result *sim.Result, sys *celestial.System) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Scenario:    scenario,
		Timestamp:   time.Now(),
		Dt:          dt,
		Elapsed:     result.Elapsed,
		Integrator:  integrator,
		StepsTaken:  result.StepsTaken,
		EnergyDrift: result.EnergyDrift,
		Metrics:     result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectories.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"body_id", "name", "sample", "x", "y", "z"}); err != nil {
		return "", err
	}

	for _, b := range sys.Bodies() {
		for i, p := range b.Track.Samples() {
			row := []string{
				strconv.Itoa(b.ID),
				b.Name,
				strconv.Itoa(i),
				strconv.FormatFloat(p.X, 'e', 9, 64),
				strconv.FormatFloat(p.Y, 'e', 9, 64),
				strconv.FormatFloat(p.Z, 'e', 9, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectories reads a run's sampled positions back, keyed by body
// name, samples in order.
func (s *Store) LoadTrajectories(runID string) (map[string][]celestial.Vec3, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectories.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	tracks := make(map[string][]celestial.Vec3)
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) < 6 {
			continue
		}
		x, err1 := strconv.ParseFloat(rec[3], 64)
		y, err2 := strconv.ParseFloat(rec[4], 64)
		z, err3 := strconv.ParseFloat(rec[5], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		name := rec[1]
		tracks[name] = append(tracks[name], celestial.Vec3{X: x, Y: y, Z: z})
	}

	return tracks, nil
}
