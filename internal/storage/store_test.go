package storage

import (
	"math"
	"testing"

	"github.com/san-kum/orbit/internal/celestial"
	"github.com/san-kum/orbit/internal/sim"
)

func seededSystem(t *testing.T) *celestial.System {
	t.Helper()
	sys, err := celestial.NewSystem([]celestial.BodyDescriptor{
		{ID: 0, Name: "Primary", Mass: 1.98892e30, HasState: true, TrajectoryCap: 8},
		{
			ID: 1, Name: "Planet", Mass: 5.97e24, HasState: true,
			Position:      celestial.Vec3{X: celestial.AU},
			Velocity:      celestial.Vec3{Y: 29784},
			TrajectoryCap: 8,
		},
	}, celestial.Options{})
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	for i := 0; i < 5; i++ {
		sys.SampleTrajectories()
	}
	return sys
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	sys := seededSystem(t)
	result := &sim.Result{
		StepsTaken:  120,
		Elapsed:     120 * 3600,
		EnergyDrift: 3.2e-9,
		Metrics:     map[string]float64{"energy_drift": 3.2e-9},
	}

	runID, err := store.Save("two-body", 3600, "verlet", result, sys)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.ID != runID {
		t.Errorf("id = %q, want %q", meta.ID, runID)
	}
	if meta.Scenario != "two-body" || meta.Integrator != "verlet" {
		t.Errorf("scenario/integrator = %q/%q", meta.Scenario, meta.Integrator)
	}
	if meta.StepsTaken != 120 {
		t.Errorf("steps = %d, want 120", meta.StepsTaken)
	}
	if meta.EnergyDrift != 3.2e-9 {
		t.Errorf("energy drift = %g, want 3.2e-9", meta.EnergyDrift)
	}
	if got := meta.Metrics["energy_drift"]; got != 3.2e-9 {
		t.Errorf("metrics[energy_drift] = %g", got)
	}
}

func TestLoadTrajectoriesPreservesSamples(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	sys := seededSystem(t)
	runID, err := store.Save("two-body", 3600, "verlet", &sim.Result{}, sys)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	tracks, err := store.LoadTrajectories(runID)
	if err != nil {
		t.Fatalf("LoadTrajectories: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}

	planet := tracks["Planet"]
	if len(planet) != 5 {
		t.Fatalf("planet samples = %d, want 5", len(planet))
	}
	// Positions survive the CSV round trip to nine significant digits.
	if rel := math.Abs(planet[0].X-celestial.AU) / celestial.AU; rel > 1e-9 {
		t.Errorf("planet x relative error %g after round trip", rel)
	}
	if planet[0].Z != 0 {
		t.Errorf("planet z = %g, want 0", planet[0].Z)
	}
}

func TestListEmptyAndPopulated(t *testing.T) {
	store := New(t.TempDir())

	// Missing base directory reads as an empty run list.
	runs, err := store.List()
	if err != nil {
		t.Fatalf("List on missing dir: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("got %d runs before any save", len(runs))
	}

	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sys := seededSystem(t)
	if _, err := store.Save("a", 600, "verlet", &sim.Result{}, sys); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Save("b", 600, "euler", &sim.Result{}, sys); err != nil {
		t.Fatalf("Save: %v", err)
	}

	runs, err = store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
}

func TestBackToBackSavesGetDistinctRunIDs(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sys := seededSystem(t)

	first, err := store.Save("two-body", 3600, "verlet", &sim.Result{StepsTaken: 1}, sys)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := store.Save("two-body", 3600, "verlet", &sim.Result{StepsTaken: 2}, sys)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first == second {
		t.Fatalf("consecutive saves share run id %s", first)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
}

func TestLoadUnknownRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("no-such-run"); err == nil {
		t.Fatal("expected error for unknown run id")
	}
	if _, err := store.LoadTrajectories("no-such-run"); err == nil {
		t.Fatal("expected error for unknown run trajectories")
	}
}
