package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbit/internal/analysis"
	"github.com/san-kum/orbit/internal/celestial"
	"github.com/san-kum/orbit/internal/config"
	"github.com/san-kum/orbit/internal/export"
	"github.com/san-kum/orbit/internal/integrators"
	"github.com/san-kum/orbit/internal/metrics"
	"github.com/san-kum/orbit/internal/sim"
	"github.com/san-kum/orbit/internal/storage"
	"github.com/san-kum/orbit/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	dt         float64
	years      float64
	stride     int
	integrator string
	workers    int
	softening  float64
	spanAU     float64
	bodyName   string
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbit",
		Short: "solar system gravitational integrator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbit", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "inner", "preset scenario")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scenario and save the result",
		RunE:  runScenario,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep [s] (override)")
	runCmd.Flags().Float64Var(&years, "years", 0, "duration [yr] (override)")
	runCmd.Flags().IntVar(&stride, "stride", 0, "trajectory sample stride (override)")
	runCmd.Flags().StringVar(&integrator, "integrator", "", "verlet or euler (override)")
	runCmd.Flags().IntVar(&workers, "workers", 0, "force evaluation workers (override)")
	runCmd.Flags().Float64Var(&softening, "softening", 0, "softening length [m] (override)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive live view",
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", 0, "timestep [s] (override)")
	liveCmd.Flags().Float64Var(&spanAU, "span", 4.0, "view span [AU]")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a body's sampled x coordinate",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&bodyName, "body", "Earth", "body name")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export sampled orbits as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "", "output file (default <run_id>.svg)")

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "show the scenario body table",
		RunE:  showBodies,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			fmt.Println(strings.Join(names, "\n"))
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, bodiesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadScenario() (*config.Scenario, error) {
	var sc *config.Scenario
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		sc = loaded
	} else {
		sc = config.GetPreset(preset)
		if sc == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
	}

	if dt > 0 {
		sc.Dt = dt
	}
	if years > 0 {
		sc.DurationYears = years
	}
	if stride > 0 {
		sc.SampleEvery = stride
	}
	if integrator != "" {
		sc.Integrator = integrator
	}
	if workers > 0 {
		sc.Workers = workers
	}
	if softening > 0 {
		sc.Softening = softening
	}
	return sc, nil
}

func pickIntegrator(name string) (sim.Integrator, error) {
	switch name {
	case "", "verlet":
		return integrators.NewVerlet(), nil
	case "euler":
		return integrators.NewEuler(), nil
	default:
		return nil, fmt.Errorf("unknown integrator %q", name)
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario()
	if err != nil {
		return err
	}

	sys, err := sc.BuildSystem()
	if err != nil {
		return err
	}

	integ, err := pickIntegrator(sc.Integrator)
	if err != nil {
		return err
	}

	simulator := sim.New(sys, integ)
	simulator.AddMetric(metrics.NewEnergyDrift())
	simulator.AddMetric(metrics.NewAngularMomentumDrift())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, runErr := simulator.Run(ctx, sim.Config{
		Dt:          sc.Dt,
		Duration:    sc.Duration(),
		SampleEvery: sc.SampleEvery,
	})

	switch {
	case runErr == nil:
	case errors.Is(runErr, context.Canceled):
		fmt.Printf("interrupted after %d steps; partial results kept\n", result.StepsTaken)
	default:
		return runErr
	}

	printSummary(sc, sys, result)

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(sc.Name, sc.Dt, integ.Name(), result, sys)
	if err != nil {
		return err
	}
	fmt.Printf("\nsaved run %s\n", runID)
	return nil
}

func printSummary(sc *config.Scenario, sys *celestial.System, result *sim.Result) {
	fmt.Printf("elapsed %.4f yr in %d steps\n", result.Elapsed/celestial.Year, result.StepsTaken)
	fmt.Printf("relative energy error: %.3e (max %.3e)\n",
		result.EnergyDrift, result.Metrics["energy_drift"])
	fmt.Printf("angular momentum drift: %.3e\n\n", result.Metrics["angular_momentum_drift"])

	sampleDt := sc.Dt * float64(sc.SampleEvery)
	primaryTrack, _ := sys.Trajectory(sys.Bodies()[0].ID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tDIST [AU]\tSPEED [km/s]\tPERIOD OBS [d]\tPERIOD REF [d]")
	for _, b := range sys.Bodies() {
		dist := b.Position.Sub(sys.Bodies()[0].Position).Norm() / celestial.AU

		obs := "-"
		track := b.Track.Samples()
		ref := primaryTrack
		if b.ParentID != celestial.NoParent {
			if parent, err := sys.Body(b.ParentID); err == nil {
				ref = parent.Track.Samples()
			}
		}
		if period, err := analysis.OrbitalPeriod(track, ref, sampleDt); err == nil {
			obs = fmt.Sprintf("%.1f", period/celestial.Day)
		}

		nominal := "-"
		if p := b.Elements.Period; p > 0 {
			nominal = fmt.Sprintf("%.1f", p/celestial.Day)
		}

		fmt.Fprintf(w, "%s\t%.3f\t%.2f\t%s\t%s\n",
			b.Name, dist, b.Speed()/1000, obs, nominal)
	}
	w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario()
	if err != nil {
		return err
	}

	sys, err := sc.BuildSystem()
	if err != nil {
		return err
	}
	integ, err := pickIntegrator(sc.Integrator)
	if err != nil {
		return err
	}

	return tui.RunLive(sys, integ, sc.Dt, spanAU)
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSCENARIO\tSTEPS\tELAPSED [yr]\tENERGY DRIFT")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.3f\t%.3e\n",
			r.ID, r.Scenario, r.StepsTaken, r.Elapsed/celestial.Year, r.EnergyDrift)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	tracks, err := store.LoadTrajectories(args[0])
	if err != nil {
		return err
	}

	track, ok := tracks[bodyName]
	if !ok || len(track) < 2 {
		return fmt.Errorf("no trajectory for body %q in run %s", bodyName, args[0])
	}

	xs := make([]float64, len(track))
	for i, p := range track {
		xs[i] = p.X / celestial.AU
	}

	fmt.Println(asciigraph.Plot(xs,
		asciigraph.Height(15),
		asciigraph.Width(76),
		asciigraph.Caption(fmt.Sprintf("%s x [AU] over samples", bodyName)),
	))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	tracks, err := store.LoadTrajectories(args[0])
	if err != nil {
		return err
	}

	names := make([]string, 0, len(tracks))
	for name := range tracks {
		names = append(names, name)
	}
	sort.Strings(names)

	orbits := make([]export.Orbit, 0, len(names))
	for _, name := range names {
		orbits = append(orbits, export.Orbit{Name: name, Points: tracks[name]})
	}

	svg := export.OrbitsToSVG(orbits, 1000, 1000)
	if svg == "" {
		return fmt.Errorf("run %s has no plottable trajectories", args[0])
	}

	path := outFile
	if path == "" {
		path = filepath.Base(args[0]) + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func showBodies(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario()
	if err != nil {
		return err
	}

	sys, err := sc.BuildSystem()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPARENT\tMASS [kg]\tRADIUS [m]\tDIST [AU]\tSPEED [km/s]")
	for _, b := range sys.Bodies() {
		parent := "-"
		if b.ParentID != celestial.NoParent {
			if p, err := sys.Body(b.ParentID); err == nil {
				parent = p.Name
			}
		}
		dist := b.Position.Sub(sys.Bodies()[0].Position).Norm() / celestial.AU
		fmt.Fprintf(w, "%d\t%s\t%s\t%.4e\t%.3e\t%.3f\t%.2f\n",
			b.ID, b.Name, parent, b.Mass, b.Radius, dist, b.Speed()/1000)
	}
	return w.Flush()
}
