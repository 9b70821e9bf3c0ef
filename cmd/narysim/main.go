package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/narysim/internal/aggregate"
	"github.com/san-kum/narysim/internal/config"
	"github.com/san-kum/narysim/internal/driver"
	"github.com/san-kum/narysim/internal/scalar"
	"github.com/san-kum/narysim/internal/tui"
	"github.com/san-kum/narysim/internal/units"
)

var (
	configFile string
	preset     string
	count      int
	dt         float64
	duration   float64
	gain       float64
	mass       float64
	stiffness  float64
	damping    float64
	chainLen   int
	amplitude  float64
	frequency  float64
	phase      float64
	initVals   []float64
	maxPlots   int
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "narysim",
		Short: "n-ary aggregate system lab",
		Long:  "compose N copies of one unit system and evaluate the aggregate",
	}

	runCmd := &cobra.Command{
		Use:   "run [unit]",
		Short: "simulate an aggregate and plot its outputs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAggregate,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().IntVar(&maxPlots, "plots", 3, "max output series to plot")

	infoCmd := &cobra.Command{
		Use:   "info [unit]",
		Short: "show aggregate introspection",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showInfo,
	}
	addScenarioFlags(infoCmd)

	liveCmd := &cobra.Command{
		Use:   "live [unit]",
		Short: "interactive live view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, infoCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset name")
	cmd.Flags().IntVar(&count, "count", config.DefaultCount, "number of units")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Float64Var(&gain, "gain", config.DefaultGain, "integrator gain")
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "oscillator mass")
	cmd.Flags().Float64Var(&stiffness, "stiffness", config.DefaultStiffness, "oscillator stiffness")
	cmd.Flags().Float64Var(&damping, "damping", config.DefaultDamping, "oscillator damping")
	cmd.Flags().IntVar(&chainLen, "chain-len", config.DefaultChainLen, "masses per chain unit")
	cmd.Flags().Float64Var(&amplitude, "amplitude", config.DefaultAmplitude, "drive amplitude")
	cmd.Flags().Float64Var(&frequency, "frequency", config.DefaultFrequency, "drive frequency (hz)")
	cmd.Flags().Float64Var(&phase, "phase", 0.0, "per-unit drive phase offset")
	cmd.Flags().Float64SliceVar(&initVals, "init", nil, "per-unit initial positions")
}

func loadScenario(cmd *cobra.Command, args []string) (*config.Config, error) {
	unit := ""
	if len(args) > 0 {
		unit = args[0]
	}

	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case preset != "":
		if unit == "" {
			return nil, fmt.Errorf("--preset requires a unit argument")
		}
		cfg = config.GetPreset(unit, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q for unit %q", preset, unit)
		}
	default:
		cfg = config.DefaultConfig()
	}

	if unit != "" {
		cfg.Unit = unit
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = count
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("gain") {
		cfg.Params.Gain = gain
	}
	if flags.Changed("mass") {
		cfg.Params.Mass = mass
	}
	if flags.Changed("stiffness") {
		cfg.Params.Stiffness = stiffness
	}
	if flags.Changed("damping") {
		cfg.Params.Damping = damping
	}
	if flags.Changed("chain-len") {
		cfg.Params.ChainLen = chainLen
	}
	if flags.Changed("amplitude") {
		cfg.Drive.Amplitude = amplitude
	}
	if flags.Changed("frequency") {
		cfg.Drive.Frequency = frequency
	}
	if flags.Changed("phase") {
		cfg.Drive.Phase = phase
	}
	if flags.Changed("init") {
		cfg.Init = initVals
	}

	return cfg, cfg.Validate()
}

// scenario is one fully wired aggregate: ways to run it, step it live,
// and introspect it, with the generic instantiation hidden behind
// closures so the CLI can stay kind-agnostic.
type scenario struct {
	run  func(ctx context.Context) (*driver.Trace, error)
	live func() (tui.Stepper, error)
	info systemInfo
}

type systemInfo struct {
	units       int
	states      int
	inputs      int
	outputs     int
	timeVarying bool
	feedthrough bool
}

func buildScenario(cfg *config.Config) (*scenario, error) {
	switch cfg.Unit {
	case "integrator":
		return integratorScenario(cfg), nil
	case "oscillator":
		return oscillatorScenario(cfg), nil
	case "chain":
		return chainScenario(cfg), nil
	default:
		return nil, fmt.Errorf("unknown unit %q (want integrator, oscillator, or chain)", cfg.Unit)
	}
}

type flt = scalar.Real

// sigDrive produces the per-unit sinusoidal input. Cosine, so a zero
// frequency still delivers a constant amplitude.
func sigDrive(cfg *config.Config) driver.Input[units.Sig[flt]] {
	d := cfg.Drive
	n := cfg.Count
	return func(t float64) *aggregate.Vector[units.Sig[flt]] {
		v := aggregate.NewVector[units.Sig[flt]](n)
		for i := 0; i < n; i++ {
			val := d.Amplitude * math.Cos(2*math.Pi*d.Frequency*t+d.Phase*float64(i))
			v.Set(i, units.Sig[flt]{V: flt(val)})
		}
		return v
	}
}

func describe[X, U, Y aggregate.Sized, T any](sys *aggregate.System[T, X, U, Y]) systemInfo {
	return systemInfo{
		units:       sys.NumUnits(),
		states:      sys.NumStates(),
		inputs:      sys.NumInputs(),
		outputs:     sys.NumOutputs(),
		timeVarying: sys.TimeVarying(),
		feedthrough: sys.DirectFeedthrough(),
	}
}

func integratorScenario(cfg *config.Config) *scenario {
	sys := aggregate.NewSystem[flt, units.Sig[flt], units.Sig[flt], units.Sig[flt]]()
	for i := 0; i < cfg.Count; i++ {
		u := units.NewIntegrator[flt]()
		u.Gain = cfg.Params.Gain
		sys.AddUnit(u)
	}

	x0 := aggregate.NewVector[units.Sig[flt]](cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		x0.Set(i, units.Sig[flt]{V: flt(cfg.InitValue(i))})
	}
	in := sigDrive(cfg)

	return &scenario{
		run: func(ctx context.Context) (*driver.Trace, error) {
			return driver.Run(ctx, sys, x0, in, driver.Config{Dt: cfg.Dt, Duration: cfg.Duration})
		},
		live: func() (tui.Stepper, error) {
			return driver.NewSession(sys, x0, in, cfg.Dt)
		},
		info: describe(sys),
	}
}

func oscillatorScenario(cfg *config.Config) *scenario {
	sys := aggregate.NewSystem[flt, units.Pair[flt], units.Sig[flt], units.Sig[flt]]()
	for i := 0; i < cfg.Count; i++ {
		u := units.NewOscillator[flt]()
		u.Mass = cfg.Params.Mass
		u.Stiffness = cfg.Params.Stiffness
		u.Damping = cfg.Params.Damping
		sys.AddUnit(u)
	}

	x0 := aggregate.NewVector[units.Pair[flt]](cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		x0.Set(i, units.Pair[flt]{Pos: flt(cfg.InitValue(i))})
	}
	in := sigDrive(cfg)

	return &scenario{
		run: func(ctx context.Context) (*driver.Trace, error) {
			return driver.Run(ctx, sys, x0, in, driver.Config{Dt: cfg.Dt, Duration: cfg.Duration})
		},
		live: func() (tui.Stepper, error) {
			return driver.NewSession(sys, x0, in, cfg.Dt)
		},
		info: describe(sys),
	}
}

func chainScenario(cfg *config.Config) *scenario {
	sys := aggregate.NewSystem[flt, units.Vec[flt], units.Sig[flt], units.Vec[flt]]()
	n := cfg.Params.ChainLen
	for i := 0; i < cfg.Count; i++ {
		sys.AddUnit(units.NewChain[flt](n))
	}

	x0 := aggregate.NewVector[units.Vec[flt]](cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		state := make(units.Vec[flt], 2*n)
		state[0] = flt(cfg.InitValue(i)) // displace the first mass
		x0.Set(i, state)
	}
	in := sigDrive(cfg)

	return &scenario{
		run: func(ctx context.Context) (*driver.Trace, error) {
			return driver.Run(ctx, sys, x0, in, driver.Config{Dt: cfg.Dt, Duration: cfg.Duration})
		},
		live: func() (tui.Stepper, error) {
			return driver.NewSession(sys, x0, in, cfg.Dt)
		},
		info: describe(sys),
	}
}

func runAggregate(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}
	sc, err := buildScenario(cfg)
	if err != nil {
		return err
	}

	trace, err := sc.run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s x%d", cfg.Unit, cfg.Count)))
	fmt.Println()

	plots := sc.info.outputs
	if plots > maxPlots {
		plots = maxPlots
	}
	for j := 0; j < plots; j++ {
		series := make([]float64, len(trace.Outputs))
		for k, out := range trace.Outputs {
			series[k] = out[j]
		}
		graph := asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("output[%d]", j)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "units\t%d\n", sc.info.units)
	fmt.Fprintf(w, "states\t%d\n", sc.info.states)
	fmt.Fprintf(w, "inputs\t%d\n", sc.info.inputs)
	fmt.Fprintf(w, "outputs\t%d\n", sc.info.outputs)
	fmt.Fprintf(w, "steps\t%d\n", trace.StepsTaken)
	if n := len(trace.Outputs); n > 0 {
		fmt.Fprintf(w, "final y\t%.4f\n", trace.Outputs[n-1])
	}
	return w.Flush()
}

func showInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}
	sc, err := buildScenario(cfg)
	if err != nil {
		return err
	}

	info := sc.info
	fmt.Println(titleStyle.Render(fmt.Sprintf("%s aggregate", cfg.Unit)))
	rows := []struct {
		label string
		value string
	}{
		{"units", fmt.Sprintf("%d", info.units)},
		{"num states", fmt.Sprintf("%d", info.states)},
		{"num inputs", fmt.Sprintf("%d", info.inputs)},
		{"num outputs", fmt.Sprintf("%d", info.outputs)},
		{"time varying", fmt.Sprintf("%t", info.timeVarying)},
		{"direct feedthrough", fmt.Sprintf("%t", info.feedthrough)},
	}
	for _, r := range rows {
		fmt.Printf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-20s", r.label)), valueStyle.Render(r.value))
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}
	sc, err := buildScenario(cfg)
	if err != nil {
		return err
	}
	stepper, err := sc.live()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewLive(cfg.Unit, stepper, cfg.Dt), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "unit\tpreset\tcount\tdt\tduration")
	for unit, presets := range config.Presets {
		for name, cfg := range presets {
			fmt.Fprintf(w, "%s\t%s\t%d\t%g\t%g\n", unit, name, cfg.Count, cfg.Dt, cfg.Duration)
		}
	}
	return w.Flush()
}
