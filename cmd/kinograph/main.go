package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/kinograph/internal/analysis"
	"github.com/san-kum/kinograph/internal/config"
	"github.com/san-kum/kinograph/internal/integrators"
	"github.com/san-kum/kinograph/internal/kinematics"
	"github.com/san-kum/kinograph/internal/logger"
	"github.com/san-kum/kinograph/internal/metrics"
	"github.com/san-kum/kinograph/internal/pipeline"
	"github.com/san-kum/kinograph/internal/sim"
	"github.com/san-kum/kinograph/internal/viewer"
	"github.com/san-kum/kinograph/internal/workbook"
)

var (
	debug      bool
	jsonLogs   bool
	viewerName string
	configFile string
	preset     string
	method     string
	output     string
	dt         float64
	duration   float64
)

// main wires the commands and exits with status 1 when the selected command fails.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		var loadErr *workbook.LoadError
		if errors.As(err, &loadErr) {
			fmt.Println(loadErr.Message())
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cleanup func()

	rootCmd := &cobra.Command{
		Use:           "kinograph",
		Short:         "plot position, velocity and acceleration from kinematics_output.xlsx",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cleanup = logger.Setup(logger.Config{Debug: debug, JSON: jsonLogs})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cleanup != nil {
				cleanup()
			}
		},
		// No subcommand behaves like `plot` with every default.
		RunE: plotKinematics,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "log as JSON")
	rootCmd.Flags().StringVar(&viewerName, "viewer", "window", "viewer: window or terminal")

	plotCmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "show the three-panel kinematics chart",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotKinematics,
	}
	plotCmd.Flags().StringVar(&viewerName, "viewer", "window", "viewer: window or terminal")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "simulate the damped oscillator and write the kinematics spreadsheet",
		Args:  cobra.NoArgs,
		RunE:  simulate,
	}
	simulateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	simulateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	simulateCmd.Flags().StringVar(&method, "method", integrators.Default, fmt.Sprintf("integrator %v", integrators.Names()))
	simulateCmd.Flags().StringVar(&output, "output", config.DefaultOutput, "output spreadsheet")
	simulateCmd.Flags().Float64Var(&dt, "dt", kinematics.Dt, "timestep")
	simulateCmd.Flags().Float64Var(&duration, "time", kinematics.EndTime, "duration")

	inspectCmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "summarise the kinematics spreadsheet",
		Args:  cobra.MaximumNArgs(1),
		RunE:  inspect,
	}

	rootCmd.AddCommand(plotCmd, simulateCmd, inspectCmd)
	return rootCmd
}

func inputPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return workbook.DefaultPath
}

func plotKinematics(cmd *cobra.Command, args []string) error {
	v, err := viewer.New(viewerName)
	if err != nil {
		return err
	}

	opts := pipeline.DefaultOptions()
	opts.Path = inputPath(args)

	err = pipeline.Run(cmd.Context(), opts, v)
	if err != nil {
		logger.L().Error("pipeline.failed", "path", opts.Path, "err", err)
	}
	return err
}

func simulate(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("method") {
		cfg.Method = method
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	osc := cfg.Oscillator()
	integ, err := integrators.New(cfg.Method)
	if err != nil {
		return err
	}

	logger.L().Info("simulate.start",
		"method", cfg.Method, "dt", cfg.Dt, "duration", cfg.Duration,
		"mass", osc.Mass, "stiffness", osc.Stiffness, "damping", osc.Damping)

	energy := metrics.NewEnergyTracker(osc)
	s := sim.New(osc, integ)
	s.AddObserver(energy)

	result, err := s.Run(cmd.Context(), osc.InitialState(), cfg.SimConfig())
	if err != nil {
		return err
	}

	table, err := sim.Kinematics(result)
	if err != nil {
		return err
	}
	if err := workbook.Write(cfg.Output, table); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}

	fmt.Printf("wrote %s\n", cfg.Output)
	fmt.Printf("samples: %d\n", table.Rows())
	fmt.Printf("damping ratio: %.4f\n", osc.DampingRatio())
	fmt.Printf("energy dissipated: %.2f%%\n", 100*energy.Dissipated())
	if inc := energy.MaxIncrease(); inc > 0 {
		fmt.Printf("max energy gain per step: %.4e (integration error)\n", inc)
	}
	return nil
}

func inspect(cmd *cobra.Command, args []string) error {
	path := inputPath(args)
	table, err := workbook.Load(path)
	if err != nil {
		return err
	}

	axis := kinematics.DefaultTimeAxis()
	fmt.Printf("file: %s\n", path)
	fmt.Printf("rows: %d\n", table.Rows())
	fmt.Printf("time samples: %d\n\n", len(axis))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tMIN\tMAX\tFINAL")
	for _, c := range kinematics.Columns() {
		s := kinematics.Extract(table, c).Summary()
		fmt.Fprintf(w, "%s\t%.6f\t%.6f\t%.6f\n", c.Label(), s.Min, s.Max, s.Final)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	hz, err := analysis.DominantFrequency(kinematics.Extract(table, kinematics.Position), kinematics.Dt)
	if err != nil {
		logger.L().Debug("inspect.spectrum_skipped", "err", err)
		return nil
	}
	fmt.Printf("\ndominant position frequency: %.3f Hz\n", hz)
	return nil
}
