package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/samdwyer/simplerpg/internal/config"
	"github.com/samdwyer/simplerpg/internal/game"
	"github.com/samdwyer/simplerpg/internal/logging"
	"github.com/samdwyer/simplerpg/internal/telemetry"
)

// logFile receives play-mode logs, since stdout belongs to the terminal UI.
const logFile = "simplerpg.log"

var fs = afero.NewOsFs()

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:   "simplerpg",
		Short: "Real-time party combat in the terminal",
		Long: `simplerpg pits a small party of dwarves against goblins on a walled arena.

Units follow, attack and support each other through a per-unit state machine
while enemies run a simple AI pass every second. Settings come from a YAML
config file (missing file means defaults).`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.DefaultPath, "Path to YAML config")

	root.AddCommand(newPlayCmd(&cfgPath), newSimulateCmd(&cfgPath))
	return root
}

func newPlayCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play interactively in the terminal",
		Long: `Play interactively in the terminal.

Keys:
  tab     select next party member
  e       select next enemy
  f / a   follow / attack the selected enemy
  s       support the most wounded ally (support class only)
  click   move the selected unit
  q, esc  quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := fs.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer out.Close()

			cfg, err := setup(*cfgPath, out)
			if err != nil {
				return err
			}

			g, err := game.New(cfg)
			if err != nil {
				return fmt.Errorf("initializing game: %w", err)
			}
			return g.Run(cmd.Context())
		},
	}
}

func newSimulateCmd(cfgPath *string) *cobra.Command {
	var (
		ticks int
		delta float64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the session headless and print the outcome",
		Long: `Run the session without a terminal UI for a fixed number of ticks, or until
one side is wiped out, then print both rosters.

Examples:
  simplerpg simulate                        # 600 ticks of 0.1s
  simplerpg simulate --ticks 100 --delta 0.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks <= 0 || delta <= 0 {
				return fmt.Errorf("ticks and delta must be positive")
			}
			cfg, err := setup(*cfgPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			c, err := game.NewSession(cfg, nil,
				game.WithTracer(cmd.Context(), telemetry.Tracer("controller")))
			if err != nil {
				return err
			}
			rep := game.Simulate(cmd.Context(), telemetry.Tracer("session"), c, ticks, delta)
			return rep.Write(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&ticks, "ticks", "n", 600, "Maximum number of ticks")
	cmd.Flags().Float64VarP(&delta, "delta", "d", 0.1, "Seconds per tick")
	return cmd
}

// setup loads the config and installs the logger writing to logOut.
func setup(path string, logOut io.Writer) (config.Config, error) {
	cfg, err := config.Load(fs, path)
	if err != nil {
		return cfg, err
	}
	if err := logging.Setup(logOut, cfg.Log.Level, cfg.Log.Format); err != nil {
		return cfg, fmt.Errorf("configuring logging: %w", err)
	}
	return cfg, nil
}
