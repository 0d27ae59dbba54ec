// Package cli implements the cvi command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/cvi/internal/config"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	configPath string
	debug      bool
	cfg        *config.Config
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "cvi",
		Short:        "cvi: Core Values Index diagrams",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadWithFlags(a.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			return setupLogger(cmd.ErrOrStderr(), cfg.Log, a.debug)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (optional; CVI_* env vars also apply)")
	pf.BoolVar(&a.debug, "debug", false, "enable debug logging with source locations")
	pf.String("log-level", config.DefaultLogLevel, "log level: debug|info|warn|error")
	pf.String("log-format", config.DefaultLogFormat, "log format: text|json")

	cmd.AddCommand(
		renderCmd(a),
		convertCmd(a),
		summaryCmd(a),
		backendsCmd(),
	)
	return cmd
}
