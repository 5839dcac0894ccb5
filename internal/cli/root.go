package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pageorder/pkg/buildinfo"
	"github.com/matzehuels/pageorder/pkg/config"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The persistent pre-run loads the config file (--config, then the XDG
// locations) and attaches the logger to the command context. A config
// with verbose = true raises the log level to debug.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "pageorder checks and repairs sequences against precedence rules",
		Long:         `pageorder reads "before|after" precedence rules and comma-separated sequences, reports which sequences already respect every rule, repairs the ones that do not, and sums the middle items of both groups.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			if cfg.Verbose {
				c.SetLogLevel(LogDebug)
			}
			if cfg.Path != "" {
				c.Logger.Debug("loaded config", "path", cfg.Path)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pageorder/config.toml)")

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.fixCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
