/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"log/slog"
	"os"

	"github.com/josephgoksu/langgpt-assistant/internal/config"
	"github.com/josephgoksu/langgpt-assistant/internal/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// version is the application version, overridden at build time with -ldflags.
	version = "1.0.0"

	// appConfig is resolved in PersistentPreRunE before any command runs.
	appConfig = config.Default()
	// appFs backs every file the CLI reads or writes. Tests swap in a MemMapFs.
	appFs afero.Fs = afero.NewOsFs()
	appLog        = slog.Default()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "langgpt",
	Short: "LangGPT - structured prompt generation, analysis and optimization",
	Long: `langgpt builds LangGPT-style role prompts and critiques existing prompts.

It works offline: roles come from a built-in catalog or are synthesized from
your description, and analysis and optimization use fixed heuristics.

The same operations are available as an MCP server (langgpt mcp) and as an
HTTP API with a browser UI (langgpt serve).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		bindFlags(cmd)

		cfg, err := config.Load(viper.GetViper(), cfgFile)
		if err != nil {
			return err
		}
		appConfig = cfg

		level := cfg.Log.Level
		if isVerbose() {
			level = "debug"
		}
		appLog, err = logger.Setup(level, cfg.Log.Format, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		logger.SetCommand(cmd.CommandPath())
		logger.SetVersion(version)
		logger.SetBasePath(config.CrashLogBase())
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.langgpt.yaml or $HOME/.langgpt/.langgpt.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("json", false, "output as JSON")
	rootCmd.PersistentFlags().Bool("quiet", false, "print only the essential result")
}

// bindFlags binds the flags of the running command to viper. It runs per
// invocation so a viper.Reset between runs does not lose the bindings.
func bindFlags(cmd *cobra.Command) {
	for _, name := range []string{"verbose", "json", "quiet"} {
		if f := cmd.Flags().Lookup(name); f != nil {
			_ = viper.BindPFlag(name, f)
		}
	}
	if f := cmd.Flags().Lookup("port"); f != nil {
		_ = viper.BindPFlag("server.port", f)
	}
}
