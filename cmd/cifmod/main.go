// A command line tool to edit the cell parameters of CIF files
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = struct {
	cobra.Command
	verbose bool
	cfgFile string
	cfg     config
	log     *zap.Logger
}{
	Command: cobra.Command{
		Use:   "cifmod",
		Short: "Edit cell parameters of CIF files with arithmetic instructions",
		Long: `cifmod applies instructions like "a + 1; 70 -- alpha -- 120" to the
cell lengths, angles and volume of CIF files. Edited files are written
next to the originals with the suffix _modified. Run "cifmod examples"
for more.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	},
}

func init() {
	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentPostRun = func(*cobra.Command, []string) {
		if rootCmd.log != nil {
			_ = rootCmd.log.Sync()
		}
	}
	rootCmd.PersistentFlags().BoolVarP(&rootCmd.verbose, "verbose", "v", false,
		"Show additional debug information")
	rootCmd.PersistentFlags().StringVar(&rootCmd.cfgFile, "config", "",
		"Read defaults from a TOML or YAML config file")
}

func setup(cmd *cobra.Command, _ []string) (err error) {
	if rootCmd.cfgFile != "" {
		if rootCmd.cfg, err = loadConfig(rootCmd.cfgFile); err != nil {
			return err
		}
	}
	if !cmd.Flags().Changed("verbose") && rootCmd.cfg.Verbose {
		rootCmd.verbose = true
	}
	rootCmd.log, err = newLogger(rootCmd.verbose)
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.DisableStacktrace = true
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if rootCmd.log != nil {
			rootCmd.log.Error(err.Error())
			_ = rootCmd.log.Sync()
		} else {
			fmt.Fprintln(os.Stderr, "cifmod:", err)
		}
		os.Exit(1)
	}
}
