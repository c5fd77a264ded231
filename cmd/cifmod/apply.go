package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fractalqb/cifmod"
	"github.com/fractalqb/cifmod/cifio"
)

func init() {
	applyCmd.RunE = applyFiles
	flags := applyCmd.Flags()
	flags.StringVarP(&applyCmd.cif, "cif", "c", "",
		"The CIF file or a directory containing CIF files")
	applyCmd.MarkFlagRequired("cif")
	flags.StringVarP(&applyCmd.instructions, "instructions", "i", "",
		"Instructions as a string or the name of a file containing instructions")
	flags.StringVarP(&applyCmd.suffix, "suffix", "s", cifio.DefaultSuffix,
		"Suffix of edited files")
	flags.IntVarP(&applyCmd.jobs, "jobs", "j", 1,
		"Number of files edited in parallel")
	flags.Uint64Var(&applyCmd.seed, "seed", 0,
		"Seed random ranges for reproducible results")
	flags.BoolVarP(&applyCmd.dryRun, "dry-run", "n", false,
		"Show the changes instead of writing files")
	flags.BoolVar(&applyCmd.natural, "natural-precision", false,
		"Do not round results to the precision of the original value")
	rootCmd.AddCommand(&applyCmd.Command)
}

var applyCmd = struct {
	cobra.Command
	cif          string
	instructions string
	suffix       string
	jobs         int
	seed         uint64
	dryRun       bool
	natural      bool
}{
	Command: cobra.Command{
		Use:   "apply",
		Short: "Apply instructions to CIF files",
		Args:  cobra.NoArgs,
	},
}

// mergeConfig fills flags not given on the command line from the config
// file.
func mergeConfig(cmd *cobra.Command, cfg *config) {
	flags := cmd.Flags()
	if !flags.Changed("instructions") && cfg.Instructions != "" {
		applyCmd.instructions = cfg.Instructions
	}
	if !flags.Changed("suffix") && cfg.Suffix != "" {
		applyCmd.suffix = cfg.Suffix
	}
	if !flags.Changed("jobs") && cfg.Jobs > 0 {
		applyCmd.jobs = cfg.Jobs
	}
	if !flags.Changed("natural-precision") && cfg.NaturalPrecision {
		applyCmd.natural = true
	}
	if !flags.Changed("seed") && cfg.Seed != nil {
		applyCmd.seed = *cfg.Seed
	}
}

func applyFiles(cmd *cobra.Command, _ []string) error {
	log := rootCmd.log
	mergeConfig(cmd, &rootCmd.cfg)
	if applyCmd.instructions == "" {
		return errors.New("no instructions provided")
	}
	text, err := instructionText(applyCmd.instructions)
	if err != nil {
		return err
	}
	set := cifmod.ParseInstructions(text)
	for _, d := range set.Diagnostics() {
		log.Warn(d.Msg+", results may be unexpected",
			zap.Int("instruction", d.Line),
			zap.String("text", d.Text),
		)
	}
	log.Debug("instructions", zap.Stringer("parsed", set))
	paths, err := cifio.Collect(applyCmd.cif, applyCmd.suffix)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		log.Warn("no CIF files found", zap.String("path", applyCmd.cif))
		return nil
	}
	log.Debug("files", zap.Strings("paths", paths))
	batch := cifio.Batch{
		Instructions:     set,
		Suffix:           applyCmd.suffix,
		Jobs:             applyCmd.jobs,
		Seeded:           cmd.Flags().Changed("seed") || rootCmd.cfg.Seed != nil,
		Seed:             applyCmd.seed,
		NaturalPrecision: applyCmd.natural,
		DryRun:           applyCmd.dryRun,
		Log:              log,
	}
	results, err := batch.Run(cmd.Context(), paths)
	if err != nil {
		return fmt.Errorf("could not apply instructions: %w", err)
	}
	for _, r := range results {
		if applyCmd.dryRun {
			printDiff(cmd.OutOrStdout(), r)
		} else {
			log.Info("wrote",
				zap.String("file", r.Output),
				zap.Int("modified", r.Modified),
			)
		}
	}
	return nil
}

// instructionText returns the content of the file arg if it exists,
// otherwise arg itself.
func instructionText(arg string) (string, error) {
	st, err := os.Stat(arg)
	if err != nil || st.IsDir() {
		return arg, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func printDiff(w io.Writer, r cifio.Result) {
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		color.NoColor = true
	}
	bold := color.New(color.Bold).SprintFunc()
	del := color.New(color.FgRed).SprintfFunc()
	add := color.New(color.FgGreen).SprintfFunc()
	fmt.Fprintf(w, "%s → %s (%d modified)\n",
		bold(r.Path), bold(r.Output), r.Modified)
	for _, d := range cifio.Changes(r.Diff) {
		switch d.Op {
		case cifio.DiffRemove:
			fmt.Fprintln(w, del("%5d - %s", d.Line, d.Text))
		case cifio.DiffAdd:
			fmt.Fprintln(w, add("%5d + %s", d.Line, d.Text))
		}
	}
}
