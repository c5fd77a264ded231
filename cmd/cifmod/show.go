package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fractalqb/cifmod"
	"github.com/fractalqb/cifmod/cifio"
)

func init() {
	showCmd.RunE = showFiles
	rootCmd.AddCommand(&showCmd)
}

var showCmd = cobra.Command{
	Use:   "show <cif file>...",
	Short: "Show the cell parameters of CIF files",
	Args:  cobra.MinimumNArgs(1),
}

func showFiles(cmd *cobra.Command, files []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, f := range files {
		txt, err := cifio.ReadFile(f)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s:\n", f)
		cell := cifmod.Cell(txt.Lines)
		for _, fld := range cifmod.Fields() {
			v, ok := cell[fld]
			if !ok {
				v = "-"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", fld.Alias(), fld, v)
		}
	}
	return tw.Flush()
}
