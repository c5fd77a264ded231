package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fractalqb/cifmod"
)

func init() {
	rootCmd.AddCommand(&examplesCmd)
}

var examplesCmd = cobra.Command{
	Use:   "examples",
	Short: "Print examples of how to use cifmod",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), examplesText())
	},
}

func examplesText() string {
	var names, aliases []string
	for _, f := range cifmod.Fields() {
		names = append(names, "`"+f.String()+"`")
		aliases = append(aliases, "`"+f.Alias()+"`")
	}
	return fmt.Sprintf(`Examples:

cifmod apply --cif path/to/cif --instructions "_cell_length_a + 1; _cell_length_a * 2; _cell_length_b -- 5.00; 70 -- _cell_angle_alpha -- 120"

  path/to/cif is a CIF file or a directory containing CIF files.
  _cell_length_a + 1 adds 1 to the value of _cell_length_a.
  _cell_length_a * 2 then multiplies the result by 2.
  _cell_length_b -- 5.00 picks a random number between 5.00 and the
  value of _cell_length_b.
  70 -- _cell_angle_alpha -- 120 picks a random number between 70 and 120.

cifmod apply -c path/to/cif -i "a + 1; a * 2; b -- 5.00; 70 -- alpha -- 120"

  a and b are short for _cell_length_a and _cell_length_b, alpha is
  short for _cell_angle_alpha.

cifmod apply -c path/to/cif -i path/to/instructions.txt

  Instructions can be read from a file. Instructions are separated by
  ';', ',' or line breaks. Lines starting with '#' are comments.

cifmod apply -c path/to/dir -i "beta -- 100" --seed 42 --dry-run

  Shows what would change. The same seed picks the same random numbers.

Known CIF data names:
  %s

Short names:
  %s

Operators:
  +   adds a number to the value
  -   subtracts a number from the value
  *   multiplies the value by a number
  /   divides the value by a number
  ^   raises the value to the power of a number
  --  picks a random number between the value and a number or between
      two numbers
`,
		strings.Join(names, ", "),
		strings.Join(aliases, ", "),
	)
}
