/*
Package cifmod edits the cell parameters of crystallographic information
files (CIF) with short arithmetic instructions. A CIF file is
line-oriented text where each data item is a data name followed by its
value:

	_cell_length_a                     4.0094(2)
	_cell_angle_alpha                  90.00

The number in parentheses is the standard uncertainty of the last
digits. cifmod knows the data names of the three cell lengths, the three
cell angles and the cell volume. Each of them has a short alias:

	_cell_length_a     a
	_cell_length_b     b
	_cell_length_c     c
	_cell_angle_alpha  alpha
	_cell_angle_beta   beta
	_cell_angle_gamma  gamma
	_cell_volume       volume

# Instructions

An instruction consists of a keyword, i.e. a data name or an alias, an
operator and one or two numbers. The tokens are separated by whitespace
and may be written in any order:

	a + 1
	_cell_length_b * 2
	45.0 -- beta -- 90.0

Operators are:

	"+"   add a number to the value
	"-"   subtract a number from the value
	"*"   multiply the value by a number
	"/"   divide the value by a number
	"^"   raise the value to the power of a number
	"--"  replace the value by a random number

The range operator '--' with one number picks a random number between
that number and the current value. With two numbers it picks a random
number between the two numbers. The lower bound is included, the upper
bound is not. This also holds after rounding to the precision of the
value. A range with equal bounds is an error.

Instructions are separated by line breaks, ';' or ','. Lines starting
with '#' are comments. All instructions for the same keyword are applied
in the order they were written, each to the result of the previous one:

	a + 1; a * 2

Parsing instructions never fails. Unknown keywords, missing operators or
missing numbers are reported as Diagnostic and replaced by defaults.

# Precision

Before an instruction is applied the uncertainty is dropped from the
value. The result is always written with as many decimal places as the
value had before:

	4.0094(2)  a + 1    →  5.0094
	90.00      gamma / 2 → 45.00

# Rewriting Lines

The Rewriter scans the lines of a CIF file. Lines that start with a known
data name and have a value get the instructions for that field applied.
The new value replaces the old one in place, i.e. it starts in the same
column. All other lines are left untouched. Errors from applying an
instruction abort the rewrite of the whole text.
*/
package cifmod
