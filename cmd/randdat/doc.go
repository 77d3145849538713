// 31 July 2020
// 15 Oct 2026 DSSP and cross-link files instead of sequences

/*
Randdat is for making random input files for testing the code.
Usage:

	randdat [options] {dssp|xl} fname n

With dssp, it writes a DSSP file with n residues per chain.
With xl, it writes n cross-link lines.
A fname of "-" means standard output.

Flags:

	-c
		number of chains in a DSSP file
	-d
		fraction of cross-links which repeat an earlier pair, with the
		ends swapped
	-g
		put gaps in the DSSP residue numbering
	-r
		random number seed
	-z
		compress the output with zstd

The content is nonsense. The point is to have files with the right
columns, of any size, for benchmarking and for checking the readers.
*/
package main
