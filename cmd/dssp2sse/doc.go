// 15 Oct 2026

/*
Dssp2sse reads the output of DSSP and writes out the secondary structure
segments. Helices are H, G and I. Strands are E and B, grouped into sheets
by the sheet label. Everything else is loop.

Given no explicit input path, it reads from standard input.
Given no output filename, it writes to standard output.
Input may be compressed with gzip or zstd.

Usage:

	dssp2sse [flags] [input [output]]

The flags are:

	-c chains
		Only keep these chains, like "AB". Overrides the parameter file.
	-f
		Also write the fraction of helix, beta and loop for each chain.
	-j
		Write JSON instead of text.
	-l logfile
		Where to write diagnostics. "stdout", "stderr" or a file name.
	-p params.toml
		Parameter file.

Text output looks like

	helix A 9 14
	beta 1 A 3 6
	loop A 1 2

where the number after beta is the sheet.
*/
package main
