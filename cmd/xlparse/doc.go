// 15 Oct 2026

/*
Xlparse reads cross-link files with lines like

	id1 id2 seq1 seq2 >Nup84(123) >Nup145C(45) 17.5

Only the last three fields matter. A pair of residues is kept the first
time it is seen. Later copies, in either order, are reported in the log.
Records are written out again in the same format, with names mapped and
residue offsets applied, so the output can be read without a parameter
file.

Usage:

	xlparse [flags] [input [output]]

The flags are:

	-b nbin
		Number of bins in the histogram.
	-g plotfile
		Draw a histogram of scores. The format comes from the extension.
	-j
		Write JSON instead of the input format.
	-l logfile
		Where to write diagnostics. "stdout", "stderr" or a file name.
	-n max
		Read at most this many lines. Negative means all.
	-p params.toml
		Parameter file with max_records, min_score, [name_map] and [offsets].
	-s minscore
		Drop records scoring below this.
	-t statsfile
		Write a score summary and counts per molecule pair. "-" is stdout.
*/
package main
