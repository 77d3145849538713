// 31 July 2020
// 15 Oct 2026 DSSP and cross-link files

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	. "github.com/andrew-torda/rstrdata/pkg/common"
	"github.com/andrew-torda/rstrdata/pkg/randdat"
	"github.com/klauspost/compress/zstd"
)

// run does the work, so deferred closes happen before we exit
func run(kind string, w io.Writer, n int, seed int64, nchain int, gaps bool, dupFrac float64) error {
	switch kind {
	case "dssp":
		args := randdat.DsspArgs{Iseed: seed, Wrtr: w, Nres: n, Nchain: nchain, SeqGaps: gaps}
		return randdat.RandDsspMain(&args)
	case "xl":
		args := randdat.XlArgs{Iseed: seed, Wrtr: w, Nxl: n, DupFrac: float32(dupFrac)}
		return randdat.RandXlMain(&args)
	}
	return fmt.Errorf("unknown kind \"%s\", wanted dssp or xl", kind)
}

func main() {
	f := flag.NewFlagSet("randdat", flag.ExitOnError)
	const iseed int64 = 1637
	var seed int64
	var nchain int
	var gaps, zst bool
	var dupFrac float64

	f.IntVar(&nchain, "c", 2, "number of chains in DSSP file")
	f.Float64Var(&dupFrac, "d", 0.1, "fraction of duplicated cross-links")
	f.BoolVar(&gaps, "g", false, "gaps in DSSP residue numbering")
	f.Int64Var(&seed, "r", iseed, "random number seed")
	f.BoolVar(&zst, "z", false, "zstd compress output")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Wrong number of args\nranddat [..] {dssp|xl} file n")
		f.Usage()
		os.Exit(ExitUsageError)
	}
	kind, fname := f.Arg(0), f.Arg(1)
	n, err := strconv.ParseUint(f.Arg(2), 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed converting %s to positive integer\n", f.Arg(2))
		os.Exit(ExitUsageError)
	}

	var w io.Writer = os.Stdout
	var fp *os.File
	if fname != "-" && fname != "" {
		if fp, err = os.Create(fname); err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			os.Exit(ExitFailure)
		}
		w = fp
	}
	var zw *zstd.Encoder
	if zst {
		if zw, err = zstd.NewWriter(w); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(ExitFailure)
		}
		w = zw
	}
	err = run(kind, w, int(n), seed, nchain, gaps, dupFrac)
	if zw != nil {
		if zerr := zw.Close(); err == nil {
			err = zerr
		}
	}
	if fp != nil {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
