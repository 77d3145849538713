// 15 Oct 2026
// Read a DSSP file and write the helix, strand and loop segments.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/rstrdata/pkg/common"
	"github.com/andrew-torda/rstrdata/pkg/dssp2sse"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] [infile [outfile]]")
	long := `Given no arguments, read and write from stdin / stdout.
Given one argument, read from the given file name, but write to stdout.
Given two arguments, read from the first one, write to the second.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags dssp2sse.CmdFlag
	var infile, outfile string

	flag.StringVar(&flags.Chains, "c", "", "chains to keep, all by default")
	flag.BoolVar(&flags.Comp, "f", false, "write fraction of each class per chain")
	flag.BoolVar(&flags.JSON, "j", false, "write JSON")
	flag.StringVar(&flags.Log, "l", "", "log to stdout, stderr or a file")
	flag.StringVar(&flags.Params, "p", "", "TOML parameter file")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}

	if err := dssp2sse.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
