// 15 Oct 2026
// Read cross-links, drop duplicates and write them out again.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/rstrdata/pkg/common"
	"github.com/andrew-torda/rstrdata/pkg/xlparse"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] [infile [outfile]]")
	flag.PrintDefaults()
}

func main() {
	flags := xlparse.NewCmdFlag()
	var infile, outfile string

	flag.IntVar(&flags.NBin, "b", flags.NBin, "bins in histogram")
	flag.StringVar(&flags.Plot, "g", "", "file for score histogram")
	flag.BoolVar(&flags.JSON, "j", false, "write JSON")
	flag.StringVar(&flags.Log, "l", "", "log to stdout, stderr or a file")
	flag.IntVar(&flags.MaxRecords, "n", flags.MaxRecords, "max lines to read")
	flag.StringVar(&flags.Params, "p", "", "TOML parameter file")
	flag.Float64Var(&flags.MinScore, "s", 0, "minimum score")
	flag.StringVar(&flags.Stats, "t", "", "file for statistics")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}

	if err := xlparse.Mymain(flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
