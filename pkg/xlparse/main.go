// 15 Oct 2026

// Package xlparse has the work behind the xlparse command. Read
// cross-links, report duplicates, write the records out again with
// names mapped and offsets applied.
package xlparse

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/rstrdata/pkg/common"
	"github.com/andrew-torda/rstrdata/pkg/params"
	"github.com/andrew-torda/rstrdata/pkg/xlink"
	"github.com/andrew-torda/rstrdata/pkg/xlstat"
)

// CmdFlag holds the command line flags. MaxRecords and MinScore only
// replace values from the parameter file if they are not at their
// defaults (xlink.Unlimited and zero).
type CmdFlag struct {
	MaxRecords int     // stop after this many lines
	MinScore   float64 // drop records scoring less than this
	Params     string  // TOML parameter file
	JSON       bool    // write JSON instead of the input format
	Stats      string  // file for a summary and pair counts, "-" for stdout
	Plot       string  // file for a histogram of scores
	NBin       int     // bins in the histogram
	Log        string  // where to send diagnostics, see common.LogWhere
}

// NewCmdFlag gives the defaults
func NewCmdFlag() *CmdFlag {
	return &CmdFlag{MaxRecords: xlink.Unlimited, NBin: 20}
}

// create gives us stdout or a new file. The function must be called
// when finished.
func create(fname string) (io.Writer, func() error, error) {
	if fname == "" || fname == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	fp, err := os.Create(fname)
	if err != nil {
		return nil, nil, fmt.Errorf("output file %v: %w", fname, err)
	}
	return fp, fp.Close, nil
}

// getParams merges the parameter file and the flags
func getParams(flags *CmdFlag) (*params.Params, error) {
	prm := params.Default()
	if flags.Params != "" {
		var err error
		if prm, err = params.Load(flags.Params); err != nil {
			return nil, err
		}
	}
	if flags.MaxRecords != xlink.Unlimited {
		prm.MaxRecords = flags.MaxRecords
	}
	if flags.MinScore != 0 {
		prm.MinScore = flags.MinScore
	}
	return prm, nil
}

// writeStats puts out the summary and then the table of pairs
func writeStats(fname string, xd *xlink.CrossLinkData) error {
	w, closer, err := create(fname)
	if err != nil {
		return err
	}
	err = xlstat.Summarise(xd).Write(w)
	if err == nil {
		names, mat := xlstat.PairCounts(xd)
		err = xlstat.WritePairs(w, names, mat)
	}
	if cerr := closer(); err == nil {
		err = cerr
	}
	return err
}

// Mymain reads cross-links from infile and writes them to outfile.
// Empty names mean standard input and output.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	logger, logClose, err := common.LogWhere(flags.Log)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	defer logClose()
	prm, err := getParams(flags)
	if err != nil {
		return err
	}
	xd, err := xlink.ReadFile(infile, prm.XlOptions())
	if err != nil {
		return fmt.Errorf("Fail reading cross-links: %w", err)
	}
	for _, d := range xd.Dups {
		logger.Println(d)
	}
	if prm.MinScore != 0 {
		n := xd.Len()
		xd = xd.Filter(prm.MinScore)
		logger.Printf("min score %g removed %d of %d records", prm.MinScore, n-xd.Len(), n)
	}

	w, closer, err := create(outfile)
	if err != nil {
		return err
	}
	if flags.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(xd)
	} else {
		err = xd.Write(w)
	}
	if cerr := closer(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if flags.Stats != "" {
		if err := writeStats(flags.Stats, xd); err != nil {
			return err
		}
	}
	if flags.Plot != "" {
		if err := xlstat.HistPlot(xd, flags.NBin, flags.Plot); err != nil {
			return fmt.Errorf("plot %s: %w", flags.Plot, err)
		}
	}
	return nil
}
