// 15 Oct 2026

// Package dssp2sse has the work behind the dssp2sse command. Read a
// DSSP file and write out the helix, strand and loop segments.
package dssp2sse

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/rstrdata/pkg/common"
	"github.com/andrew-torda/rstrdata/pkg/dssp"
	"github.com/andrew-torda/rstrdata/pkg/params"
)

// CmdFlag holds the command line flags
type CmdFlag struct {
	Chains string // chains to keep. Overrides the parameter file.
	JSON   bool   // write JSON instead of text
	Comp   bool   // also write the composition per chain
	Params string // TOML parameter file
	Log    string // where to send diagnostics, see common.LogWhere
}

// outFile gives us stdout or a new file. The function must be called
// when finished.
func outFile(outfile string) (io.Writer, func() error, error) {
	if outfile == "" || outfile == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	fp, err := os.Create(outfile)
	if err != nil {
		return nil, nil, fmt.Errorf("output file %v: %w", outfile, err)
	}
	return fp, fp.Close, nil
}

// writeComp writes the composition as commented lines, so the text
// output can still be read by something like gnuplot.
func writeComp(w io.Writer, sd *dssp.SubsequenceData) error {
	chains, mat := sd.Composition()
	fmt.Fprintf(w, "# chain %s %s %s\n", dssp.Helix, dssp.Beta, dssp.Loop)
	for i, c := range chains {
		if c == "" {
			c = "-"
		}
		row := mat.Mat[i]
		if _, err := fmt.Fprintf(w, "# %s %.3f %.3f %.3f\n", c, row[0], row[1], row[2]); err != nil {
			return err
		}
	}
	return nil
}

// Mymain reads infile and writes segments to outfile. Empty names
// mean standard input and output.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	logger, logClose, err := common.LogWhere(flags.Log)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	defer logClose()
	prm := params.Default()
	if flags.Params != "" {
		if prm, err = params.Load(flags.Params); err != nil {
			return err
		}
	}
	chains := prm.Chains
	if flags.Chains != "" {
		chains = flags.Chains
	}
	sd, err := dssp.ReadFile(infile, chains)
	if err != nil {
		return fmt.Errorf("Fail reading DSSP: %w", err)
	}
	logger.Printf("%s: %d helix, %d strand in %d sheet, %d loop segments",
		infile, len(sd.Helix), sd.NStrand(), len(sd.Beta), len(sd.Loop))

	w, closer, err := outFile(outfile)
	if err != nil {
		return err
	}
	if flags.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(sd)
		if flags.Comp {
			logger.Println("composition is not written with JSON output")
		}
	} else {
		err = sd.Write(w)
		if err == nil && flags.Comp {
			err = writeComp(w, sd)
		}
	}
	if cerr := closer(); err == nil {
		err = cerr
	}
	return err
}
