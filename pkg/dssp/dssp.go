// 14 Oct 2026

// Package dssp reads the output of DSSP and turns it into segments of
// helix, beta strand and loop.
//
// A DSSP file is fixed column text. We ignore everything up to the
// line whose second word is RESIDUE. After that, each line is a
// residue and the columns we use (counting from 1) are
//
//	6-10  residue number, as in the PDB file
//	12    chain
//	17    secondary structure code
//	34    sheet label
//
// If column 10 is blank, the line is a chain break ('!' in column 14).
//
// Beta strands are collected per sheet label while reading and only put
// into sheets when the whole file has been read, since the strands of
// one sheet can be far apart in the file.
package dssp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andrew-torda/rstrdata/pkg/rderr"
	"github.com/andrew-torda/rstrdata/pkg/zwrap"
)

// Columns, counting from zero
const (
	colResStart = 5
	colResEnd   = 10 // one past the end
	colBreak    = 9
	colChain    = 11
	colCode     = 16
	colSheet    = 33
	minLineLen  = colSheet + 1
)

var hdrWord = []byte("RESIDUE")

// classify turns a DSSP code into a class. Every code is either
// classified or an error. Blank and missing codes are loop.
func classify(code byte) (Class, error) {
	switch code {
	case 'G', 'H', 'I':
		return Helix, nil
	case 'E', 'B':
		return Beta, nil
	case ' ', 0, 'T', 'S':
		return Loop, nil
	}
	return NoClass, fmt.Errorf("unknown secondary structure code '%c'", code)
}

// dsspReader holds the state while we go through a file.
type dsspReader struct {
	*bufio.Scanner
	n        int    // line number for error messages
	chains   string // if not empty, only keep these chains
	sd       *SubsequenceData
	sheetNdx map[byte]int // sheet label to index in sheets
	sheets   [][]Segment  // strands, grouped by sheet label
	prev     Class        // class of the open segment
	prevLbl  byte         // sheet label of the last row we kept
	cur      Segment      // the open segment
	err      error
	padbuf   []byte
}

// stateFn is the type of state function. It returns the next
// state function that should act on its input.
type stateFn func(*dsspReader) stateFn

// scan is a wrapper around the library Scan(). It counts lines and
// jumps over lines with fewer than two words.
func (dr *dsspReader) scan() ([]byte, bool) {
	for dr.Scan() {
		dr.n++
		b := dr.Bytes()
		if len(bytes.Fields(b)) < 2 {
			continue
		}
		return b, true
	}
	if err := dr.Err(); err != nil {
		dr.err = &rderr.ReadError{N: dr.n, Desc: err.Error(), Err: err}
	}
	return nil, false
}

// isHeader is true on the line which introduces the residues
func isHeader(b []byte) bool {
	f := bytes.Fields(b)
	return len(f) >= 2 && bytes.Equal(f[1], hdrWord)
}

// stateHeader jumps over everything before the residue lines
func stateHeader(dr *dsspReader) stateFn {
	for {
		b, ok := dr.scan()
		if !ok {
			return nil
		}
		if isHeader(b) {
			return stateResidue
		}
	}
}

// stateResidue reads residue lines until the end of the file.
func stateResidue(dr *dsspReader) stateFn {
	b, ok := dr.scan()
	if !ok {
		dr.shut()
		return nil
	}
	if isHeader(b) {
		return stateResidue
	}
	if err := dr.row(b); err != nil {
		dr.err = err
		return nil
	}
	return stateResidue
}

// pad makes sure a line reaches the last column we look at. Missing
// columns are blank.
func (dr *dsspReader) pad(b []byte) []byte {
	if len(b) >= minLineLen {
		return b
	}
	dr.padbuf = append(dr.padbuf[:0], b...)
	for len(dr.padbuf) < minLineLen {
		dr.padbuf = append(dr.padbuf, ' ')
	}
	return dr.padbuf
}

// row looks at one residue line and decides whether to extend the open
// segment or close it and start a new one.
func (dr *dsspReader) row(b []byte) error {
	b = dr.pad(b)
	if b[colBreak] == ' ' {
		dr.shut()
		return nil
	}
	chainByte := b[colChain]
	if dr.chains != "" && strings.IndexByte(dr.chains, chainByte) == -1 {
		return nil // not a break, so a segment may continue over these lines
	}
	resnum, err := strconv.Atoi(string(bytes.TrimSpace(b[colResStart:colResEnd])))
	if err != nil {
		return rderr.Wrap(rderr.ErrMalformedRow, dr.n, string(b), err)
	}
	class, err := classify(b[colCode])
	if err != nil {
		return rderr.New(rderr.ErrMalformedRow, dr.n, string(b), err.Error())
	}
	var chain string
	if chainByte != ' ' {
		chain = string(chainByte)
	}
	lbl := b[colSheet]

	switch {
	case dr.prev == NoClass:
		dr.open(chain, resnum)
	case class != dr.prev || chain != dr.cur.Chain || resnum < dr.cur.End():
		dr.shut()
		dr.open(chain, resnum)
	default:
		dr.cur.Range[1] = resnum
	}
	dr.prev = class
	dr.prevLbl = lbl
	return nil
}

// open starts a new segment of one residue
func (dr *dsspReader) open(chain string, resnum int) {
	dr.cur = Segment{Chain: chain, Range: [2]int{resnum, resnum}}
}

// shut closes the open segment, if there is one. Helix and loop go
// straight into the result. A strand goes to its sheet.
func (dr *dsspReader) shut() {
	switch dr.prev {
	case Helix:
		dr.sd.Helix = append(dr.sd.Helix, dr.cur)
	case Loop:
		dr.sd.Loop = append(dr.sd.Loop, dr.cur)
	case Beta:
		ndx, ok := dr.sheetNdx[dr.prevLbl]
		if !ok {
			ndx = len(dr.sheets)
			dr.sheetNdx[dr.prevLbl] = ndx
			dr.sheets = append(dr.sheets, nil)
		}
		dr.sheets[ndx] = append(dr.sheets[ndx], dr.cur)
	}
	dr.prev = NoClass
	dr.prevLbl = 0
}

// Read reads DSSP output from rdr. If chains is not empty, it is the
// set of chain identifiers we want, like "AB". Lines from other chains
// are skipped, but they do not end a segment.
// If there is an error, no data is returned.
func Read(rdr io.Reader, chains string) (*SubsequenceData, error) {
	dr := &dsspReader{
		Scanner:  bufio.NewScanner(rdr),
		chains:   chains,
		sd:       newSubsequenceData(),
		sheetNdx: make(map[byte]int),
	}
	for state := stateHeader; state != nil; {
		state = state(dr)
	}
	if dr.err != nil {
		return nil, dr.err
	}
	dr.sd.Beta = append(dr.sd.Beta, dr.sheets...)
	return dr.sd, nil
}

// opener is how ReadFile gets at a file. Tests replace it.
var opener = func(fname string) (io.ReadCloser, error) { return zwrap.Open(fname) }

// ReadFile opens a file, which may be compressed, and calls Read.
// If fname is "" or "-", read from standard input.
func ReadFile(fname, chains string) (*SubsequenceData, error) {
	fp, err := opener(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	sd, err := Read(fp, chains)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return sd, nil
}
