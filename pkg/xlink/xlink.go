// 14 Oct 2026

// Package xlink reads cross-link files. Lines look like
//
//	ignore ignore seq1 seq2 >Name(res) >Name(res) score
//
// Only the last three fields are used. Names can be mapped to the
// molecule names used elsewhere and residue numbers can be shifted per
// molecule. A cross-link between the same two residues is only kept the
// first time it is seen, in whichever order the two ends are given.
package xlink

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/andrew-torda/rstrdata/pkg/rderr"
	"github.com/andrew-torda/rstrdata/pkg/zwrap"
)

// Unlimited as MaxRecords means read the whole file
const Unlimited = -1

const nField = 7

var endRe = regexp.MustCompile(`>([\w-]+)\((\w+)\)`)

// Options controls what happens to each line.
type Options struct {
	MaxRecords int               // Stop after this many lines. Negative means no limit.
	NameMap    map[string]string // name in the file to molecule name
	Offsets    map[string]int    // added to residue numbers, by molecule name
}

// NewOptions gives options which read everything and change nothing.
func NewOptions() *Options {
	return &Options{MaxRecords: Unlimited}
}

// resolve maps a name from the file and applies the offset.
func (o *Options) resolve(name string, res int) End {
	if n, ok := o.NameMap[name]; ok {
		name = n
	}
	res += o.Offsets[name] // a missing name gives zero
	return End{Molecule: name, ResIndex: res}
}

// parseEnd takes a field like >Nup84(123)
func parseEnd(field string) (string, int, error) {
	m := endRe.FindStringSubmatch(field)
	if m == nil {
		return "", 0, fmt.Errorf("field \"%s\" is not like >name(residue)", field)
	}
	res, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, fmt.Errorf("residue \"%s\" in \"%s\" is not an integer", m[2], field)
	}
	return m[1], res, nil
}

// parseLine turns the fields of one line into a record
func (o *Options) parseLine(id int, line string) (CrossLinkRecord, error) {
	var r CrossLinkRecord
	f := strings.Fields(line)
	if len(f) != nField {
		return r, fmt.Errorf("wanted %d fields, got %d", nField, len(f))
	}
	name1, res1, err := parseEnd(f[4])
	if err != nil {
		return r, err
	}
	name2, res2, err := parseEnd(f[5])
	if err != nil {
		return r, err
	}
	score, err := strconv.ParseFloat(f[6], 64)
	if err != nil {
		return r, fmt.Errorf("score \"%s\" is not a number", f[6])
	}
	r.ID = id
	r.End1 = o.resolve(name1, res1)
	r.End2 = o.resolve(name2, res2)
	r.Score = score
	return r, nil
}

// Read reads cross-links from rdr. Each record gets the number of the
// line it came from as its ID, counting from zero. Duplicates are left
// out and listed in the Dups of the result. A line we cannot read is an
// error and then no data is returned.
// Blank lines are skipped, but they have a number and count towards
// opts.MaxRecords. If opts is nil, we use NewOptions().
func Read(rdr io.Reader, opts *Options) (*CrossLinkData, error) {
	if opts == nil {
		opts = NewOptions()
	}
	xd := newCrossLinkData()
	found := make(map[[2]string]int)
	scnr := bufio.NewScanner(rdr)
	nl := 0
	for ; opts.MaxRecords < 0 || nl < opts.MaxRecords; nl++ {
		if !scnr.Scan() {
			break
		}
		line := scnr.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := opts.parseLine(nl, line)
		if err != nil {
			return nil, rderr.New(rderr.ErrMalformedRow, nl+1, line, err.Error())
		}
		key := r.Key()
		if first, ok := found[key]; ok {
			xd.Dups = append(xd.Dups, Dup{ID: nl, First: first, Key: key, Inline: line})
			continue
		}
		found[key] = nl
		xd.add(r)
	}
	if err := scnr.Err(); err != nil {
		return nil, &rderr.ReadError{N: nl + 1, Desc: err.Error(), Err: err}
	}
	return xd, nil
}

// opener is how ReadFile gets at a file. Tests replace it.
var opener = func(fname string) (io.ReadCloser, error) { return zwrap.Open(fname) }

// ReadFile opens a file, which may be compressed, and calls Read.
// If fname is "" or "-", read from standard input.
func ReadFile(fname string, opts *Options) (*CrossLinkData, error) {
	fp, err := opener(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	xd, err := Read(fp, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return xd, nil
}
