// 14 Oct 2026

package xlink

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/andrew-torda/rstrdata/pkg/rderr"
)

// End is one end of a cross-link
type End struct {
	Molecule string `json:"molecule"`
	ResIndex int    `json:"residue_index"`
}

// String gives the form used in keys, like Nup84.123
func (e End) String() string { return e.Molecule + "." + strconv.Itoa(e.ResIndex) }

// CrossLinkRecord is one cross-link. ID is the line number in the
// input, counting from zero.
type CrossLinkRecord struct {
	ID    int     `json:"id"`
	End1  End     `json:"end1"`
	End2  End     `json:"end2"`
	Score float64 `json:"score"`
}

// Key is the pair of ends, sorted, so A-B and B-A give the same key.
func (r CrossLinkRecord) Key() [2]string {
	a, b := r.End1.String(), r.End2.String()
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// Intra is true if both ends are on the same molecule.
func (r CrossLinkRecord) Intra() bool { return r.End1.Molecule == r.End2.Molecule }

// Dup says a line was left out because we had already seen the pair.
// It satisfies error, but it is a warning. Reading carries on.
type Dup struct {
	ID     int       // line we skipped, counting from zero
	First  int       // ID of the record we kept
	Key    [2]string // the pair
	Inline string    // the skipped line
}

func (d Dup) Error() string {
	return fmt.Sprintf("skipping duplicated cross-link %s %s on line %d, first seen on line %d",
		d.Key[0], d.Key[1], d.ID+1, d.First+1)
}

// Unwrap means errors.Is(dup, rderr.ErrDuplicate) is true.
func (d Dup) Unwrap() error { return rderr.ErrDuplicate }

// CrossLinkData is the set of cross-links from one file, in the order
// they were read.
type CrossLinkData struct {
	Records []CrossLinkRecord `json:"records"`
	Dups    []Dup             `json:"-"`
	byID    map[int]int
}

func newCrossLinkData() *CrossLinkData {
	return &CrossLinkData{
		Records: make([]CrossLinkRecord, 0),
		byID:    make(map[int]int),
	}
}

// add does not check for duplicates. Read does that.
func (xd *CrossLinkData) add(r CrossLinkRecord) {
	xd.byID[r.ID] = len(xd.Records)
	xd.Records = append(xd.Records, r)
}

// Len is the number of records
func (xd *CrossLinkData) Len() int { return len(xd.Records) }

// Get finds a record by its ID
func (xd *CrossLinkData) Get(id int) (CrossLinkRecord, bool) {
	if i, ok := xd.byID[id]; ok {
		return xd.Records[i], true
	}
	return CrossLinkRecord{}, false
}

// Filter returns the records whose score is at least minScore.
// The IDs do not change.
func (xd *CrossLinkData) Filter(minScore float64) *CrossLinkData {
	ret := newCrossLinkData()
	for _, r := range xd.Records {
		if r.Score >= minScore {
			ret.add(r)
		}
	}
	ret.Dups = append(ret.Dups, xd.Dups...)
	return ret
}

var nameRe = regexp.MustCompile(`^[\w-]+$`)

// writable checks that Read will get the same end back
func writable(e End) error {
	if !nameRe.MatchString(e.Molecule) {
		return fmt.Errorf("molecule name \"%s\" cannot be written", e.Molecule)
	}
	if e.ResIndex < 0 {
		return fmt.Errorf("negative residue %d for %s cannot be written", e.ResIndex, e.Molecule)
	}
	return nil
}

// Write puts the records out in the same format they are read. Names
// and residue numbers are those after mapping and offsets, so read the
// output without options. IDs are not kept. A record which could not
// be read back is an error, before anything is written for it.
func (xd *CrossLinkData) Write(w io.Writer) error {
	for _, r := range xd.Records {
		for _, e := range []End{r.End1, r.End2} {
			if err := writable(e); err != nil {
				return rderr.New(rderr.ErrMalformedRow, 0, "", err.Error())
			}
		}
		score := strconv.FormatFloat(r.Score, 'g', -1, 64)
		if _, err := fmt.Fprintf(w, "xl%d xl%d - - >%s(%d) >%s(%d) %s\n",
			r.ID, r.ID, r.End1.Molecule, r.End1.ResIndex, r.End2.Molecule, r.End2.ResIndex, score); err != nil {
			return err
		}
	}
	return nil
}
