// 14 Oct 2026

package dssp

import (
	"fmt"
	"io"
	"sort"

	"github.com/andrew-torda/matrix"
)

// Class is one of the three kinds of secondary structure we keep.
type Class byte

const (
	NoClass Class = iota // Nothing open, start of file or after a chain break
	Helix
	Beta
	Loop
)

const nClass = 3 // helix, beta, loop. Used for matrix columns.

func (c Class) String() string {
	switch c {
	case Helix:
		return "helix"
	case Beta:
		return "beta"
	case Loop:
		return "loop"
	}
	return "none"
}

// Segment is a run of residues in one chain with the same class.
// Range holds the first and last residue numbers, as they are in
// the file (PDB numbering), not indices.
type Segment struct {
	Chain string `json:"chain"`
	Range [2]int `json:"residue_range"`
}

// Start is the first residue number
func (s Segment) Start() int { return s.Range[0] }

// End is the last residue number
func (s Segment) End() int { return s.Range[1] }

// Len is the number of residue numbers covered, including any gaps in
// the numbering.
func (s Segment) Len() int { return s.Range[1] - s.Range[0] + 1 }

// Indexes expands a segment into the list of residue numbers.
func (s Segment) Indexes() []int {
	ret := make([]int, 0, s.Len())
	for i := s.Range[0]; i <= s.Range[1]; i++ {
		ret = append(ret, i)
	}
	return ret
}

// SubsequenceData is what we get from a DSSP file. Helix and Loop
// segments are in the order they were seen. Each entry in Beta is one
// sheet with its strands in the order they were seen.
type SubsequenceData struct {
	Helix []Segment   `json:"helix"`
	Beta  [][]Segment `json:"beta"`
	Loop  []Segment   `json:"loop"`
}

func newSubsequenceData() *SubsequenceData {
	return &SubsequenceData{
		Helix: make([]Segment, 0),
		Beta:  make([][]Segment, 0),
		Loop:  make([]Segment, 0),
	}
}

// NStrand is the number of beta strands, summed over sheets.
func (sd *SubsequenceData) NStrand() int {
	n := 0
	for _, sheet := range sd.Beta {
		n += len(sheet)
	}
	return n
}

// chainStr is how we write a chain. An empty chain would break the
// columns, so write a dash.
func chainStr(c string) string {
	if c == "" {
		return "-"
	}
	return c
}

// Write puts the segments out, one per line, like
//
//	helix A 5 7
//	beta 1 A 1 3
//	loop A 8 9
//
// The number after beta is the sheet, counting from 1.
func (sd *SubsequenceData) Write(w io.Writer) error {
	for _, s := range sd.Helix {
		if _, err := fmt.Fprintln(w, Helix, chainStr(s.Chain), s.Start(), s.End()); err != nil {
			return err
		}
	}
	for i, sheet := range sd.Beta {
		for _, s := range sheet {
			if _, err := fmt.Fprintln(w, Beta, i+1, chainStr(s.Chain), s.Start(), s.End()); err != nil {
				return err
			}
		}
	}
	for _, s := range sd.Loop {
		if _, err := fmt.Fprintln(w, Loop, chainStr(s.Chain), s.Start(), s.End()); err != nil {
			return err
		}
	}
	return nil
}

// Composition gives the fraction of residues in helix, beta and loop
// for each chain. Chains come back sorted and row i of the matrix
// belongs to chains[i]. Columns are helix, beta, loop.
func (sd *SubsequenceData) Composition() ([]string, *matrix.FMatrix2d) {
	counts := make(map[string]*[nClass]int)
	add := func(s Segment, c Class) {
		if counts[s.Chain] == nil {
			counts[s.Chain] = new([nClass]int)
		}
		counts[s.Chain][c-1] += s.Len()
	}
	for _, s := range sd.Helix {
		add(s, Helix)
	}
	for _, sheet := range sd.Beta {
		for _, s := range sheet {
			add(s, Beta)
		}
	}
	for _, s := range sd.Loop {
		add(s, Loop)
	}

	chains := make([]string, 0, len(counts))
	for c := range counts {
		chains = append(chains, c)
	}
	sort.Strings(chains)
	mat := matrix.NewFMatrix2d(len(chains), nClass)
	for i, c := range chains {
		tot := 0
		for _, n := range counts[c] {
			tot += n
		}
		if tot == 0 {
			continue
		}
		for j, n := range counts[c] {
			mat.Mat[i][j] = float32(n) / float32(tot)
		}
	}
	return chains, mat
}
