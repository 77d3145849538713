// 15 Oct 2026

// Package xlstat summarises a set of cross-links. Score statistics,
// how many links join each pair of molecules and a histogram of the
// scores.
package xlstat

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/rstrdata/pkg/xlink"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary has the numbers we print
type Summary struct {
	N      int // records kept
	NIntra int // both ends on one molecule
	NInter int
	NDup   int // duplicates dropped while reading
	Mean   float64
	SD     float64
	Min    float64
	Median float64
	Max    float64
}

// scores pulls the scores out of the records
func scores(xd *xlink.CrossLinkData) []float64 {
	ret := make([]float64, len(xd.Records))
	for i, r := range xd.Records {
		ret[i] = r.Score
	}
	return ret
}

// Summarise calculates a Summary. With no records, all the scores
// are zero.
func Summarise(xd *xlink.CrossLinkData) Summary {
	s := Summary{N: xd.Len(), NDup: len(xd.Dups)}
	for _, r := range xd.Records {
		if r.Intra() {
			s.NIntra++
		} else {
			s.NInter++
		}
	}
	if s.N == 0 {
		return s
	}
	x := scores(xd)
	if s.N == 1 {
		s.Mean = x[0]
	} else {
		s.Mean, s.SD = stat.MeanStdDev(x, nil)
	}
	sort.Float64s(x)
	s.Min = floats.Min(x)
	s.Max = floats.Max(x)
	s.Median = stat.Quantile(0.5, stat.Empirical, x, nil)
	return s
}

// Write prints a summary, one item per line
func (s Summary) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, `records    %d
intra      %d
inter      %d
duplicates %d
score mean %.4g sd %.4g
score min  %.4g median %.4g max %.4g
`, s.N, s.NIntra, s.NInter, s.NDup, s.Mean, s.SD, s.Min, s.Median, s.Max)
	return err
}

// PairCounts counts cross-links between each pair of molecules.
// Names come back sorted. The matrix is symmetric and the diagonal
// holds links within one molecule.
func PairCounts(xd *xlink.CrossLinkData) ([]string, *matrix.FMatrix2d) {
	ndx := make(map[string]int)
	for _, r := range xd.Records {
		ndx[r.End1.Molecule] = 0
		ndx[r.End2.Molecule] = 0
	}
	names := make([]string, 0, len(ndx))
	for n := range ndx {
		names = append(names, n)
	}
	sort.Strings(names)
	for i, n := range names {
		ndx[n] = i
	}
	mat := matrix.NewFMatrix2d(len(names), len(names))
	for _, r := range xd.Records {
		i, j := ndx[r.End1.Molecule], ndx[r.End2.Molecule]
		mat.Mat[i][j]++
		if i != j {
			mat.Mat[j][i]++
		}
	}
	return names, mat
}

// WritePairs prints the pair counts as a table with a header line
func WritePairs(w io.Writer, names []string, mat *matrix.FMatrix2d) error {
	if _, err := fmt.Fprint(w, "#"); err != nil {
		return err
	}
	for _, n := range names {
		fmt.Fprintf(w, " %s", n)
	}
	fmt.Fprintln(w)
	for i, n := range names {
		fmt.Fprint(w, n)
		for _, c := range mat.Mat[i] {
			fmt.Fprintf(w, " %g", c)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

var errNoData = errors.New("no cross-links to plot")
