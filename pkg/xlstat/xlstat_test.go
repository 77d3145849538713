package xlstat_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/rstrdata/pkg/xlink"
	. "github.com/andrew-torda/rstrdata/pkg/xlstat"
)

const three = `x x - - >A(1) >B(1) 1
x x - - >A(2) >A(9) 2
x x - - >B(1) >A(1) 50
x x - - >C(4) >A(3) 3
`

func mustRead(t *testing.T, s string) *xlink.CrossLinkData {
	t.Helper()
	xd, err := xlink.Read(strings.NewReader(s), nil)
	if err != nil {
		t.Fatal(err)
	}
	return xd
}

func approxEqual(x, y float64) bool { return math.Abs(x-y) < 1e-9 }

func TestSummarise(t *testing.T) {
	s := Summarise(mustRead(t, three))
	if s.N != 3 || s.NDup != 1 || s.NIntra != 1 || s.NInter != 2 {
		t.Fatal("counts wrong", s)
	}
	if !approxEqual(s.Mean, 2) || !approxEqual(s.SD, 1) {
		t.Fatal("mean/sd wrong", s.Mean, s.SD)
	}
	if s.Min != 1 || s.Median != 2 || s.Max != 3 {
		t.Fatal("min/median/max wrong", s)
	}
	var sb strings.Builder
	if err := s.Write(&sb); err != nil || !strings.Contains(sb.String(), "duplicates 1") {
		t.Fatal("Write gave", sb.String(), err)
	}
}

func TestSummariseSmall(t *testing.T) {
	s := Summarise(mustRead(t, ""))
	if s.N != 0 || s.Mean != 0 {
		t.Fatal("empty summary", s)
	}
	s = Summarise(mustRead(t, "x x - - >A(1) >B(1) 7\n"))
	if s.Mean != 7 || s.SD != 0 || s.Median != 7 {
		t.Fatal("one record summary", s)
	}
}

func TestPairCounts(t *testing.T) {
	names, mat := PairCounts(mustRead(t, three))
	if strings.Join(names, "") != "ABC" {
		t.Fatal("names", names)
	}
	want := [][]float32{
		{1, 1, 1},
		{1, 0, 0},
		{1, 0, 0},
	}
	for i := range want {
		for j := range want[i] {
			if mat.Mat[i][j] != want[i][j] {
				t.Error(names[i], names[j], "got", mat.Mat[i][j], "want", want[i][j])
			}
		}
	}
	var sb strings.Builder
	if err := WritePairs(&sb, names, mat); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(sb.String(), "# A B C\nA 1 1 1\n") {
		t.Fatal("table wrong\n", sb.String())
	}
}

func TestHistPlot(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "scores.png")
	if err := HistPlot(mustRead(t, three), 5, fname); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(fname); err != nil || fi.Size() == 0 {
		t.Fatal("no plot written", err)
	}
	if err := HistPlot(mustRead(t, ""), 5, fname); err == nil {
		t.Fatal("plotted nothing without complaint")
	}
}
