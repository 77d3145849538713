// 14 Oct 2026

package dssp_test

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/andrew-torda/rstrdata/pkg/brokenio"
	"github.com/andrew-torda/rstrdata/pkg/common"
	. "github.com/andrew-torda/rstrdata/pkg/dssp"
	"github.com/andrew-torda/rstrdata/pkg/randdat"
	"github.com/andrew-torda/rstrdata/pkg/rderr"
)

const testdata = "testdata"

const hdr = "  #  RESIDUE AA STRUCTURE BP1 BP2  ACC     N-H-->O\n"

// mkDssp builds a DSSP file for one chain from a string of codes and a
// string of sheet labels. Residues are numbered from 1.
func mkDssp(chain byte, codes, sheets string) string {
	var sb strings.Builder
	sb.WriteString(hdr)
	for i := range codes {
		sheet := byte(' ')
		if i < len(sheets) {
			sheet = sheets[i]
		}
		sb.WriteString(randdat.DsspLine(i+1, i+1, chain, 'A', codes[i], sheet) + "\n")
	}
	return sb.String()
}

func seg(chain string, start, end int) Segment {
	return Segment{Chain: chain, Range: [2]int{start, end}}
}

func mustRead(t *testing.T, s, chains string) *SubsequenceData {
	t.Helper()
	sd, err := Read(strings.NewReader(s), chains)
	if err != nil {
		t.Fatal(err)
	}
	return sd
}

func checkSd(t *testing.T, got, want *SubsequenceData) {
	t.Helper()
	if !reflect.DeepEqual(got.Helix, want.Helix) {
		t.Errorf("helix got %v want %v", got.Helix, want.Helix)
	}
	if !reflect.DeepEqual(got.Beta, want.Beta) {
		t.Errorf("beta got %v want %v", got.Beta, want.Beta)
	}
	if !reflect.DeepEqual(got.Loop, want.Loop) {
		t.Errorf("loop got %v want %v", got.Loop, want.Loop)
	}
}

func TestClassify(t *testing.T) {
	want := map[byte]Class{
		'G': Helix, 'H': Helix, 'I': Helix,
		'E': Beta, 'B': Beta,
		' ': Loop, 0: Loop, 'T': Loop, 'S': Loop,
	}
	for code, c := range want {
		if got, err := Classify(code); err != nil || got != c {
			t.Errorf("code '%c' got %v %v wanted %v", code, got, err, c)
		}
	}
	for _, code := range []byte("PXh-!") {
		if _, err := Classify(code); err == nil {
			t.Errorf("code '%c' should not be classified", code)
		}
	}
}

// TestSimple is helix 1-3, beta 4-6, loop 7-9
func TestSimple(t *testing.T) {
	sd := mustRead(t, mkDssp('A', "HHHEEE   ", ""), "")
	checkSd(t, sd, &SubsequenceData{
		Helix: []Segment{seg("A", 1, 3)},
		Beta:  [][]Segment{{seg("A", 4, 6)}},
		Loop:  []Segment{seg("A", 7, 9)},
	})
}

// TestSheetOverHelix has two strands with the same sheet label,
// with a helix in between. They belong in one sheet.
func TestSheetOverHelix(t *testing.T) {
	sd := mustRead(t, mkDssp('A', "EEHEE", "11 11"), "")
	checkSd(t, sd, &SubsequenceData{
		Helix: []Segment{seg("A", 3, 3)},
		Beta:  [][]Segment{{seg("A", 1, 2), seg("A", 4, 5)}},
		Loop:  []Segment{},
	})
}

// TestSheetOrder has sheets interleaved. Sheets come out in the order
// their label is first seen.
func TestSheetOrder(t *testing.T) {
	sd := mustRead(t, mkDssp('A', "EE EE EE EE", "BB AA BB AA"), "")
	want := [][]Segment{
		{seg("A", 1, 2), seg("A", 7, 8)},
		{seg("A", 4, 5), seg("A", 10, 11)},
	}
	if !reflect.DeepEqual(sd.Beta, want) {
		t.Fatal("got", sd.Beta, "wanted", want)
	}
	if sd.NStrand() != 4 {
		t.Fatal("wanted 4 strands, got", sd.NStrand())
	}
}

func TestTwoChain(t *testing.T) {
	want := &SubsequenceData{
		Helix: []Segment{seg("A", 9, 14), seg("B", 8, 10)},
		Beta: [][]Segment{
			{seg("A", 3, 6), seg("A", 16, 19)},
			{seg("B", 4, 7)},
		},
		Loop: []Segment{seg("A", 1, 2), seg("A", 7, 8), seg("A", 15, 15),
			seg("A", 20, 20), seg("B", 1, 3)},
	}
	sd, err := ReadFile(filepath.Join(testdata, "twochain.dssp"), "")
	if err != nil {
		t.Fatal(err)
	}
	checkSd(t, sd, want)

	sd, err = ReadFile(filepath.Join(testdata, "twochain.dssp"), "B")
	if err != nil {
		t.Fatal(err)
	}
	checkSd(t, sd, &SubsequenceData{
		Helix: []Segment{seg("B", 8, 10)},
		Beta:  [][]Segment{{seg("B", 4, 7)}},
		Loop:  []Segment{seg("B", 1, 3)},
	})
}

// TestGzip reads the same file, but compressed
func TestGzip(t *testing.T) {
	b, err := os.ReadFile(filepath.Join(testdata, "twochain.dssp"))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write(b)
	zw.Close()
	fname, err := common.WrtTempBytes(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	sd, err := ReadFile(fname, "A")
	if err != nil {
		t.Fatal(err)
	}
	if len(sd.Helix) != 1 || len(sd.Beta) != 1 || len(sd.Loop) != 4 {
		t.Fatal("compressed chain A wrong", sd)
	}
}

// TestFilterGap has a chain which is filtered out between two pieces
// of loop in chain A, with no chain break. The loop carries on.
func TestFilterGap(t *testing.T) {
	s := hdr +
		randdat.DsspLine(1, 1, 'A', 'A', ' ', ' ') + "\n" +
		randdat.DsspLine(2, 2, 'A', 'A', ' ', ' ') + "\n" +
		randdat.DsspLine(3, 1, 'B', 'A', 'H', ' ') + "\n" +
		randdat.DsspLine(4, 3, 'A', 'A', 'T', ' ') + "\n"
	sd := mustRead(t, s, "A")
	checkSd(t, sd, &SubsequenceData{
		Helix: []Segment{},
		Beta:  [][]Segment{},
		Loop:  []Segment{seg("A", 1, 3)},
	})
	// Without the filter, chain B splits the loop
	sd = mustRead(t, s, "")
	if len(sd.Loop) != 2 || len(sd.Helix) != 1 {
		t.Fatal("unfiltered gap wrong", sd)
	}
}

// TestBreak checks that a break in the same chain ends a segment.
func TestBreak(t *testing.T) {
	s := hdr +
		randdat.DsspLine(1, 1, 'A', 'A', 'H', ' ') + "\n" +
		randdat.DsspLine(2, 2, 'A', 'A', 'H', ' ') + "\n" +
		randdat.BreakLine(3) + "\n" +
		randdat.DsspLine(4, 10, 'A', 'A', 'H', ' ') + "\n"
	sd := mustRead(t, s, "")
	want := []Segment{seg("A", 1, 2), seg("A", 10, 10)}
	if !reflect.DeepEqual(sd.Helix, want) {
		t.Fatal("got", sd.Helix, "wanted", want)
	}
}

// TestNumbering has residue numbers which go backwards. We never
// return a segment with start > end.
func TestNumbering(t *testing.T) {
	s := hdr +
		randdat.DsspLine(1, 10, 'A', 'A', 'H', ' ') + "\n" +
		randdat.DsspLine(2, 11, 'A', 'A', 'H', ' ') + "\n" +
		randdat.DsspLine(3, 5, 'A', 'A', 'H', ' ') + "\n"
	sd := mustRead(t, s, "")
	want := []Segment{seg("A", 10, 11), seg("A", 5, 5)}
	if !reflect.DeepEqual(sd.Helix, want) {
		t.Fatal("got", sd.Helix, "wanted", want)
	}
}

// TestUnknownCode should give an error naming the code and no data.
func TestUnknownCode(t *testing.T) {
	sd, err := Read(strings.NewReader(mkDssp('A', "HHPH", "")), "")
	if sd != nil {
		t.Fatal("got data back with an error")
	}
	if !errors.Is(err, rderr.ErrMalformedRow) {
		t.Fatal("wrong error", err)
	}
	if !strings.Contains(err.Error(), "'P'") || !strings.Contains(err.Error(), "line 4") {
		t.Fatal("message does not say what or where:", err)
	}
}

func TestBadResnum(t *testing.T) {
	l := []byte(randdat.DsspLine(1, 1, 'A', 'A', 'H', ' '))
	copy(l[5:10], "  1x1")
	_, err := Read(strings.NewReader(hdr+string(l)+"\n"), "")
	if !errors.Is(err, rderr.ErrMalformedRow) {
		t.Fatal("wanted malformed row, got", err)
	}
}

// TestShortLines has lines cut off before the sheet column. They are
// read as if the missing columns were blank.
func TestShortLines(t *testing.T) {
	s := hdr +
		randdat.DsspLine(1, 1, 'A', 'A', 'H', ' ')[:17] + "\n" +
		randdat.DsspLine(2, 2, 'A', 'A', 'H', ' ')[:20] + "\n" +
		randdat.DsspLine(3, 3, 'A', 'A', ' ', ' ')[:14] + "\n"
	sd := mustRead(t, s, "")
	checkSd(t, sd, &SubsequenceData{
		Helix: []Segment{seg("A", 1, 2)},
		Beta:  [][]Segment{},
		Loop:  []Segment{seg("A", 3, 3)},
	})
}

func TestNoHeader(t *testing.T) {
	s := mkDssp('A', "HHH", "")
	s = strings.Replace(s, "RESIDUE", "XXXXXXX", 1)
	sd := mustRead(t, s, "")
	if len(sd.Helix)+len(sd.Beta)+len(sd.Loop) != 0 {
		t.Fatal("read residues without a header", sd)
	}
}

func TestNotFound(t *testing.T) {
	sd, err := ReadFile(filepath.Join(testdata, "nothere.dssp"), "")
	if sd != nil || !errors.Is(err, rderr.ErrFileNotFound) {
		t.Fatal("missing file gave", sd, err)
	}
}

// TestBrokenReader has the input fail half way through. We want an
// error, no data and the input closed.
func TestBrokenReader(t *testing.T) {
	var brkn *brokenio.BrknRdrClsr
	old := SetOpener(func(fname string) (io.ReadCloser, error) {
		fp, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		brkn = brokenio.NewReader(fp)
		brkn.SetFailAfter(800)
		return brkn, nil
	})
	defer SetOpener(old)
	sd, err := ReadFile(filepath.Join(testdata, "twochain.dssp"), "")
	if sd != nil || !errors.Is(err, brokenio.ErrBroken) {
		t.Fatal("broken reader gave", sd, err)
	}
	if brkn.NClose() != 1 {
		t.Fatal("input closed", brkn.NClose(), "times")
	}
}

// TestRandomProps reads random files and checks that segments are
// sane and segments in one chain never overlap.
func TestRandomProps(t *testing.T) {
	for iseed := int64(1); iseed < 6; iseed++ {
		var sb strings.Builder
		gaps := iseed%2 == 0
		args := randdat.DsspArgs{Iseed: iseed, Wrtr: &sb, Nres: 400, Nchain: 3, SeqGaps: gaps}
		if err := randdat.RandDsspMain(&args); err != nil {
			t.Fatal(err)
		}
		sd := mustRead(t, sb.String(), "")
		all := append([]Segment{}, sd.Helix...)
		all = append(all, sd.Loop...)
		for _, sheet := range sd.Beta {
			all = append(all, sheet...)
		}
		n := 0
		for _, s := range all {
			if s.Start() > s.End() {
				t.Fatal("start > end", s)
			}
			if s.Chain == "" {
				t.Fatal("empty chain", s)
			}
			n += len(s.Indexes())
		}
		if !gaps && n != args.Nres*args.Nchain { // gaps can be inside a segment
			t.Fatal("seed", iseed, "residues covered", n, "wanted", args.Nres*args.Nchain)
		}
		sort.Slice(all, func(i, j int) bool {
			if all[i].Chain != all[j].Chain {
				return all[i].Chain < all[j].Chain
			}
			return all[i].Start() < all[j].Start()
		})
		for i := 1; i < len(all); i++ {
			if all[i].Chain == all[i-1].Chain && all[i].Start() <= all[i-1].End() {
				t.Fatal("overlap", all[i-1], all[i])
			}
		}
	}
}

func TestComposition(t *testing.T) {
	sd := mustRead(t, mkDssp('A', "HHHEEE  TS", "   111"), "")
	chains, mat := sd.Composition()
	if len(chains) != 1 || chains[0] != "A" {
		t.Fatal("chains", chains)
	}
	want := []float32{0.3, 0.3, 0.4}
	for j, w := range want {
		if d := mat.Mat[0][j] - w; d > 1e-6 || d < -1e-6 {
			t.Error("column", j, "got", mat.Mat[0][j], "want", w)
		}
	}
}

func TestJSON(t *testing.T) {
	sd := mustRead(t, mkDssp('A', "HHHEEE   ", ""), "")
	b, err := json.Marshal(sd)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"helix":[{"chain":"A","residue_range":[1,3]}],` +
		`"beta":[[{"chain":"A","residue_range":[4,6]}]],` +
		`"loop":[{"chain":"A","residue_range":[7,9]}]}`
	if string(b) != want {
		t.Fatalf("got\n%s\nwanted\n%s", b, want)
	}
}

func ExampleSubsequenceData_Write() {
	sd, err := ReadFile(filepath.Join(testdata, "twochain.dssp"), "")
	if err != nil {
		return
	}
	sd.Write(os.Stdout)
	// Output:
	// helix A 9 14
	// helix B 8 10
	// beta 1 A 3 6
	// beta 1 A 16 19
	// beta 2 B 4 7
	// loop A 1 2
	// loop A 7 8
	// loop A 15 15
	// loop A 20 20
	// loop B 1 3
}
