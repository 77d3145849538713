// 31 July 2020
// 14 Oct 2026 sequences replaced by DSSP and cross-link files

// Package randdat writes random DSSP and cross-link files. They are
// nonsense, but they have the right columns and are good for
// benchmarks and for tests that check properties of whatever the
// readers return.
package randdat

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
)

// DsspArgs is the set of arguments for writing a DSSP file
type DsspArgs struct {
	Iseed   int64     // random number seed
	Wrtr    io.Writer // where we write to
	Nres    int       // residues per chain
	Nchain  int       // number of chains, at most 26
	MaxSeg  int       // longest segment, default 12
	SeqGaps bool      // sometimes jump in the residue numbering
}

// XlArgs is the set of arguments for writing cross-links
type XlArgs struct {
	Iseed   int64     // random number seed
	Wrtr    io.Writer // where we write to
	Nxl     int       // number of lines
	Names   []string  // molecule names, default A, B, C
	MaxRes  int       // residue numbers go from 1 to MaxRes
	DupFrac float32   // fraction of lines which repeat an earlier pair
}

const dsspHdr = `==== Secondary Structure Definition by the program DSSP, random version                             ==== DATE=2026-10-14        .
REFERENCE W. KABSCH AND C.SANDER, BIOPOLYMERS 22 (1983) 2577-2637                                                              .
HEADER    RANDOM                                                                                                               .
  #  RESIDUE AA STRUCTURE BP1 BP2  ACC     N-H-->O    O-->H-N    N-H-->O    O-->H-N    TCO  KAPPA ALPHA  PHI   PSI    X-CA   Y-CA   Z-CA
`

const dsspTail = "      0, 0.0     0, 0.0     0, 0.0     0, 0.0   0.000 360.0 360.0 360.0 360.0    0.0    0.0    0.0"

// DsspLine formats one residue line. The columns are those written by
// DSSP itself.
func DsspLine(seqnum, resnum int, chain, aa, code, sheet byte) string {
	return fmt.Sprintf("%5d%5d%c%c %c  %c %7s%4d%4d%c%4d%s",
		seqnum, resnum, ' ', chain, aa, code, "", 0, 0, sheet, 100, dsspTail)
}

// BreakLine formats a chain break line
func BreakLine(seqnum int) string {
	return fmt.Sprintf("%5d        !*             0   0    0%s", seqnum, dsspTail)
}

var (
	helixCodes = []byte{'H', 'G', 'I'}
	betaCodes  = []byte{'E', 'E', 'E', 'B'}
	loopCodes  = []byte{' ', 'T', 'S'}
	aaLetters  = []byte("ACDEFGHIKLMNPQRSTVWY")
)

// writeLines takes lines from a channel and writes them
func writeLines(lChan <-chan string, w io.Writer, wg *sync.WaitGroup, errp *error) {
	defer wg.Done()
	for s := range lChan {
		if *errp != nil {
			continue // keep draining, so the sender does not block
		}
		if _, err := io.WriteString(w, s); err != nil {
			*errp = err
		}
	}
}

// RandDsspMain writes a random DSSP file to args.Wrtr.
func RandDsspMain(args *DsspArgs) error {
	if args.Nchain < 1 || args.Nchain > 26 {
		return fmt.Errorf("number of chains %d not in 1..26", args.Nchain)
	}
	maxSeg := args.MaxSeg
	if maxSeg < 1 {
		maxSeg = 12
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	var wg sync.WaitGroup
	var werr error
	lChan := make(chan string)
	wg.Add(1)
	go writeLines(lChan, args.Wrtr, &wg, &werr)

	lChan <- dsspHdr
	seqnum := 1
	for ic := 0; ic < args.Nchain; ic++ {
		chain := byte('A' + ic)
		resnum := 1 + rnd.Intn(50)
		for n := 0; n < args.Nres; {
			var code byte
			var sheet byte = ' '
			seglen := 1 + rnd.Intn(maxSeg)
			switch rnd.Intn(3) {
			case 0:
				code = helixCodes[rnd.Intn(len(helixCodes))]
			case 1:
				code = betaCodes[rnd.Intn(len(betaCodes))]
				sheet = byte('A' + rnd.Intn(4))
			default:
				code = loopCodes[rnd.Intn(len(loopCodes))]
			}
			for i := 0; i < seglen && n < args.Nres; i++ {
				aa := aaLetters[rnd.Intn(len(aaLetters))]
				lChan <- DsspLine(seqnum, resnum, chain, aa, code, sheet) + "\n"
				seqnum++
				resnum++
				n++
			}
			if args.SeqGaps && rnd.Intn(10) == 0 {
				resnum += 1 + rnd.Intn(5)
			}
		}
		if ic < args.Nchain-1 {
			lChan <- BreakLine(seqnum) + "\n"
			seqnum++
		}
	}
	close(lChan)
	wg.Wait()
	return werr
}

// XlLine formats one cross-link line. The first four fields are never
// read, so we fill them with something that looks plausible.
func XlLine(n int, name1 string, res1 int, name2 string, res2 int, score float64) string {
	return fmt.Sprintf("xl%d xl%d - - >%s(%d) >%s(%d) %g", n, n, name1, res1, name2, res2, score)
}

type xlEnd struct {
	name string
	res  int
}

// RandXlMain writes random cross-links to args.Wrtr.
func RandXlMain(args *XlArgs) error {
	names := args.Names
	if len(names) == 0 {
		names = []string{"A", "B", "C"}
	}
	maxRes := args.MaxRes
	if maxRes < 1 {
		maxRes = 500
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	var wg sync.WaitGroup
	var werr error
	lChan := make(chan string)
	wg.Add(1)
	go writeLines(lChan, args.Wrtr, &wg, &werr)

	seen := make([][2]xlEnd, 0, args.Nxl)
	for i := 0; i < args.Nxl; i++ {
		var e [2]xlEnd
		if len(seen) > 0 && rnd.Float32() < args.DupFrac {
			old := seen[rnd.Intn(len(seen))]
			e[0], e[1] = old[1], old[0] // swapped, so readers have to notice
		} else {
			for j := range e {
				e[j] = xlEnd{names[rnd.Intn(len(names))], 1 + rnd.Intn(maxRes)}
			}
			seen = append(seen, e)
		}
		score := float64(rnd.Intn(100000)) / 100
		lChan <- XlLine(i, e[0].name, e[0].res, e[1].name, e[1].res, score) + "\n"
	}
	close(lChan)
	wg.Wait()
	return werr
}
